package httpx

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteJSONPrettyPrints(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	WriteJSON(rec, 200, map[string]string{"hello": "world"})

	require.Equal(t, 200, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Equal(t, "{\n  \"hello\": \"world\"\n}\n", rec.Body.String())
}

func TestWriteError(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	WriteError(rec, 401, "Unauthorized", "Valid bearer token required")

	require.Equal(t, 401, rec.Code)
	require.JSONEq(t,
		`{"error": "Unauthorized", "message": "Valid bearer token required"}`,
		rec.Body.String())
}
