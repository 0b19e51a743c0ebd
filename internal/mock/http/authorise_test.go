package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAuthoriseIssuesToken(t *testing.T) {
	t.Parallel()

	r, _ := newTestRouter(t)

	rec := serve(r, http.MethodPost, "/api/account/Authorise",
		`{"Email":"email@email.com","Password":"Password123"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success   bool   `json:"success"`
		Message   string `json:"message"`
		Token     string `json:"token"`
		TokenType string `json:"token_type"`
		User      struct {
			Email  string `json:"email"`
			UserID int    `json:"userId"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.True(t, resp.Success)
	require.Equal(t, "Login successful", resp.Message)
	require.NotEmpty(t, resp.Token)
	require.Equal(t, "Bearer", resp.TokenType)
	require.Equal(t, "email@email.com", resp.User.Email)
	require.Equal(t, 123, resp.User.UserID)
}

func TestAuthoriseAcceptsAnyCredentials(t *testing.T) {
	t.Parallel()

	r, _ := newTestRouter(t)

	bodies := []string{
		`{"Email":"","Password":""}`,
		`{}`,
		`{"Email":"someone@else.com"}`,
		`null`,
	}
	seen := make(map[string]struct{})
	for _, body := range bodies {
		rec := serve(r, http.MethodPost, "/api/account/Authorise", body, "")
		require.Equal(t, http.StatusOK, rec.Code, "body=%s", body)

		var resp struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotContains(t, seen, resp.Token, "tokens must never repeat")
		seen[resp.Token] = struct{}{}
	}
}

func TestAuthoriseRejectsInvalidJSON(t *testing.T) {
	t.Parallel()

	r, _ := newTestRouter(t)

	for _, body := range []string{"", "{", "not json", `{"Email": }`, `"just-a-string-shape"`} {
		rec := serve(r, http.MethodPost, "/api/account/Authorise", body, "")
		require.Equal(t, http.StatusBadRequest, rec.Code, "body=%q", body)
		require.Contains(t, rec.Body.String(), "Invalid JSON")
	}
}

func TestAuthoriseTokenIsImmediatelyUsable(t *testing.T) {
	t.Parallel()

	r, _ := newTestRouter(t)
	token := login(t, r)

	rec := serve(r, http.MethodGet, "/api/client/list", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthoriseResponseIsPrettyPrinted(t *testing.T) {
	t.Parallel()

	r, _ := newTestRouter(t)
	rec := serve(r, http.MethodPost, "/api/account/Authorise", `{}`, "")

	require.Contains(t, rec.Body.String(), "{\n  \"success\": true")
}
