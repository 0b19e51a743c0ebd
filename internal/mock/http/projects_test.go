package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sins621/timesheets/internal/mock/domain"
)

func getProjects(t *testing.T, r *Router, target, token string) []domain.Project {
	t.Helper()

	rec := serve(r, http.MethodGet, target, "", token)
	require.Equal(t, http.StatusOK, rec.Code)

	var projects []domain.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &projects))
	return projects
}

func TestListProjectsForClient(t *testing.T) {
	t.Parallel()

	r, _ := newTestRouter(t)
	token := login(t, r)

	t.Run("numeric id is substituted", func(t *testing.T) {
		projects := getProjects(t, r, "/api/project/client/456", token)
		require.Len(t, projects, 2)
		require.Equal(t, 1001, projects[0].ProjectID)
		require.Equal(t, 1002, projects[1].ProjectID)
		for _, p := range projects {
			require.Equal(t, 456, p.ClientID)
		}
	})

	t.Run("non-numeric id falls back to 123", func(t *testing.T) {
		projects := getProjects(t, r, "/api/project/client/abc", token)
		require.Len(t, projects, 2)
		for _, p := range projects {
			require.Equal(t, 123, p.ClientID)
		}
	})

	t.Run("no existence check against client list", func(t *testing.T) {
		projects := getProjects(t, r, "/api/project/client/999999", token)
		for _, p := range projects {
			require.Equal(t, 999999, p.ClientID)
		}
	})

	t.Run("final segment wins on deep paths", func(t *testing.T) {
		projects := getProjects(t, r, "/api/project/client/extra/77", token)
		for _, p := range projects {
			require.Equal(t, 77, p.ClientID)
		}
	})

	t.Run("requires auth", func(t *testing.T) {
		rec := serve(r, http.MethodGet, "/api/project/client/123", "", "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
