package http

import (
	"net/http"
	"strings"

	"github.com/sins621/timesheets/internal/mock/service"
	"github.com/sins621/timesheets/pkg/httpx"
)

// ProjectsHandler serves GET /api/project/client/{clientId}: two canned
// projects stamped with the requested client ID, or the default when the
// identifier is not numeric.
type ProjectsHandler struct {
	Directory service.DirectoryService
}

func (h *ProjectsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// The route wildcard can span several segments; only the final one is the
	// client identifier, mirroring the upstream's prefix-based routing.
	raw := r.PathValue("clientID")
	if i := strings.LastIndexByte(raw, '/'); i >= 0 {
		raw = raw[i+1:]
	}

	httpx.WriteJSON(w, http.StatusOK, h.Directory.ProjectsForClient(raw))
}
