package http

import (
	"net/http"

	"github.com/sins621/timesheets/internal/mock/service"
	"github.com/sins621/timesheets/pkg/httpx"
)

// ClientsHandler serves GET /api/client/list: the fixed three-customer list,
// identical on every call.
type ClientsHandler struct {
	Directory service.DirectoryService
}

func (h *ClientsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, h.Directory.Clients())
}
