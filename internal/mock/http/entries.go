package http

import (
	"net/http"

	"github.com/sins621/timesheets/internal/mock/domain"
	"github.com/sins621/timesheets/internal/mock/service"
	"github.com/sins621/timesheets/pkg/httpx"
	"github.com/sins621/timesheets/pkg/slogx"
)

// EntriesHandler serves POST /api/entry/create. The entry is shaped and echoed
// back but never stored; the reported entryId is a constant.
type EntriesHandler struct {
	Entries *service.EntryService
}

type entryResponse struct {
	Success bool         `json:"success"`
	EntryID int          `json:"entryId"`
	Message string       `json:"message"`
	Entry   domain.Entry `json:"entry"`
}

func (h *EntriesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())

	var req domain.EntryRequest
	if err := decodeJSONBody(r.Body, &req); err != nil {
		writeInvalidJSON(w)
		return
	}

	entry := h.Entries.Create(req)
	log.Info("entry created", "entry_date", entry.EntryDate, "time", entry.Time)

	httpx.WriteJSON(w, http.StatusCreated, entryResponse{
		Success: true,
		EntryID: entry.EntryID,
		Message: "Entry created successfully",
		Entry:   entry,
	})
}
