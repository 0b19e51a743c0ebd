package httpx

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the JSON shape used for request-level failures.
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// WriteJSON writes v as a pretty-printed JSON response with the given status
// code. The two-space indent matches the upstream API the mock emulates.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

// WriteError writes an ErrorBody response with the given status code.
func WriteError(w http.ResponseWriter, code int, errName, message string) {
	WriteJSON(w, code, ErrorBody{Error: errName, Message: message})
}
