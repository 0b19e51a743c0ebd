package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/sins621/timesheets/internal/mock/service"
	"github.com/sins621/timesheets/pkg/httpx"
	"github.com/sins621/timesheets/pkg/slogx"
)

// mockUserID is the fixed user the mock reports for every login.
const mockUserID = 123

// AuthoriseHandler serves POST /api/account/Authorise. Any well-formed
// credential pair succeeds; nothing is checked against a backing store. The
// only failure is a body that is not valid JSON.
type AuthoriseHandler struct {
	Tokens *service.TokenService
}

type authoriseRequest struct {
	Email    string `json:"Email"`
	Password string `json:"Password"`
}

type authoriseResponse struct {
	Success   bool           `json:"success"`
	Message   string         `json:"message"`
	Token     string         `json:"token"`
	TokenType string         `json:"token_type"`
	User      authorisedUser `json:"user"`
}

type authorisedUser struct {
	Email  string `json:"email"`
	UserID int    `json:"userId"`
}

func (h *AuthoriseHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())

	var req authoriseRequest
	if err := decodeJSONBody(r.Body, &req); err != nil {
		writeInvalidJSON(w)
		return
	}

	token := h.Tokens.Issue()
	log.Info("login", "email", req.Email, "token_preview", token[:8]+"...")

	httpx.WriteJSON(w, http.StatusOK, authoriseResponse{
		Success:   true,
		Message:   "Login successful",
		Token:     token,
		TokenType: "Bearer",
		User:      authorisedUser{Email: req.Email, UserID: mockUserID},
	})
}

// decodeJSONBody reads the whole body and unmarshals it into v. A single
// complete JSON value is required; absent optional fields are fine, trailing
// garbage or a shape mismatch is not.
func decodeJSONBody(body io.Reader, v any) error {
	raw, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

func writeInvalidJSON(w http.ResponseWriter) {
	httpx.WriteError(w, http.StatusBadRequest, "Bad Request", "Invalid JSON")
}
