package httpx

import (
	"net/http"
	"strings"

	"github.com/sins621/timesheets/pkg/slogx"
)

const bearerPrefix = "Bearer "

// TokenValidator reports whether a presented bearer token is currently valid.
type TokenValidator interface {
	IsValid(token string) bool
}

// RequireBearer gates a protected handler behind bearer-token auth. The header
// must be exactly "Bearer <token>" and the token must be known to v; anything
// else short-circuits with 401 before the handler sees the request, so the
// body of a protected request is never read for an unauthenticated caller.
func RequireBearer(v TokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := slogx.FromContext(r.Context())

			authz := r.Header.Get("Authorization")
			if !strings.HasPrefix(authz, bearerPrefix) {
				log.Warn("auth failed", "reason", "missing or malformed Authorization header")
				writeUnauthorized(w)
				return
			}

			token := authz[len(bearerPrefix):]
			if !v.IsValid(token) {
				log.Warn("auth failed", "reason", "unknown token", "token_preview", preview(token))
				writeUnauthorized(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeUnauthorized(w http.ResponseWriter) {
	WriteError(w, http.StatusUnauthorized, "Unauthorized", "Valid bearer token required")
}

// preview truncates a token for log output so full credentials never land in
// the console.
func preview(token string) string {
	if len(token) > 8 {
		return token[:8] + "..."
	}
	return token
}
