// Package http wires the mock timesheet API's routes to their handlers and
// applies the request-wide middleware chain (metrics, logging).
package http

import (
	"log/slog"
	"net/http"

	"github.com/sins621/timesheets/internal/mock/service"
	"github.com/sins621/timesheets/pkg/httpx"
	"github.com/sins621/timesheets/pkg/metrics"
	"github.com/sins621/timesheets/pkg/slogx"
)

// Router holds shared dependencies for the mock API handlers.
type Router struct {
	mux         *http.ServeMux
	middlewares []httpx.Middleware
	logger      *slog.Logger

	Tokens    *service.TokenService
	Directory service.DirectoryService
	Entries   *service.EntryService
}

func NewRouter(logger *slog.Logger, reg *metrics.Registry) *Router {
	r := &Router{
		mux:    http.NewServeMux(),
		logger: logger,
	}

	// Counting sits outermost so every request increments the total, then
	// logging so every request gets a summary line. 404s and 401s included.
	r.middlewares = []httpx.Middleware{
		metrics.CountRequests(reg),
		slogx.HTTPMiddleware(logger),
	}

	return r
}

// ApplyRoutes registers the full HTTP surface. Paths and casing match the
// upstream API exactly, including the British spelling of Authorise.
func (r *Router) ApplyRoutes() {
	r.mux.Handle("GET /{$}", &DocsHandler{})
	r.mux.Handle("POST /api/account/Authorise", &AuthoriseHandler{Tokens: r.Tokens})

	r.mux.Handle("GET /api/client/list",
		r.protected(&ClientsHandler{Directory: r.Directory}))

	// Multi-segment wildcard: the handler interprets the final segment, the
	// router passes it through verbatim.
	r.mux.Handle("GET /api/project/client/{clientID...}",
		r.protected(&ProjectsHandler{Directory: r.Directory}))

	r.mux.Handle("POST /api/entry/create",
		r.protected(&EntriesHandler{Entries: r.Entries}))
}

func (r *Router) protected(h http.Handler) http.Handler {
	return httpx.Chain(h, httpx.RequireBearer(r.Tokens))
}

// ServeHTTP implements http.Handler and applies the global middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(http.HandlerFunc(r.dispatch), r.middlewares...).ServeHTTP(w, req)
}

// dispatch resolves the route before serving so that any request without a
// registered pattern — unknown path or known path with the wrong method —
// answers 404 with a plain body rather than ServeMux's 405.
func (r *Router) dispatch(w http.ResponseWriter, req *http.Request) {
	if _, pattern := r.mux.Handler(req); pattern == "" {
		writeNotFound(w)
		return
	}

	// ServeMux canonicalizes with redirects: the subtree route's slashless
	// root and non-canonical paths (double slashes, dot segments) get a 301.
	// The upstream API has no redirects; those requests are simply unmatched,
	// so a mux-issued redirect is rewritten into the plain 404.
	r.mux.ServeHTTP(&redirectAs404{ResponseWriter: w}, req)
}

func writeNotFound(w http.ResponseWriter) {
	http.Error(w, "404 Not Found", http.StatusNotFound)
}

// redirectAs404 converts a ServeMux canonicalization redirect into a 404.
// No registered handler redirects, so any 301 seen here came from the mux.
type redirectAs404 struct {
	http.ResponseWriter

	intercepted bool
}

func (w *redirectAs404) WriteHeader(code int) {
	if code == http.StatusMovedPermanently {
		w.intercepted = true
		w.Header().Del("Location")
		w.Header().Del("Content-Type")
		writeNotFound(w.ResponseWriter)
		return
	}
	w.ResponseWriter.WriteHeader(code)
}

// Write discards the redirect's HTML body once the status has been rewritten.
func (w *redirectAs404) Write(b []byte) (int, error) {
	if w.intercepted {
		return len(b), nil
	}
	return w.ResponseWriter.Write(b)
}
