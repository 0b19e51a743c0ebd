// Package metrics tracks the mock server's process-wide counters. The counters
// feed the console presentation; nothing in the request path reads them.
package metrics

import "sync/atomic"

// Registry holds the process-wide counters. The zero value is ready to use.
// All methods are safe for concurrent use.
type Registry struct {
	requests     atomic.Int64
	tokensIssued atomic.Int64
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	TotalRequests int64
	ActiveTokens  int64
}

// RequestCompleted records one served request, whatever its outcome.
func (r *Registry) RequestCompleted() {
	r.requests.Add(1)
}

// TokenIssued records one newly issued bearer token. Tokens are never revoked,
// so the issued count equals the active count for the life of the process.
func (r *Registry) TokenIssued() {
	r.tokensIssued.Add(1)
}

// Snapshot returns the current counter values.
func (r *Registry) Snapshot() Snapshot {
	return Snapshot{
		TotalRequests: r.requests.Load(),
		ActiveTokens:  r.tokensIssued.Load(),
	}
}
