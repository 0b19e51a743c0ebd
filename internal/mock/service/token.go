// Package service holds the mock server's behaviour: token issuance and
// validation, the canned CRM directory, and time entry shaping.
package service

import (
	"sync"

	"github.com/google/uuid"

	"github.com/sins621/timesheets/pkg/metrics"
)

// TokenService owns the set of currently valid bearer tokens. Membership in
// this set is the only thing that makes a token valid; tokens carry no
// structure worth inspecting.
//
// Known limitation, inherited from the API being mocked: there is no logout
// endpoint, so tokens are never revoked and the set grows for the life of the
// process.
type TokenService struct {
	metrics *metrics.Registry

	mu     sync.Mutex
	active map[string]struct{}
}

func NewTokenService(reg *metrics.Registry) *TokenService {
	return &TokenService{
		metrics: reg,
		active:  make(map[string]struct{}),
	}
}

// Issue generates a new opaque bearer token, adds it to the active set and
// returns it. UUIDv4 gives 122 bits of randomness, so tokens cannot be
// guessed from previously issued ones and collisions are negligible.
func (s *TokenService) Issue() string {
	token := uuid.NewString()

	s.mu.Lock()
	s.active[token] = struct{}{}
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.TokenIssued()
	}

	return token
}

// IsValid reports whether token is currently a member of the active set.
// Empty and never-issued tokens are invalid. Side-effect free.
func (s *TokenService) IsValid(token string) bool {
	if token == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.active[token]
	return ok
}

// Count returns the number of active tokens.
func (s *TokenService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.active)
}
