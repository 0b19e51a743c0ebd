package service

import (
	"strconv"

	"github.com/sins621/timesheets/internal/mock/domain"
)

// DirectoryService serves the canned CRM data. It is stateless and every call
// is pure; repeated calls return identical output.
type DirectoryService struct{}

// Clients returns the fixed customer list.
func (DirectoryService) Clients() []domain.Client {
	return domain.Clients()
}

// ProjectsForClient interprets the raw client identifier taken verbatim from
// the request path. If it parses as a base-10 integer, that value is stamped
// into the returned projects; anything else falls back to the default client
// ID rather than erroring, matching the upstream mock's leniency.
func (DirectoryService) ProjectsForClient(raw string) []domain.Project {
	clientID, err := strconv.Atoi(raw)
	if err != nil {
		clientID = domain.DefaultClientID
	}

	return domain.ProjectsForClient(clientID)
}
