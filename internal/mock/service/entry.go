package service

import (
	"time"

	"github.com/sins621/timesheets/internal/mock/domain"
)

// EntryService shapes submitted time entries into the server's response form.
// Nothing is persisted; the entry is echoed back with defaults filled in and a
// constant mock ID.
type EntryService struct {
	// Now is the clock used for entryDate and createdAt. Nil means time.Now.
	Now func() time.Time
}

// Create builds the entry record for req. Absent fields receive their
// documented defaults: entryDate becomes the current date, person/task fall
// back to 123, costCodeId to 1. createdAt always reflects the server clock.
func (s *EntryService) Create(req domain.EntryRequest) domain.Entry {
	now := s.now()

	entry := domain.Entry{
		EntryID:    domain.MockEntryID,
		Comments:   req.Comments,
		EntryDate:  now.Format("2006-01-02"),
		Time:       req.Time,
		Overtime:   req.Overtime,
		PersonID:   domain.DefaultPersonID,
		TaskID:     domain.DefaultTaskID,
		CostCodeID: domain.DefaultCostCodeID,
		CreatedAt:  now.Format(time.RFC3339),
	}

	if req.EntryDate != nil {
		entry.EntryDate = *req.EntryDate
	}
	if req.Person != nil && req.Person.PersonID != nil {
		entry.PersonID = *req.Person.PersonID
	}
	if req.Task != nil && req.Task.TaskID != nil {
		entry.TaskID = *req.Task.TaskID
	}
	if req.CostCode != nil {
		entry.CostCodeID = *req.CostCode
	}

	return entry
}

func (s *EntryService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
