package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sins621/timesheets/internal/mock/domain"
)

func fixedClock() time.Time {
	return time.Date(2024, 9, 1, 14, 30, 0, 0, time.UTC)
}

func TestEntryCreateDefaults(t *testing.T) {
	t.Parallel()

	svc := &EntryService{Now: fixedClock}

	entry := svc.Create(domain.EntryRequest{})

	require.Equal(t, domain.MockEntryID, entry.EntryID)
	require.Equal(t, "", entry.Comments)
	require.Equal(t, "2024-09-01", entry.EntryDate)
	require.Equal(t, float64(0), entry.Time)
	require.Equal(t, 0, entry.Overtime)
	require.Equal(t, 123, entry.PersonID)
	require.Equal(t, 123, entry.TaskID)
	require.Equal(t, 1, entry.CostCodeID)
	require.Equal(t, "2024-09-01T14:30:00Z", entry.CreatedAt)
}

func TestEntryCreateEchoesProvidedFields(t *testing.T) {
	t.Parallel()

	svc := &EntryService{Now: fixedClock}

	date := "2019-09-01"
	personID := 77
	taskID := 88
	costCode := 5
	entry := svc.Create(domain.EntryRequest{
		Comments:  "this is a entry",
		EntryDate: &date,
		Time:      8,
		Overtime:  1,
		Person:    &domain.PersonRef{PersonID: &personID},
		Task:      &domain.TaskRef{TaskID: &taskID},
		CostCode:  &costCode,
	})

	require.Equal(t, "this is a entry", entry.Comments)
	require.Equal(t, "2019-09-01", entry.EntryDate)
	require.Equal(t, float64(8), entry.Time)
	require.Equal(t, 1, entry.Overtime)
	require.Equal(t, 77, entry.PersonID)
	require.Equal(t, 88, entry.TaskID)
	require.Equal(t, 5, entry.CostCodeID)

	// createdAt always comes from the server clock, never the request.
	require.Equal(t, "2024-09-01T14:30:00Z", entry.CreatedAt)
}

func TestEntryCreateNestedRefsWithoutIDs(t *testing.T) {
	t.Parallel()

	svc := &EntryService{Now: fixedClock}

	// Person/Task present but empty still fall back to the defaults.
	entry := svc.Create(domain.EntryRequest{
		Person: &domain.PersonRef{},
		Task:   &domain.TaskRef{},
	})

	require.Equal(t, 123, entry.PersonID)
	require.Equal(t, 123, entry.TaskID)
}
