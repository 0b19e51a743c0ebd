package domain

// Mock constants for time entry creation. The server never persists entries,
// so every created entry reports the same ID.
const (
	MockEntryID       = 9876
	DefaultPersonID   = 123
	DefaultTaskID     = 123
	DefaultCostCodeID = 1
)

// EntryRequest is the client-submitted time entry. The upstream API uses
// PascalCase field names on input. Every field is optional; pointers
// distinguish absent fields from explicit zero values where the default is
// non-zero.
type EntryRequest struct {
	Comments  string     `json:"Comments"`
	EntryDate *string    `json:"EntryDate"`
	Time      float64    `json:"Time"`
	Overtime  int        `json:"Overtime"`
	Person    *PersonRef `json:"Person"`
	Task      *TaskRef   `json:"Task"`
	CostCode  *int       `json:"CostCodeId"`
}

type PersonRef struct {
	PersonID *int `json:"PersonId"`
}

type TaskRef struct {
	TaskID *int `json:"TaskId"`
}

// Entry is the server-shaped time entry echoed back after creation, camelCase
// like the rest of the API's responses.
type Entry struct {
	EntryID    int     `json:"entryId"`
	Comments   string  `json:"comments"`
	EntryDate  string  `json:"entryDate"`
	Time       float64 `json:"time"`
	Overtime   int     `json:"overtime"`
	PersonID   int     `json:"personId"`
	TaskID     int     `json:"taskId"`
	CostCodeID int     `json:"costCodeId"`
	CreatedAt  string  `json:"createdAt"`
}
