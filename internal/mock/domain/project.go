package domain

// DefaultClientID is substituted when a client identifier in the request path
// does not parse as an integer. Deliberate leniency inherited from the
// upstream mock, not a validation error.
const DefaultClientID = 123

// Project is a project record as the upstream API shapes it.
type Project struct {
	ProjectID      int    `json:"projectId"`
	ClientID       int    `json:"clientId"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Status         string `json:"status"`
	StartDate      string `json:"startDate"`
	EstimatedHours int    `json:"estimatedHours"`
}

// ProjectsForClient returns the two canned projects stamped with clientID.
// There is no existence check against the client list; any ID gets the same
// two projects.
func ProjectsForClient(clientID int) []Project {
	return []Project{
		{
			ProjectID:      1001,
			ClientID:       clientID,
			Name:           "Website Redesign",
			Description:    "Complete overhaul of company website",
			Status:         "active",
			StartDate:      "2024-01-15",
			EstimatedHours: 120,
		},
		{
			ProjectID:      1002,
			ClientID:       clientID,
			Name:           "Mobile App Development",
			Description:    "Native iOS and Android application",
			Status:         "planning",
			StartDate:      "2024-03-01",
			EstimatedHours: 300,
		},
	}
}
