// Package domain defines the fixed-shape records the mock timesheet API
// serves. All data is canned; there is no backing store by design.
package domain

// Client is a CRM customer record as the upstream API shapes it.
type Client struct {
	ClientID int    `json:"clientId"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Active   bool   `json:"active"`
}

// Clients returns the fixed customer list. The slice is freshly allocated on
// every call so handlers can never mutate the canned data.
func Clients() []Client {
	return []Client{
		{
			ClientID: 123,
			Name:     "Acme Corporation",
			Email:    "contact@acme.com",
			Phone:    "+1-555-0123",
			Active:   true,
		},
		{
			ClientID: 456,
			Name:     "Tech Solutions Ltd",
			Email:    "info@techsolutions.com",
			Phone:    "+1-555-0456",
			Active:   true,
		},
		{
			ClientID: 789,
			Name:     "Global Industries",
			Email:    "hello@globalind.com",
			Phone:    "+1-555-0789",
			Active:   false,
		},
	}
}
