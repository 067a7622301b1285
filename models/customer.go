package models

type Customer struct {
	ID     string `json:"id,omitempty"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Email  string `json:"email,omitempty"`
	Avatar string `json:"avatar,omitempty"`

	// TotalVisits and LastVisit are maintained by the data service when an
	// appointment transitions into the completed status.
	TotalVisits int    `json:"totalVisits"`
	LastVisit   string `json:"lastVisit,omitempty"` // YYYY-MM-DD

	PreferredServices []string `json:"preferredServices"`
	Notes             string   `json:"notes,omitempty"`
}
