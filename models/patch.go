package models

// Partial-update payloads for the PUT endpoints. A nil field is left
// unchanged. The same types are bound on the server and sent by the client,
// so unknown fields are dropped at both ends.

type ServicePatch struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *float64         `json:"price,omitempty"`
	Duration    *int             `json:"duration,omitempty"`
	Photo       *string          `json:"photo,omitempty"`
	Category    *ServiceCategory `json:"category,omitempty"`
}

func (p ServicePatch) Apply(s *Service) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Price != nil {
		s.Price = *p.Price
	}
	if p.Duration != nil {
		s.Duration = *p.Duration
	}
	if p.Photo != nil {
		s.Photo = *p.Photo
	}
	if p.Category != nil {
		s.Category = *p.Category
	}
}

type CustomerPatch struct {
	Name              *string   `json:"name,omitempty"`
	Phone             *string   `json:"phone,omitempty"`
	Email             *string   `json:"email,omitempty"`
	Avatar            *string   `json:"avatar,omitempty"`
	TotalVisits       *int      `json:"totalVisits,omitempty"`
	LastVisit         *string   `json:"lastVisit,omitempty"`
	PreferredServices *[]string `json:"preferredServices,omitempty"`
	Notes             *string   `json:"notes,omitempty"`
}

func (p CustomerPatch) Apply(c *Customer) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Avatar != nil {
		c.Avatar = *p.Avatar
	}
	if p.TotalVisits != nil {
		c.TotalVisits = *p.TotalVisits
	}
	if p.LastVisit != nil {
		c.LastVisit = *p.LastVisit
	}
	if p.PreferredServices != nil {
		c.PreferredServices = *p.PreferredServices
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
}

type AppointmentPatch struct {
	CustomerID *string            `json:"customerId,omitempty"`
	ServiceID  *string            `json:"serviceId,omitempty"`
	Date       *string            `json:"date,omitempty"`
	Time       *string            `json:"time,omitempty"`
	Status     *AppointmentStatus `json:"status,omitempty"`
	Notes      *string            `json:"notes,omitempty"`
}

func (p AppointmentPatch) Apply(a *Appointment) {
	if p.CustomerID != nil {
		a.CustomerID = *p.CustomerID
	}
	if p.ServiceID != nil {
		a.ServiceID = *p.ServiceID
	}
	if p.Date != nil {
		a.Date = *p.Date
	}
	if p.Time != nil {
		a.Time = *p.Time
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.Notes != nil {
		a.Notes = *p.Notes
	}
}
