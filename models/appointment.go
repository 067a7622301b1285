package models

// AppointmentStatus is the lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Appointment references a customer and a service by id. The references are
// not enforced: a missing referent is rendered as "Unknown" by consumers.
type Appointment struct {
	ID         string            `json:"id,omitempty"`
	CustomerID string            `json:"customerId"`
	ServiceID  string            `json:"serviceId"`
	Date       string            `json:"date"` // YYYY-MM-DD
	Time       string            `json:"time"` // HH:MM
	Status     AppointmentStatus `json:"status"`
	Notes      string            `json:"notes,omitempty"`
}
