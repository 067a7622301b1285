package models

import "time"

// QueueCustomer is a walk-in waiting for service. Walk-ins are not linked to a
// Customer record; position in the queue collection is the displayed number.
type QueueCustomer struct {
	ID                string    `json:"id,omitempty"`
	Name              string    `json:"name"`
	ServiceID         string    `json:"serviceId"`
	AddedAt           time.Time `json:"addedAt"`
	EstimatedWaitTime int       `json:"estimatedWaitTime"` // in minutes
}
