package storage

import (
	"context"
	"errors"
)

// Fixed keys for the persisted collections and the one-time seed flag. The
// keys are part of the persisted layout; nothing outside this package should
// address them directly.
const (
	KeyServices     = "barbershop_services"
	KeyCustomers    = "barbershop_customers"
	KeyAppointments = "barbershop_appointments"
	KeyQueue        = "barbershop_queue"
	KeyInitialized  = "barbershop_initialized"
)

// ErrKeyNotFound is returned by KV.Get when the key has never been written.
var ErrKeyNotFound = errors.New("key not found")

// KV is the durable key-value layer underneath the Store. Implementations
// must be safe for concurrent use.
type KV interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes the given keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
}
