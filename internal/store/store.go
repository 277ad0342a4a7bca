// Package store provides snapshot-based persistence for appointments. Every
// mutation round-trips the full collection: the engine reads the whole set,
// modifies it in memory, and writes the whole set back. A store therefore
// always presents either the old or the new snapshot, never an interleaved one.
package store

import (
	"appointment-reminder-go/internal/model"
)

// Store is the persistence boundary for appointment records.
type Store interface {
	ReadAll() ([]model.Appointment, error)
	WriteAll(appointments []model.Appointment) error
}

// DeliveryRecorder keeps a trail of outbound message attempts.
type DeliveryRecorder interface {
	Record(entry model.DeliveryLog) error
	Recent(limit int) ([]model.DeliveryLog, error)
}
