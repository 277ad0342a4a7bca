package store

import (
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"

	"appointment-reminder-go/internal/model"
)

// DBDeliveryRecorder writes delivery attempts to the database.
type DBDeliveryRecorder struct {
	db *gorm.DB
}

// NewDBDeliveryRecorder creates a database-backed delivery recorder.
func NewDBDeliveryRecorder(db *gorm.DB) *DBDeliveryRecorder {
	return &DBDeliveryRecorder{db: db}
}

// Record persists a single delivery attempt.
func (r *DBDeliveryRecorder) Record(entry model.DeliveryLog) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	if err := r.db.Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to record delivery attempt: %w", err)
	}
	return nil
}

// Recent returns the newest delivery attempts, most recent first.
func (r *DBDeliveryRecorder) Recent(limit int) ([]model.DeliveryLog, error) {
	var entries []model.DeliveryLog
	if err := r.db.Order("id DESC").Limit(limit).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to read delivery log: %w", err)
	}
	return entries, nil
}

// MemoryDeliveryRecorder keeps a bounded in-memory trail of delivery attempts.
// Used when the file store backend is active and no database is available.
type MemoryDeliveryRecorder struct {
	mu      sync.Mutex
	entries []model.DeliveryLog
	nextID  uint
	cap     int
}

// NewMemoryDeliveryRecorder creates a recorder holding the newest maxEntries.
func NewMemoryDeliveryRecorder(maxEntries int) *MemoryDeliveryRecorder {
	if maxEntries <= 0 {
		maxEntries = 500
	}
	return &MemoryDeliveryRecorder{cap: maxEntries, nextID: 1}
}

// Record appends a delivery attempt, evicting the oldest when full.
func (r *MemoryDeliveryRecorder) Record(entry model.DeliveryLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry.ID = r.nextID
	r.nextID++
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	r.entries = append(r.entries, entry)
	if len(r.entries) > r.cap {
		r.entries = r.entries[len(r.entries)-r.cap:]
	}
	return nil
}

// Recent returns the newest delivery attempts, most recent first.
func (r *MemoryDeliveryRecorder) Recent(limit int) ([]model.DeliveryLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 || limit > len(r.entries) {
		limit = len(r.entries)
	}
	out := make([]model.DeliveryLog, 0, limit)
	for i := len(r.entries) - 1; i >= len(r.entries)-limit; i-- {
		out = append(out, r.entries[i])
	}
	return out, nil
}
