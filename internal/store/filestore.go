package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"appointment-reminder-go/internal/model"
)

// FileStore persists the appointment collection as a single JSON file.
// Writes go to a temp file in the same directory followed by a rename, so a
// reader observes either the previous or the new snapshot.
type FileStore struct {
	path string
}

// NewFileStore creates the backing file with an empty collection if it does
// not exist yet.
func NewFileStore(path string) (*FileStore, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
		if err := os.WriteFile(path, []byte("[]\n"), 0o644); err != nil {
			return nil, fmt.Errorf("failed to initialize store file: %w", err)
		}
		logrus.Infof("Appointment store initialized at %s", path)
	} else if err != nil {
		return nil, fmt.Errorf("failed to stat store file: %w", err)
	}
	return &FileStore{path: path}, nil
}

// ReadAll loads the full appointment collection.
func (s *FileStore) ReadAll() ([]model.Appointment, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.Appointment{}, nil
		}
		return nil, fmt.Errorf("failed to read appointments: %w", err)
	}

	var appointments []model.Appointment
	if err := json.Unmarshal(data, &appointments); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	if appointments == nil {
		appointments = []model.Appointment{}
	}
	return appointments, nil
}

// WriteAll replaces the full appointment collection.
func (s *FileStore) WriteAll(appointments []model.Appointment) error {
	if appointments == nil {
		appointments = []model.Appointment{}
	}
	data, err := json.MarshalIndent(appointments, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode appointments: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".appointments-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp store file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write appointments: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp store file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
}
