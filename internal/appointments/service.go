// Package appointments implements the appointment lifecycle: record creation
// and mutation, double-booking detection, confirmation-state transitions, and
// the reminder eligibility queries the scheduler polls.
package appointments

import (
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"appointment-reminder-go/internal/checklist"
	"appointment-reminder-go/internal/model"
	"appointment-reminder-go/internal/store"
	"appointment-reminder-go/internal/timefmt"
)

const dateLayout = "2006-01-02"

// Service orchestrates all appointment mutations. Every mutation is a single
// read-whole-then-write-whole cycle against the store; the service assumes at
// most one concurrent mutator.
type Service struct {
	store store.Store
	now   func() time.Time
}

// NewService creates an appointment service backed by the given store.
func NewService(st store.Store) *Service {
	return &Service{store: st, now: time.Now}
}

// Create normalizes the appointment time, assigns the next id, initializes
// reminder flags and confirmation status, and persists the new record.
// It assumes required fields were validated at the request boundary.
func (s *Service) Create(req model.AppointmentRequest) (int, error) {
	appointments, err := s.store.ReadAll()
	if err != nil {
		return 0, err
	}

	id := 1
	for _, apt := range appointments {
		if apt.ID >= id {
			id = apt.ID + 1
		}
	}

	appointmentType := req.AppointmentType
	if appointmentType == "" {
		appointmentType = checklist.DefaultType
	}

	now := s.now()
	appointment := model.Appointment{
		ID:                 id,
		PatientName:        req.PatientName,
		Phone:              req.Phone,
		Email:              req.Email,
		AppointmentDate:    req.AppointmentDate,
		AppointmentTime:    timefmt.Normalize(req.AppointmentTime),
		ProviderName:       req.ProviderName,
		PracticeName:       req.PracticeName,
		AppointmentType:    appointmentType,
		PreVisitChecklist:  req.PreVisitChecklist,
		ConfirmationStatus: model.StatusPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	appointments = append(appointments, appointment)
	if err := s.store.WriteAll(appointments); err != nil {
		return 0, fmt.Errorf("failed to save appointment: %w", err)
	}

	logrus.Infof("Added appointment for %s - ID: %d", appointment.PatientName, id)
	return id, nil
}

// Update merges non-empty request fields over the existing record, preserving
// reminder flags and confirmation state, and refreshes the updated timestamp.
// Returns false when the id does not exist.
func (s *Service) Update(id int, req model.AppointmentRequest) (bool, error) {
	appointments, err := s.store.ReadAll()
	if err != nil {
		return false, err
	}

	idx := -1
	for i := range appointments {
		if appointments[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false, nil
	}

	apt := &appointments[idx]
	if req.PatientName != "" {
		apt.PatientName = req.PatientName
	}
	if req.Phone != "" {
		apt.Phone = req.Phone
	}
	if req.Email != "" {
		apt.Email = req.Email
	}
	if req.AppointmentDate != "" {
		apt.AppointmentDate = req.AppointmentDate
	}
	if req.AppointmentTime != "" {
		apt.AppointmentTime = timefmt.Normalize(req.AppointmentTime)
	}
	if req.ProviderName != "" {
		apt.ProviderName = req.ProviderName
	}
	if req.PracticeName != "" {
		apt.PracticeName = req.PracticeName
	}
	if req.AppointmentType != "" {
		apt.AppointmentType = req.AppointmentType
	}
	if req.PreVisitChecklist != "" {
		apt.PreVisitChecklist = req.PreVisitChecklist
	}
	apt.UpdatedAt = s.now()

	if err := s.store.WriteAll(appointments); err != nil {
		return false, fmt.Errorf("failed to update appointment: %w", err)
	}

	logrus.Infof("Updated appointment for %s - ID: %d", apt.PatientName, id)
	return true, nil
}

// Delete hard-removes the record. Returns false when the id was not present.
func (s *Service) Delete(id int) (bool, error) {
	appointments, err := s.store.ReadAll()
	if err != nil {
		return false, err
	}

	kept := appointments[:0]
	for _, apt := range appointments {
		if apt.ID != id {
			kept = append(kept, apt)
		}
	}
	if len(kept) == len(appointments) {
		return false, nil
	}

	if err := s.store.WriteAll(kept); err != nil {
		return false, fmt.Errorf("failed to delete appointment: %w", err)
	}
	return true, nil
}

// GetByID returns the appointment with the given id, or nil when absent.
func (s *Service) GetByID(id int) (*model.Appointment, error) {
	appointments, err := s.store.ReadAll()
	if err != nil {
		return nil, err
	}
	for i := range appointments {
		if appointments[i].ID == id {
			return &appointments[i], nil
		}
	}
	return nil, nil
}

// GetAll returns every appointment in chronological order.
func (s *Service) GetAll() ([]model.Appointment, error) {
	appointments, err := s.store.ReadAll()
	if err != nil {
		return nil, err
	}
	sortChronologically(appointments)
	return appointments, nil
}

// GetByDate returns the appointments on a calendar date, ordered by time.
func (s *Service) GetByDate(date string) ([]model.Appointment, error) {
	appointments, err := s.store.ReadAll()
	if err != nil {
		return nil, err
	}
	matched := make([]model.Appointment, 0)
	for _, apt := range appointments {
		if apt.AppointmentDate == date {
			matched = append(matched, apt)
		}
	}
	sortChronologically(matched)
	return matched, nil
}

// GetByProviderAndDate returns a provider's appointments on a date, ordered by
// time of day.
func (s *Service) GetByProviderAndDate(provider, date string) ([]model.Appointment, error) {
	appointments, err := s.store.ReadAll()
	if err != nil {
		return nil, err
	}
	matched := make([]model.Appointment, 0)
	for _, apt := range appointments {
		if apt.ProviderName == provider && apt.AppointmentDate == date {
			matched = append(matched, apt)
		}
	}
	sortChronologically(matched)
	return matched, nil
}

// GetByConfirmationStatus returns the appointments carrying the given status.
func (s *Service) GetByConfirmationStatus(status model.ConfirmationStatus) ([]model.Appointment, error) {
	appointments, err := s.store.ReadAll()
	if err != nil {
		return nil, err
	}
	matched := make([]model.Appointment, 0)
	for _, apt := range appointments {
		if apt.ConfirmationStatus == status {
			matched = append(matched, apt)
		}
	}
	return matched, nil
}

// FindConflicts returns every appointment sharing the exact provider, date,
// and canonical time triple. Time matching is exact string equality, so the
// query time must already be normalized. excludeID skips the record being
// edited; pass 0 to exclude nothing.
func (s *Service) FindConflicts(provider, date, timeStr string, excludeID int) ([]model.Appointment, error) {
	appointments, err := s.store.ReadAll()
	if err != nil {
		return nil, err
	}

	conflicts := make([]model.Appointment, 0)
	for _, apt := range appointments {
		if excludeID != 0 && apt.ID == excludeID {
			continue
		}
		if apt.ProviderName == provider && apt.AppointmentDate == date && apt.AppointmentTime == timeStr {
			conflicts = append(conflicts, apt)
		}
	}
	return conflicts, nil
}

// UpcomingByPhone returns the soonest appointment dated today or later for a
// phone number, or nil when there is none.
func (s *Service) UpcomingByPhone(phone string) (*model.Appointment, error) {
	appointments, err := s.store.ReadAll()
	if err != nil {
		return nil, err
	}

	upcoming := s.upcomingForPhone(appointments, phone)
	if len(upcoming) == 0 {
		return nil, nil
	}
	apt := *upcoming[0]
	return &apt, nil
}

// RecordConfirmation applies an inbound classification to the soonest upcoming
// appointment for the phone number. Returns nil, not an error, when no
// qualifying appointment exists.
func (s *Service) RecordConfirmation(phone string, action model.ConfirmationStatus, rawMessage string) (*model.Appointment, error) {
	appointments, err := s.store.ReadAll()
	if err != nil {
		return nil, err
	}

	upcoming := s.upcomingForPhone(appointments, phone)
	if len(upcoming) == 0 {
		return nil, nil
	}

	apt := upcoming[0]
	now := s.now()
	apt.ConfirmationStatus = action
	apt.ConfirmationMessage = rawMessage
	apt.ConfirmationReceivedAt = &now
	apt.UpdatedAt = now

	if err := s.store.WriteAll(appointments); err != nil {
		return nil, fmt.Errorf("failed to update confirmation: %w", err)
	}

	logrus.Infof("Updated confirmation for %s: %s", apt.PatientName, action)
	updated := *apt
	return &updated, nil
}

// upcomingForPhone returns pointers into the slice for the phone's
// today-or-later appointments, soonest date first.
func (s *Service) upcomingForPhone(appointments []model.Appointment, phone string) []*model.Appointment {
	today := s.now().Format(dateLayout)

	var upcoming []*model.Appointment
	for i := range appointments {
		if appointments[i].Phone == phone && appointments[i].AppointmentDate >= today {
			upcoming = append(upcoming, &appointments[i])
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].AppointmentDate < upcoming[j].AppointmentDate
	})
	return upcoming
}

func sortChronologically(appointments []model.Appointment) {
	sort.SliceStable(appointments, func(i, j int) bool {
		if appointments[i].AppointmentDate != appointments[j].AppointmentDate {
			return appointments[i].AppointmentDate < appointments[j].AppointmentDate
		}
		return timefmt.To24Hour(appointments[i].AppointmentTime) < timefmt.To24Hour(appointments[j].AppointmentTime)
	})
}
