package appointments

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"appointment-reminder-go/internal/model"
	"appointment-reminder-go/internal/timefmt"
)

// The 4h and 1h windows carry a half-hour tolerance on each side so that a
// polling pass landing anywhere near the lead time still catches the
// appointment. The 24h window matches on calendar day, not a rolling 24 hours.
// The three windows are evaluated independently; with irregular polling an
// appointment can fall between windows and miss a reminder, which is an
// accepted property of the polling model.
const (
	fourHourLower = 3*time.Hour + 30*time.Minute
	fourHourUpper = 4*time.Hour + 30*time.Minute
	oneHourLower  = 30 * time.Minute
	oneHourUpper  = time.Hour + 30*time.Minute
)

// Needing24hReminders returns appointments dated tomorrow (local calendar day)
// whose 24h reminder has not gone out.
func (s *Service) Needing24hReminders() ([]model.Appointment, error) {
	appointments, err := s.store.ReadAll()
	if err != nil {
		return nil, err
	}

	tomorrow := s.now().AddDate(0, 0, 1).Format(dateLayout)
	matched := make([]model.Appointment, 0)
	for _, apt := range appointments {
		if apt.AppointmentDate == tomorrow && !apt.Reminder24hSent {
			matched = append(matched, apt)
		}
	}
	return matched, nil
}

// Needing4hReminders returns appointments between 3.5 and 4.5 hours away whose
// 4h reminder has not gone out.
func (s *Service) Needing4hReminders() ([]model.Appointment, error) {
	return s.needingWindowReminders(fourHourLower, fourHourUpper, model.Reminder4h)
}

// Needing1hReminders returns appointments between 0.5 and 1.5 hours away whose
// 1h reminder has not gone out.
func (s *Service) Needing1hReminders() ([]model.Appointment, error) {
	return s.needingWindowReminders(oneHourLower, oneHourUpper, model.Reminder1h)
}

// NeedingEmailReminders returns tomorrow's appointments that have an email
// address and no email reminder sent yet.
func (s *Service) NeedingEmailReminders() ([]model.Appointment, error) {
	appointments, err := s.store.ReadAll()
	if err != nil {
		return nil, err
	}

	tomorrow := s.now().AddDate(0, 0, 1).Format(dateLayout)
	matched := make([]model.Appointment, 0)
	for _, apt := range appointments {
		if apt.AppointmentDate == tomorrow && !apt.EmailReminderSent && strings.TrimSpace(apt.Email) != "" {
			matched = append(matched, apt)
		}
	}
	return matched, nil
}

func (s *Service) needingWindowReminders(lower, upper time.Duration, kind model.ReminderKind) ([]model.Appointment, error) {
	appointments, err := s.store.ReadAll()
	if err != nil {
		return nil, err
	}

	now := s.now()
	matched := make([]model.Appointment, 0)
	for _, apt := range appointments {
		if apt.ReminderSent(kind) {
			continue
		}
		at, err := s.appointmentAt(apt)
		if err != nil {
			logrus.Debugf("Skipping appointment %d with unparseable time %q %q", apt.ID, apt.AppointmentDate, apt.AppointmentTime)
			continue
		}
		until := at.Sub(now)
		if until > lower && until < upper {
			matched = append(matched, apt)
		}
	}
	return matched, nil
}

// appointmentAt combines the date and canonical time into the single local
// instant used for window computations.
func (s *Service) appointmentAt(apt model.Appointment) (time.Time, error) {
	return time.ParseInLocation(
		dateLayout+"T15:04:05",
		apt.AppointmentDate+"T"+timefmt.To24Hour(apt.AppointmentTime),
		time.Local,
	)
}

// MarkReminderSent sets the sent flag for one reminder kind. Re-marking an
// already sent reminder is a no-op. Returns false when the id does not exist.
func (s *Service) MarkReminderSent(id int, kind model.ReminderKind) (bool, error) {
	appointments, err := s.store.ReadAll()
	if err != nil {
		return false, err
	}

	for i := range appointments {
		if appointments[i].ID != id {
			continue
		}
		appointments[i].SetReminderSent(kind)
		appointments[i].UpdatedAt = s.now()
		if err := s.store.WriteAll(appointments); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}
