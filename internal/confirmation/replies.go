package confirmation

import (
	"fmt"
	"time"

	"appointment-reminder-go/internal/model"
)

// ReplyFor composes the auto-reply sent back after an inbound message was
// classified and applied to the appointment.
func ReplyFor(apt *model.Appointment, action model.ConfirmationStatus) string {
	date := displayDate(apt.AppointmentDate)

	switch action {
	case model.StatusConfirmed:
		return fmt.Sprintf("Thank you %s! Your appointment with %s on %s at %s is CONFIRMED. See you then! - %s",
			apt.PatientName, apt.ProviderName, date, apt.AppointmentTime, apt.PracticeName)
	case model.StatusCancelled:
		return fmt.Sprintf("We've noted that you need to cancel your appointment with %s on %s at %s. Please call us to confirm cancellation and reschedule if needed. - %s",
			apt.ProviderName, date, apt.AppointmentTime, apt.PracticeName)
	case model.StatusRescheduleRequested:
		return fmt.Sprintf("We've received your request to reschedule your appointment with %s on %s at %s. Our office will contact you soon to arrange a new time. - %s",
			apt.ProviderName, date, apt.AppointmentTime, apt.PracticeName)
	case model.StatusUnsubscribed:
		return fmt.Sprintf("You've been unsubscribed from appointment reminders. Reply START to resume reminders. - %s",
			apt.PracticeName)
	default:
		return fmt.Sprintf("We received your message about your appointment with %s on %s at %s. If you need to confirm, cancel, or reschedule, please reply with YES, NO, or RESCHEDULE. You can also call us directly. - %s",
			apt.ProviderName, date, apt.AppointmentTime, apt.PracticeName)
	}
}

// displayDate renders an ISO date for patient-facing text, falling back to the
// raw value when it does not parse.
func displayDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("January 2, 2006")
}
