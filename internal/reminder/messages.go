// Package reminder composes and dispatches the outbound reminder batches for
// the fixed lead times, and runs the periodic processing loop.
package reminder

import (
	"fmt"
	"time"

	"appointment-reminder-go/internal/checklist"
	"appointment-reminder-go/internal/model"
	"appointment-reminder-go/internal/notify"
)

// SMSBody composes the reminder text for one lead time.
func SMSBody(apt model.Appointment, kind model.ReminderKind) string {
	checklistText := checklist.FormatForSMS(apt.PreVisitChecklist, "Checklist:")

	switch kind {
	case model.Reminder24h:
		return fmt.Sprintf("Hi %s! Reminder: %s with %s TOMORROW at %s. Please arrive 15 minutes early.%s\n\nReply YES to confirm or NO to cancel. Reply STOP to opt out.",
			apt.PatientName, apt.AppointmentType, apt.ProviderName, apt.AppointmentTime, checklistText)
	case model.Reminder4h:
		return fmt.Sprintf("Hi %s! Your %s with %s is in 4 hours at %s.%s\n\nReply YES to confirm you're coming. Reply STOP to opt out.",
			apt.PatientName, apt.AppointmentType, apt.ProviderName, apt.AppointmentTime, checklistText)
	case model.Reminder1h:
		return fmt.Sprintf("Hi %s! Your %s with %s is in 1 HOUR at %s. Please head over soon!%s\n\nReply YES if you're on your way. Reply STOP to opt out.",
			apt.PatientName, apt.AppointmentType, apt.ProviderName, apt.AppointmentTime, checklistText)
	default:
		return fmt.Sprintf("Hi %s! Reminder: %s with %s at %s.%s\n\nReply YES to confirm. Reply STOP to opt out.",
			apt.PatientName, apt.AppointmentType, apt.ProviderName, apt.AppointmentTime, checklistText)
	}
}

// EmailMessage composes the email reminder with plain-text and HTML parts.
func EmailMessage(apt model.Appointment) notify.Message {
	date := displayDate(apt.AppointmentDate)
	checklistHTML := checklist.FormatForEmail(apt.PreVisitChecklist)

	text := fmt.Sprintf(`Hi %s!

This is a friendly reminder about your upcoming appointment:

Practice: %s
Provider: %s
Date: %s
Time: %s

Please arrive 15 minutes early for check-in. If you need to reschedule, please contact us as soon as possible.

This is an automated reminder from %s`,
		apt.PatientName, apt.PracticeName, apt.ProviderName, date, apt.AppointmentTime, apt.PracticeName)

	html := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: #4299e1; color: white; padding: 20px; border-radius: 8px 8px 0 0; text-align: center;">
    <h1 style="margin: 0;">📅 Appointment Reminder</h1>
  </div>
  <div style="background: #f7fafc; padding: 30px; border-radius: 0 0 8px 8px; border: 1px solid #e2e8f0;">
    <h2 style="color: #2d3748; margin-top: 0;">Hi %s!</h2>
    <p style="color: #4a5568; font-size: 16px; line-height: 1.6;">This is a friendly reminder about your upcoming appointment:</p>
    <div style="background: white; padding: 20px; border-radius: 6px; margin: 20px 0; border-left: 4px solid #4299e1;">
      <p><strong>📍 Practice:</strong> %s</p>
      <p><strong>👨‍⚕️ Provider:</strong> %s</p>
      <p><strong>📅 Date:</strong> %s</p>
      <p><strong>⏰ Time:</strong> %s</p>
    </div>%s
    <p style="color: #4a5568; font-size: 14px; margin-top: 30px;">Please arrive 15 minutes early for check-in. If you need to reschedule, please contact us as soon as possible.</p>
    <p style="color: #718096; font-size: 12px; text-align: center;">This is an automated reminder from %s</p>
  </div>
</div>`,
		apt.PatientName, apt.PracticeName, apt.ProviderName, date, apt.AppointmentTime, checklistHTML, apt.PracticeName)

	return notify.Message{
		To:       apt.Email,
		Subject:  fmt.Sprintf("📅 Appointment Reminder - %s", apt.PracticeName),
		Body:     text,
		HTMLBody: html,
	}
}

// UpdateNoticeBody composes the SMS sent when appointment details change.
func UpdateNoticeBody(apt model.Appointment) string {
	checklistText := checklist.FormatForSMS(apt.PreVisitChecklist, "Updated checklist:")
	return fmt.Sprintf(`📅 APPOINTMENT UPDATE from %s

Hi %s! Your appointment details have been updated:

📍 %s with %s
📅 %s at %s%s

Please save these new details. Reply YES to confirm you received this update.

If you have questions, please call us directly.`,
		apt.PracticeName, apt.PatientName, apt.AppointmentType, apt.ProviderName,
		displayDate(apt.AppointmentDate), apt.AppointmentTime, checklistText)
}

// CancellationNoticeBody composes the SMS sent when the office cancels an
// appointment.
func CancellationNoticeBody(apt model.Appointment) string {
	return fmt.Sprintf(`❌ APPOINTMENT CANCELLED - %s

Hi %s, your appointment has been cancelled:

%s with %s
Originally scheduled: %s at %s

Please call us to reschedule.

We apologize for any inconvenience.`,
		apt.PracticeName, apt.PatientName, apt.AppointmentType, apt.ProviderName,
		displayDate(apt.AppointmentDate), apt.AppointmentTime)
}

// RescheduleNoticeBody composes the SMS sent when an appointment moves to a
// new date or time.
func RescheduleNoticeBody(apt model.Appointment, oldDate, oldTime string) string {
	checklistText := checklist.FormatForSMS(apt.PreVisitChecklist, "Reminder checklist:")
	return fmt.Sprintf(`🔄 APPOINTMENT RESCHEDULED - %s

Hi %s! Your appointment has been moved:

❌ OLD: %s at %s
✅ NEW: %s at %s

%s with %s%s

Please update your calendar. Reply YES to confirm you received this update.`,
		apt.PracticeName, apt.PatientName,
		displayDate(oldDate), oldTime,
		displayDate(apt.AppointmentDate), apt.AppointmentTime,
		apt.AppointmentType, apt.ProviderName, checklistText)
}

func displayDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("January 2, 2006")
}
