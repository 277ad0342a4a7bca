package model

import (
	"time"
)

// ConfirmationStatus is the patient-declared disposition toward an appointment,
// derived from inbound message classification.
type ConfirmationStatus string

const (
	StatusPending             ConfirmationStatus = "pending"
	StatusConfirmed           ConfirmationStatus = "confirmed"
	StatusCancelled           ConfirmationStatus = "cancelled"
	StatusRescheduleRequested ConfirmationStatus = "reschedule_requested"
	StatusUnsubscribed        ConfirmationStatus = "unsubscribed"
	StatusUnclear             ConfirmationStatus = "unclear"
)

// Confidence qualifies how certain the classifier is about an intent.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// ReminderKind identifies one of the fixed lead times a reminder is sent at.
type ReminderKind string

const (
	Reminder24h   ReminderKind = "24h"
	Reminder4h    ReminderKind = "4h"
	Reminder1h    ReminderKind = "1h"
	ReminderEmail ReminderKind = "email"
)

// Appointment represents a scheduled patient visit.
type Appointment struct {
	ID                     int                `json:"id" gorm:"primaryKey"`
	PatientName            string             `json:"patient_name" gorm:"type:varchar(255);not null"`
	Phone                  string             `json:"phone" gorm:"type:varchar(32);not null;index"`
	Email                  string             `json:"email" gorm:"type:varchar(255)"`
	AppointmentDate        string             `json:"appointment_date" gorm:"type:varchar(10);not null;index"`
	AppointmentTime        string             `json:"appointment_time" gorm:"type:varchar(16);not null"`
	ProviderName           string             `json:"provider_name" gorm:"type:varchar(255);not null"`
	PracticeName           string             `json:"practice_name" gorm:"type:varchar(255)"`
	AppointmentType        string             `json:"appointment_type" gorm:"type:varchar(64)"`
	PreVisitChecklist      string             `json:"pre_visit_checklist" gorm:"type:text"`
	Reminder24hSent        bool               `json:"reminder_24h_sent"`
	Reminder4hSent         bool               `json:"reminder_4h_sent"`
	Reminder1hSent         bool               `json:"reminder_1h_sent"`
	EmailReminderSent      bool               `json:"email_reminder_sent"`
	ConfirmationStatus     ConfirmationStatus `json:"confirmation_status" gorm:"type:varchar(32)"`
	ConfirmationMessage    string             `json:"confirmation_message" gorm:"type:text"`
	ConfirmationReceivedAt *time.Time         `json:"confirmation_received_at,omitempty"`
	CreatedAt              time.Time          `json:"created_at"`
	UpdatedAt              time.Time          `json:"updated_at"`
}

// TableName specifies the table name for Appointment
func (Appointment) TableName() string {
	return "appointments"
}

// ReminderSent reports whether the reminder for the given kind has already gone out.
func (a *Appointment) ReminderSent(kind ReminderKind) bool {
	switch kind {
	case Reminder24h:
		return a.Reminder24hSent
	case Reminder4h:
		return a.Reminder4hSent
	case Reminder1h:
		return a.Reminder1hSent
	case ReminderEmail:
		return a.EmailReminderSent
	}
	return false
}

// SetReminderSent flips the sent flag for the given kind. The flags only ever
// move false -> true; re-marking an already sent reminder is a no-op.
func (a *Appointment) SetReminderSent(kind ReminderKind) {
	switch kind {
	case Reminder24h:
		a.Reminder24hSent = true
	case Reminder4h:
		a.Reminder4hSent = true
	case Reminder1h:
		a.Reminder1hSent = true
	case ReminderEmail:
		a.EmailReminderSent = true
	}
}
