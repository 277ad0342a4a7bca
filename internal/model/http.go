package model

import (
	"time"
)

// AppointmentRequest is the request body for creating or updating an appointment.
// On update, empty fields leave the stored value untouched.
type AppointmentRequest struct {
	PatientName       string `json:"patient_name"`
	Phone             string `json:"phone"`
	Email             string `json:"email"`
	AppointmentDate   string `json:"appointment_date"`
	AppointmentTime   string `json:"appointment_time"`
	ProviderName      string `json:"provider_name"`
	PracticeName      string `json:"practice_name"`
	AppointmentType   string `json:"appointment_type"`
	PreVisitChecklist string `json:"pre_visit_checklist"`
	OverrideConflict  bool   `json:"override_conflict"`
	NotifyPatient     bool   `json:"notify_patient"`
}

// ErrorResponse is the standard error payload
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// ConflictResponse is returned when a create/update collides with an existing
// booking and the caller did not set override_conflict.
type ConflictResponse struct {
	Error     string        `json:"error"`
	Message   string        `json:"message"`
	Conflicts []Appointment `json:"conflicts"`
}

// ConfirmationResult is the structured outcome of an inbound SMS confirmation.
type ConfirmationResult struct {
	Success     bool               `json:"success"`
	Action      ConfirmationStatus `json:"action,omitempty"`
	Confidence  Confidence         `json:"confidence,omitempty"`
	Appointment *Appointment       `json:"appointment,omitempty"`
	Response    string             `json:"response,omitempty"`
	Error       string             `json:"error,omitempty"`
}

// ReminderBatchResult tallies one reminder processing pass.
type ReminderBatchResult struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}

// HealthResponse is the health check payload
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Store     string            `json:"store"`
	Metrics   map[string]string `json:"metrics"`
}
