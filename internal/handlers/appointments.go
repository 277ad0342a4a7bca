package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"appointment-reminder-go/internal/checklist"
	"appointment-reminder-go/internal/model"
	"appointment-reminder-go/internal/timefmt"
)

// GetAppointments returns appointments, optionally filtered by date, provider,
// or confirmation status.
func (h *Handlers) GetAppointments(c *gin.Context) {
	date := c.Query("date")
	provider := c.Query("provider")
	status := c.Query("status")

	var (
		appointments []model.Appointment
		err          error
	)
	switch {
	case provider != "" && date != "":
		appointments, err = h.service.GetByProviderAndDate(provider, date)
	case date != "":
		appointments, err = h.service.GetByDate(date)
	case status != "":
		appointments, err = h.service.GetByConfirmationStatus(model.ConfirmationStatus(status))
	default:
		appointments, err = h.service.GetAll()
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{
			Error:   "store_error",
			Message: "Failed to fetch appointments",
			Code:    http.StatusInternalServerError,
		})
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// GetAppointment returns a single appointment by ID
func (h *Handlers) GetAppointment(c *gin.Context) {
	id, ok := h.appointmentID(c)
	if !ok {
		return
	}

	appointment, err := h.service.GetByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "store_error", Message: "Failed to fetch appointment", Code: http.StatusInternalServerError})
		return
	}
	if appointment == nil {
		c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "not_found", Message: "Appointment not found", Code: http.StatusNotFound})
		return
	}
	c.JSON(http.StatusOK, appointment)
}

// CreateAppointment books a new appointment. Without override_conflict, a
// double-booking for the same provider, date, and time is rejected with the
// colliding records.
func (h *Handlers) CreateAppointment(c *gin.Context) {
	var req model.AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "validation_error", Message: "Invalid request body", Code: http.StatusBadRequest})
		return
	}

	if req.PatientName == "" || req.Phone == "" || req.AppointmentDate == "" || req.AppointmentTime == "" {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error:   "validation_error",
			Message: "patient_name, phone, appointment_date, and appointment_time are required",
			Code:    http.StatusBadRequest,
		})
		return
	}

	h.applyDefaults(&req)
	req.Phone = normalizePhone(req.Phone)

	if !req.OverrideConflict {
		normalizedTime := timefmt.Normalize(req.AppointmentTime)
		conflicts, err := h.service.FindConflicts(req.ProviderName, req.AppointmentDate, normalizedTime, 0)
		if err != nil {
			c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "store_error", Message: "Failed to check conflicts", Code: http.StatusInternalServerError})
			return
		}
		if len(conflicts) > 0 {
			if h.metrics != nil {
				h.metrics.ConflictsDetected.Inc()
			}
			c.JSON(http.StatusConflict, model.ConflictResponse{
				Error:     "scheduling_conflict",
				Message:   fmt.Sprintf("%s already has an appointment on %s at %s", req.ProviderName, req.AppointmentDate, normalizedTime),
				Conflicts: conflicts,
			})
			return
		}
	} else {
		logrus.Info("Conflict override confirmed, proceeding with conflicting appointment")
	}

	id, err := h.service.Create(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "store_error", Message: "Failed to create appointment", Code: http.StatusInternalServerError})
		return
	}

	created, err := h.service.GetByID(id)
	if err != nil || created == nil {
		c.JSON(http.StatusCreated, gin.H{"id": id})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateAppointment merges new field values over an existing appointment,
// re-checking conflicts when the provider, date, or time changes. With
// notify_patient set, the patient gets an update or reschedule SMS; a failed
// notification never fails the update.
func (h *Handlers) UpdateAppointment(c *gin.Context) {
	id, ok := h.appointmentID(c)
	if !ok {
		return
	}

	existing, err := h.service.GetByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "store_error", Message: "Failed to fetch appointment", Code: http.StatusInternalServerError})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "not_found", Message: "Appointment not found", Code: http.StatusNotFound})
		return
	}

	var req model.AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "validation_error", Message: "Invalid request body", Code: http.StatusBadRequest})
		return
	}
	if req.Phone != "" {
		req.Phone = normalizePhone(req.Phone)
	}

	// Effective values after the merge, for the conflict re-check.
	provider := existing.ProviderName
	if req.ProviderName != "" {
		provider = req.ProviderName
	}
	date := existing.AppointmentDate
	if req.AppointmentDate != "" {
		date = req.AppointmentDate
	}
	timeStr := existing.AppointmentTime
	if req.AppointmentTime != "" {
		timeStr = timefmt.Normalize(req.AppointmentTime)
	}

	changed := provider != existing.ProviderName || date != existing.AppointmentDate || timeStr != existing.AppointmentTime
	if changed && !req.OverrideConflict {
		conflicts, err := h.service.FindConflicts(provider, date, timeStr, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "store_error", Message: "Failed to check conflicts", Code: http.StatusInternalServerError})
			return
		}
		if len(conflicts) > 0 {
			if h.metrics != nil {
				h.metrics.ConflictsDetected.Inc()
			}
			c.JSON(http.StatusConflict, model.ConflictResponse{
				Error:     "scheduling_conflict",
				Message:   fmt.Sprintf("%s already has an appointment on %s at %s", provider, date, timeStr),
				Conflicts: conflicts,
			})
			return
		}
	}

	found, err := h.service.Update(id, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "store_error", Message: "Failed to update appointment", Code: http.StatusInternalServerError})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "not_found", Message: "Appointment not found", Code: http.StatusNotFound})
		return
	}

	updated, err := h.service.GetByID(id)
	if err != nil || updated == nil {
		c.Status(http.StatusOK)
		return
	}

	if req.NotifyPatient && h.notices != nil {
		rescheduled := updated.AppointmentDate != existing.AppointmentDate || updated.AppointmentTime != existing.AppointmentTime
		var noticeErr error
		if rescheduled {
			noticeErr = h.notices.SendRescheduleNotice(c.Request.Context(), *updated, existing.AppointmentDate, existing.AppointmentTime)
		} else {
			noticeErr = h.notices.SendUpdateNotice(c.Request.Context(), *updated)
		}
		if noticeErr != nil {
			logrus.Errorf("Failed to send update notification for appointment %d: %v", id, noticeErr)
		}
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteAppointment hard-removes an appointment by ID. With
// notify_patient=true, the patient gets a cancellation SMS; a failed
// notification never fails the delete.
func (h *Handlers) DeleteAppointment(c *gin.Context) {
	id, ok := h.appointmentID(c)
	if !ok {
		return
	}

	existing, err := h.service.GetByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "store_error", Message: "Failed to fetch appointment", Code: http.StatusInternalServerError})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "not_found", Message: "Appointment not found", Code: http.StatusNotFound})
		return
	}

	found, err := h.service.Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "store_error", Message: "Failed to delete appointment", Code: http.StatusInternalServerError})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "not_found", Message: "Appointment not found", Code: http.StatusNotFound})
		return
	}

	if c.Query("notify_patient") == "true" && h.notices != nil {
		if err := h.notices.SendCancellationNotice(c.Request.Context(), *existing); err != nil {
			logrus.Errorf("Failed to send cancellation notification for appointment %d: %v", id, err)
		}
	}

	c.Status(http.StatusNoContent)
}

// GetAppointmentTypes returns the known appointment types with their default
// pre-visit checklists.
func (h *Handlers) GetAppointmentTypes(c *gin.Context) {
	types := checklist.Types()
	out := make([]gin.H, 0, len(types))
	for _, t := range types {
		out = append(out, gin.H{"type": t, "checklist": checklist.ForType(t)})
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handlers) applyDefaults(req *model.AppointmentRequest) {
	if req.ProviderName == "" {
		req.ProviderName = h.practice.DefaultProvider
	}
	if req.PracticeName == "" {
		req.PracticeName = h.practice.Name
	}
	if req.AppointmentType == "" {
		req.AppointmentType = checklist.DefaultType
	}
}

func (h *Handlers) appointmentID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "invalid_id", Message: "Invalid appointment ID", Code: http.StatusBadRequest})
		return 0, false
	}
	return id, true
}
