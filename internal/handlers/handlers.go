// Package handlers contains the gin HTTP handlers: the appointment CRUD API,
// the inbound SMS webhook, and the operational endpoints.
package handlers

import (
	"github.com/gin-gonic/gin"

	"appointment-reminder-go/internal/appointments"
	"appointment-reminder-go/internal/config"
	"appointment-reminder-go/internal/confirmation"
	"appointment-reminder-go/internal/metrics"
	"appointment-reminder-go/internal/reminder"
	"appointment-reminder-go/internal/store"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	service   *appointments.Service
	confirm   *confirmation.Handler
	notices   *reminder.Notices
	scheduler *reminder.Scheduler
	recorder  store.DeliveryRecorder
	metrics   *metrics.Metrics
	practice  config.PracticeConfig
}

// NewHandlers creates new HTTP handlers
func NewHandlers(
	service *appointments.Service,
	confirm *confirmation.Handler,
	notices *reminder.Notices,
	scheduler *reminder.Scheduler,
	recorder store.DeliveryRecorder,
	m *metrics.Metrics,
	practice config.PracticeConfig,
) *Handlers {
	return &Handlers{
		service:   service,
		confirm:   confirm,
		notices:   notices,
		scheduler: scheduler,
		recorder:  recorder,
		metrics:   m,
		practice:  practice,
	}
}

// SetupRoutes registers all routes on the router
func (h *Handlers) SetupRoutes(r *gin.Engine) {
	r.GET("/health", h.HealthCheck)

	r.POST("/webhook/sms", h.SMSWebhook)

	api := r.Group("/api")
	{
		api.GET("/appointments", h.GetAppointments)
		api.POST("/appointments", h.CreateAppointment)
		api.GET("/appointments/:id", h.GetAppointment)
		api.PUT("/appointments/:id", h.UpdateAppointment)
		api.DELETE("/appointments/:id", h.DeleteAppointment)

		api.GET("/appointment-types", h.GetAppointmentTypes)
		api.GET("/logs", h.GetDeliveryLogs)

		api.POST("/test-confirmation", h.TestConfirmation)

		api.POST("/reminders/run", h.RunReminders)
		api.GET("/scheduler/status", h.GetSchedulerStatus)
		api.POST("/scheduler/start", h.StartScheduler)
		api.POST("/scheduler/stop", h.StopScheduler)
	}
}
