package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"appointment-reminder-go/internal/model"
)

// GetSchedulerStatus returns whether the reminder scheduler is running and
// its next/last cycle times.
func (h *Handlers) GetSchedulerStatus(c *gin.Context) {
	status := gin.H{
		"running": h.scheduler.IsRunning(),
	}
	if next := h.scheduler.GetNextRun(); !next.IsZero() {
		status["next_run"] = next.Format(time.RFC3339)
	}
	if last := h.scheduler.GetLastRun(); !last.IsZero() {
		status["last_run"] = last.Format(time.RFC3339)
	}
	c.JSON(http.StatusOK, status)
}

// StartScheduler starts the periodic reminder scheduler
func (h *Handlers) StartScheduler(c *gin.Context) {
	if err := h.scheduler.Start(); err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "scheduler_error", Message: err.Error(), Code: http.StatusInternalServerError})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Scheduler started"})
}

// StopScheduler stops the periodic reminder scheduler
func (h *Handlers) StopScheduler(c *gin.Context) {
	if err := h.scheduler.Stop(); err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "scheduler_error", Message: err.Error(), Code: http.StatusInternalServerError})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Scheduler stopped"})
}

// RunReminders triggers a single reminder cycle immediately and returns the
// per-kind send results.
func (h *Handlers) RunReminders(c *gin.Context) {
	results := h.scheduler.RunOnce(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "Reminder cycle completed", "results": results})
}
