package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"appointment-reminder-go/internal/model"
)

// HealthCheck reports service health, including store reachability and
// scheduler state.
func (h *Handlers) HealthCheck(c *gin.Context) {
	status := "healthy"
	storeStatus := "ok"
	code := http.StatusOK

	if _, err := h.service.GetAll(); err != nil {
		status = "unhealthy"
		storeStatus = "unreachable"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, model.HealthResponse{
		Status:    status,
		Timestamp: time.Now(),
		Store:     storeStatus,
		Metrics: map[string]string{
			"scheduler_running": strconv.FormatBool(h.scheduler.IsRunning()),
		},
	})
}
