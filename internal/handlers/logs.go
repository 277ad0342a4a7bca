package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"appointment-reminder-go/internal/model"
)

// GetDeliveryLogs returns the most recent delivery log entries, newest first.
// The limit query parameter caps the result (default 100).
func (h *Handlers) GetDeliveryLogs(c *gin.Context) {
	limit := 100
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "validation_error", Message: "limit must be a positive integer", Code: http.StatusBadRequest})
			return
		}
		limit = n
	}

	logs, err := h.recorder.Recent(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "store_error", Message: "Failed to fetch delivery logs", Code: http.StatusInternalServerError})
		return
	}
	c.JSON(http.StatusOK, logs)
}
