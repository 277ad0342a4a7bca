package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"appointment-reminder-go/internal/model"
)

type testConfirmationRequest struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// TestConfirmation runs a message through the confirmation pipeline without
// going through Twilio. Intended for development and manual testing.
func (h *Handlers) TestConfirmation(c *gin.Context) {
	var req testConfirmationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "validation_error", Message: "Invalid request body", Code: http.StatusBadRequest})
		return
	}
	if req.Phone == "" || req.Message == "" {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "validation_error", Message: "phone and message are required", Code: http.StatusBadRequest})
		return
	}

	result, err := h.confirm.HandleInbound(c.Request.Context(), normalizePhone(req.Phone), req.Message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "confirmation_error", Message: err.Error(), Code: http.StatusInternalServerError})
		return
	}
	c.JSON(http.StatusOK, result)
}
