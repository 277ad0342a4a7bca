package handlers

import (
	"encoding/xml"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// twimlResponse is the minimal TwiML document Twilio expects back from an
// inbound SMS webhook. An empty Message element suppresses the carrier reply;
// the confirmation handler sends its own.
type twimlResponse struct {
	XMLName xml.Name `xml:"Response"`
	Message string   `xml:"Message,omitempty"`
}

// SMSWebhook receives inbound SMS delivery from Twilio, classifies the reply
// against the sender's soonest upcoming appointment, and answers with TwiML.
func (h *Handlers) SMSWebhook(c *gin.Context) {
	from := c.PostForm("From")
	body := c.PostForm("Body")

	logrus.Infof("Inbound SMS from %s: %q", from, body)

	result, err := h.confirm.HandleInbound(c.Request.Context(), from, body)
	if err != nil {
		logrus.Errorf("Failed to process inbound SMS from %s: %v", from, err)
		c.XML(http.StatusInternalServerError, twimlResponse{
			Message: "Sorry, there was an error processing your message. Please call us directly.",
		})
		return
	}

	if !result.Success {
		c.XML(http.StatusOK, twimlResponse{
			Message: "We received your message but couldn't find an upcoming appointment. Please call us if you need assistance.",
		})
		return
	}

	// The confirmation handler already sent the detailed auto-reply over the
	// Twilio REST API, so the TwiML answer stays empty.
	c.XML(http.StatusOK, twimlResponse{})
}
