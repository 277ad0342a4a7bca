package confirmation

import (
	"context"

	"github.com/sirupsen/logrus"

	"appointment-reminder-go/internal/appointments"
	"appointment-reminder-go/internal/metrics"
	"appointment-reminder-go/internal/model"
	"appointment-reminder-go/internal/notify"
	"appointment-reminder-go/internal/store"
)

// Handler processes inbound SMS replies: classify, apply the state
// transition, and send a templated auto-reply.
type Handler struct {
	service  *appointments.Service
	notifier notify.Notifier
	recorder store.DeliveryRecorder
	metrics  *metrics.Metrics
}

// NewHandler creates an inbound confirmation handler.
func NewHandler(service *appointments.Service, notifier notify.Notifier, recorder store.DeliveryRecorder, m *metrics.Metrics) *Handler {
	return &Handler{service: service, notifier: notifier, recorder: recorder, metrics: m}
}

// HandleInbound processes one inbound message from a phone number. A missing
// upcoming appointment is a non-error outcome (Success=false); an auto-reply
// dispatch failure is logged and swallowed so it never fails the
// classification itself.
func (h *Handler) HandleInbound(ctx context.Context, fromPhone, messageBody string) (model.ConfirmationResult, error) {
	logrus.Infof("Received SMS from %s: %q", fromPhone, messageBody)

	appointment, err := h.service.UpcomingByPhone(fromPhone)
	if err != nil {
		return model.ConfirmationResult{}, err
	}
	if appointment == nil {
		logrus.Infof("No upcoming appointment found for %s", fromPhone)
		return model.ConfirmationResult{Success: false, Error: "No upcoming appointment found"}, nil
	}

	parsed := Classify(messageBody)
	logrus.Infof("Parsed message: %s (confidence: %s)", parsed.Action, parsed.Confidence)

	updated, err := h.service.RecordConfirmation(fromPhone, parsed.Action, messageBody)
	if err != nil {
		return model.ConfirmationResult{}, err
	}
	if updated == nil {
		return model.ConfirmationResult{Success: false, Error: "Failed to update appointment"}, nil
	}

	if h.metrics != nil {
		h.metrics.ConfirmationsReceived.Inc()
	}

	response := ReplyFor(updated, parsed.Action)
	h.sendAutoReply(ctx, updated, response)

	logrus.Infof("Processed confirmation for %s: %s", updated.PatientName, parsed.Action)
	return model.ConfirmationResult{
		Success:     true,
		Action:      parsed.Action,
		Confidence:  parsed.Confidence,
		Appointment: updated,
		Response:    response,
	}, nil
}

func (h *Handler) sendAutoReply(ctx context.Context, apt *model.Appointment, body string) {
	if h.notifier == nil {
		return
	}

	entry := model.DeliveryLog{
		AppointmentID: apt.ID,
		Kind:          "auto_reply",
		Channel:       model.ChannelSMS,
		Destination:   apt.Phone,
	}

	receipt, err := h.notifier.Send(ctx, notify.Message{To: apt.Phone, Body: body})
	if err != nil {
		logrus.Errorf("Failed to send auto-response to %s: %v", apt.Phone, err)
		entry.Status = model.DeliveryStatusFailed
		entry.ErrorMsg = err.Error()
	} else {
		logrus.Infof("Auto-response sent to %s: %s", apt.Phone, receipt.ProviderMessageID)
		entry.Status = model.DeliveryStatusSent
		entry.ProviderMessageID = receipt.ProviderMessageID
	}

	if h.recorder != nil {
		if err := h.recorder.Record(entry); err != nil {
			logrus.Errorf("Failed to record auto-reply delivery: %v", err)
		}
	}
}
