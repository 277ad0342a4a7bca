package reminder

import (
	"context"

	"github.com/sirupsen/logrus"

	"appointment-reminder-go/internal/model"
	"appointment-reminder-go/internal/notify"
	"appointment-reminder-go/internal/store"
)

// Notices sends one-off SMS notifications for office-initiated changes:
// detail updates, cancellations, and reschedules.
type Notices struct {
	sms      notify.Notifier
	recorder store.DeliveryRecorder
}

// NewNotices creates a notice sender.
func NewNotices(sms notify.Notifier, recorder store.DeliveryRecorder) *Notices {
	return &Notices{sms: sms, recorder: recorder}
}

// SendUpdateNotice tells the patient their appointment details changed.
func (n *Notices) SendUpdateNotice(ctx context.Context, apt model.Appointment) error {
	return n.send(ctx, apt, "update_notice", UpdateNoticeBody(apt))
}

// SendCancellationNotice tells the patient their appointment was cancelled.
func (n *Notices) SendCancellationNotice(ctx context.Context, apt model.Appointment) error {
	return n.send(ctx, apt, "cancellation_notice", CancellationNoticeBody(apt))
}

// SendRescheduleNotice tells the patient their appointment moved.
func (n *Notices) SendRescheduleNotice(ctx context.Context, apt model.Appointment, oldDate, oldTime string) error {
	return n.send(ctx, apt, "reschedule_notice", RescheduleNoticeBody(apt, oldDate, oldTime))
}

func (n *Notices) send(ctx context.Context, apt model.Appointment, kind, body string) error {
	entry := model.DeliveryLog{
		AppointmentID: apt.ID,
		Kind:          kind,
		Channel:       model.ChannelSMS,
		Destination:   apt.Phone,
	}

	receipt, err := n.sms.Send(ctx, notify.Message{To: apt.Phone, Body: body})
	if err != nil {
		logrus.Errorf("Failed to send %s to %s: %v", kind, apt.PatientName, err)
		entry.Status = model.DeliveryStatusFailed
		entry.ErrorMsg = err.Error()
		n.record(entry)
		return err
	}

	logrus.Infof("%s sent to %s: %s", kind, apt.PatientName, receipt.ProviderMessageID)
	entry.Status = model.DeliveryStatusSent
	entry.ProviderMessageID = receipt.ProviderMessageID
	n.record(entry)
	return nil
}

func (n *Notices) record(entry model.DeliveryLog) {
	if n.recorder == nil {
		return
	}
	if err := n.recorder.Record(entry); err != nil {
		logrus.Errorf("Failed to record notice delivery: %v", err)
	}
}
