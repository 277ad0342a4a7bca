package reminder

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"appointment-reminder-go/internal/appointments"
	"appointment-reminder-go/internal/metrics"
	"appointment-reminder-go/internal/model"
	"appointment-reminder-go/internal/notify"
	"appointment-reminder-go/internal/store"
)

// Processor walks the due appointments for each lead time sequentially:
// compose, dispatch, and mark sent only after a successful dispatch. A failed
// dispatch is tallied and never blocks the remaining items.
type Processor struct {
	service  *appointments.Service
	sms      notify.Notifier
	email    notify.Notifier
	recorder store.DeliveryRecorder
	metrics  *metrics.Metrics

	// dispatchDelay paces consecutive dispatches to stay inside provider
	// rate limits. It is a policy knob, not part of eligibility.
	dispatchDelay time.Duration
}

// NewProcessor creates a reminder processor. email may be nil when email
// reminders are disabled.
func NewProcessor(service *appointments.Service, sms, email notify.Notifier, recorder store.DeliveryRecorder, m *metrics.Metrics, dispatchDelay time.Duration) *Processor {
	return &Processor{
		service:       service,
		sms:           sms,
		email:         email,
		recorder:      recorder,
		metrics:       m,
		dispatchDelay: dispatchDelay,
	}
}

// Process24h sends SMS reminders for tomorrow's appointments.
func (p *Processor) Process24h(ctx context.Context) model.ReminderBatchResult {
	return p.processSMSBatch(ctx, model.Reminder24h, p.service.Needing24hReminders)
}

// Process4h sends SMS reminders for appointments roughly four hours out.
func (p *Processor) Process4h(ctx context.Context) model.ReminderBatchResult {
	return p.processSMSBatch(ctx, model.Reminder4h, p.service.Needing4hReminders)
}

// Process1h sends SMS reminders for appointments roughly one hour out.
func (p *Processor) Process1h(ctx context.Context) model.ReminderBatchResult {
	return p.processSMSBatch(ctx, model.Reminder1h, p.service.Needing1hReminders)
}

// ProcessEmail sends email reminders for tomorrow's appointments that carry
// an email address.
func (p *Processor) ProcessEmail(ctx context.Context) model.ReminderBatchResult {
	var result model.ReminderBatchResult
	if p.email == nil {
		logrus.Debug("Email reminders disabled, skipping")
		return result
	}

	logrus.Info("Checking for email reminders...")
	due, err := p.service.NeedingEmailReminders()
	if err != nil {
		logrus.Errorf("Failed to load appointments needing email reminders: %v", err)
		return result
	}
	if len(due) == 0 {
		logrus.Info("No email reminders needed")
		return result
	}
	logrus.Infof("Found %d appointments needing email reminders", len(due))

	for _, apt := range due {
		if ctx.Err() != nil {
			break
		}
		if p.dispatch(ctx, p.email, apt, model.ReminderEmail, model.ChannelEmail, EmailMessage(apt)) {
			result.Sent++
			if p.metrics != nil {
				p.metrics.EmailRemindersSent.Inc()
			}
		} else {
			result.Failed++
		}
		p.pace()
	}

	logrus.Infof("Email reminders: %d sent, %d failed", result.Sent, result.Failed)
	return result
}

// ProcessAll runs every reminder batch once.
func (p *Processor) ProcessAll(ctx context.Context) map[model.ReminderKind]model.ReminderBatchResult {
	logrus.Info("Starting reminder processing...")

	results := map[model.ReminderKind]model.ReminderBatchResult{
		model.Reminder24h:   p.Process24h(ctx),
		model.Reminder4h:    p.Process4h(ctx),
		model.Reminder1h:    p.Process1h(ctx),
		model.ReminderEmail: p.ProcessEmail(ctx),
	}

	var sent, failed int
	for _, r := range results {
		sent += r.Sent
		failed += r.Failed
	}
	logrus.Infof("Reminder processing complete: %d sent, %d failed", sent, failed)
	return results
}

func (p *Processor) processSMSBatch(ctx context.Context, kind model.ReminderKind, load func() ([]model.Appointment, error)) model.ReminderBatchResult {
	var result model.ReminderBatchResult

	logrus.Infof("Checking for %s reminders...", kind)
	due, err := load()
	if err != nil {
		logrus.Errorf("Failed to load appointments needing %s reminders: %v", kind, err)
		return result
	}
	if len(due) == 0 {
		logrus.Infof("No %s reminders needed", kind)
		return result
	}
	logrus.Infof("Found %d appointments needing %s reminders", len(due), kind)

	for _, apt := range due {
		if ctx.Err() != nil {
			break
		}
		msg := notify.Message{To: apt.Phone, Body: SMSBody(apt, kind)}
		if p.dispatch(ctx, p.sms, apt, kind, model.ChannelSMS, msg) {
			result.Sent++
			if p.metrics != nil {
				p.metrics.RemindersSent.Inc()
			}
		} else {
			result.Failed++
		}
		p.pace()
	}

	logrus.Infof("%s reminders: %d sent, %d failed", kind, result.Sent, result.Failed)
	return result
}

// dispatch sends one reminder and, only on success, marks it sent. The
// mark-sent write stays causally tied to a known dispatch outcome.
func (p *Processor) dispatch(ctx context.Context, notifier notify.Notifier, apt model.Appointment, kind model.ReminderKind, channel string, msg notify.Message) bool {
	entry := model.DeliveryLog{
		AppointmentID: apt.ID,
		Kind:          string(kind),
		Channel:       channel,
		Destination:   msg.To,
	}

	receipt, err := notifier.Send(ctx, msg)
	if err != nil {
		logrus.Errorf("Failed to send %s reminder to %s: %v", kind, apt.PatientName, err)
		if p.metrics != nil {
			p.metrics.ReminderFailures.Inc()
		}
		entry.Status = model.DeliveryStatusFailed
		entry.ErrorMsg = err.Error()
		p.record(entry)
		return false
	}

	logrus.Infof("%s reminder sent to %s: %s", kind, apt.PatientName, receipt.ProviderMessageID)
	entry.Status = model.DeliveryStatusSent
	entry.ProviderMessageID = receipt.ProviderMessageID
	p.record(entry)

	if found, err := p.service.MarkReminderSent(apt.ID, kind); err != nil {
		logrus.Errorf("Failed to mark %s reminder sent for appointment %d: %v", kind, apt.ID, err)
	} else if !found {
		logrus.Warnf("Appointment %d vanished before %s reminder could be marked sent", apt.ID, kind)
	}
	return true
}

func (p *Processor) record(entry model.DeliveryLog) {
	if p.recorder == nil {
		return
	}
	if err := p.recorder.Record(entry); err != nil {
		logrus.Errorf("Failed to record delivery attempt: %v", err)
	}
}

func (p *Processor) pace() {
	if p.dispatchDelay > 0 {
		time.Sleep(p.dispatchDelay)
	}
}
