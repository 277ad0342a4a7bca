package reminder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"appointment-reminder-go/internal/model"
	"appointment-reminder-go/internal/store"
)

func TestNoticesRecordDeliveries(t *testing.T) {
	sms := &fakeNotifier{}
	recorder := store.NewMemoryDeliveryRecorder(10)
	n := NewNotices(sms, recorder)

	apt := model.Appointment{
		ID:              7,
		PatientName:     "John Smith",
		Phone:           "+15551234567",
		AppointmentDate: "2026-03-10",
		AppointmentTime: "2:30 PM",
		AppointmentType: "General Checkup",
		ProviderName:    "Dr. Smith",
		PracticeName:    "Downtown Clinic",
	}

	require.NoError(t, n.SendUpdateNotice(context.Background(), apt))
	require.NoError(t, n.SendRescheduleNotice(context.Background(), apt, "2026-03-09", "9:00 AM"))
	require.NoError(t, n.SendCancellationNotice(context.Background(), apt))

	require.Len(t, sms.sent, 3)
	assert.Contains(t, sms.sent[0].Body, "APPOINTMENT UPDATE")
	assert.Contains(t, sms.sent[1].Body, "RESCHEDULED")
	assert.Contains(t, sms.sent[1].Body, "9:00 AM")
	assert.Contains(t, sms.sent[2].Body, "CANCELLED")

	logs, err := recorder.Recent(10)
	require.NoError(t, err)
	require.Len(t, logs, 3)
	// Recent returns newest first.
	assert.Equal(t, "cancellation_notice", logs[0].Kind)
	assert.Equal(t, "reschedule_notice", logs[1].Kind)
	assert.Equal(t, "update_notice", logs[2].Kind)
}
