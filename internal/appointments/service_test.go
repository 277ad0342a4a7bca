package appointments

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"appointment-reminder-go/internal/model"
)

// memStore keeps appointments in memory for tests.
type memStore struct {
	appointments []model.Appointment
}

func (m *memStore) ReadAll() ([]model.Appointment, error) {
	out := make([]model.Appointment, len(m.appointments))
	copy(out, m.appointments)
	return out, nil
}

func (m *memStore) WriteAll(appointments []model.Appointment) error {
	m.appointments = make([]model.Appointment, len(appointments))
	copy(m.appointments, appointments)
	return nil
}

func newTestService(at time.Time) (*Service, *memStore) {
	st := &memStore{}
	s := NewService(st)
	s.now = func() time.Time { return at }
	return s, st
}

func TestCreateAssignsSequentialIDs(t *testing.T) {
	s, _ := newTestService(time.Date(2026, 3, 9, 10, 0, 0, 0, time.Local))

	id, err := s.Create(model.AppointmentRequest{
		PatientName:     "John Smith",
		Phone:           "+15551234567",
		AppointmentDate: "2026-03-10",
		AppointmentTime: "230pm",
		ProviderName:    "Dr. Smith",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	id, err = s.Create(model.AppointmentRequest{
		PatientName:     "Jane Doe",
		Phone:           "+15559876543",
		AppointmentDate: "2026-03-10",
		AppointmentTime: "9:00 AM",
		ProviderName:    "Dr. Smith",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, id)

	first, err := s.GetByID(1)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, "2:30 PM", first.AppointmentTime)
	assert.Equal(t, model.StatusPending, first.ConfirmationStatus)
	assert.Equal(t, "General Checkup", first.AppointmentType)
}

func TestCreateReusesMaxPlusOneAfterDelete(t *testing.T) {
	s, _ := newTestService(time.Date(2026, 3, 9, 10, 0, 0, 0, time.Local))

	for i := 0; i < 3; i++ {
		_, err := s.Create(model.AppointmentRequest{
			PatientName:     "Patient",
			Phone:           "+15551230000",
			AppointmentDate: "2026-03-10",
			AppointmentTime: "10:00 AM",
		})
		require.NoError(t, err)
	}

	found, err := s.Delete(3)
	require.NoError(t, err)
	assert.True(t, found)

	id, err := s.Create(model.AppointmentRequest{
		PatientName:     "Patient",
		Phone:           "+15551230000",
		AppointmentDate: "2026-03-10",
		AppointmentTime: "11:00 AM",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, id)
}

func TestUpdateMergesFieldsAndPreservesFlags(t *testing.T) {
	s, st := newTestService(time.Date(2026, 3, 9, 10, 0, 0, 0, time.Local))

	id, err := s.Create(model.AppointmentRequest{
		PatientName:     "John Smith",
		Phone:           "+15551234567",
		AppointmentDate: "2026-03-10",
		AppointmentTime: "2:30 PM",
		ProviderName:    "Dr. Smith",
	})
	require.NoError(t, err)

	st.appointments[0].Reminder24hSent = true
	st.appointments[0].ConfirmationStatus = model.StatusConfirmed

	found, err := s.Update(id, model.AppointmentRequest{AppointmentTime: "330pm"})
	require.NoError(t, err)
	assert.True(t, found)

	apt, err := s.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, apt)
	assert.Equal(t, "3:30 PM", apt.AppointmentTime)
	assert.Equal(t, "John Smith", apt.PatientName)
	assert.True(t, apt.Reminder24hSent)
	assert.Equal(t, model.StatusConfirmed, apt.ConfirmationStatus)
}

func TestUpdateMissingID(t *testing.T) {
	s, _ := newTestService(time.Now())

	found, err := s.Update(42, model.AppointmentRequest{PatientName: "Nobody"})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDeleteMissingID(t *testing.T) {
	s, _ := newTestService(time.Now())

	found, err := s.Delete(9)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFindConflicts(t *testing.T) {
	s, _ := newTestService(time.Date(2026, 3, 9, 10, 0, 0, 0, time.Local))

	id1, err := s.Create(model.AppointmentRequest{
		PatientName:     "John Smith",
		Phone:           "+15551234567",
		AppointmentDate: "2026-03-10",
		AppointmentTime: "2:30 PM",
		ProviderName:    "Dr. Smith",
	})
	require.NoError(t, err)

	conflicts, err := s.FindConflicts("Dr. Smith", "2026-03-10", "2:30 PM", 0)
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, id1, conflicts[0].ID)

	// Same time slot, different provider: no conflict.
	conflicts, err = s.FindConflicts("Dr. Jones", "2026-03-10", "2:30 PM", 0)
	require.NoError(t, err)
	assert.Empty(t, conflicts)

	// The record under edit is excluded from its own conflict check.
	conflicts, err = s.FindConflicts("Dr. Smith", "2026-03-10", "2:30 PM", id1)
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestOverriddenBookingsConflictMutually(t *testing.T) {
	s, _ := newTestService(time.Date(2026, 3, 9, 10, 0, 0, 0, time.Local))

	slot := model.AppointmentRequest{
		PatientName:     "John Smith",
		Phone:           "+15551234567",
		AppointmentDate: "2026-03-10",
		AppointmentTime: "2:30 PM",
		ProviderName:    "Dr. Smith",
	}
	_, err := s.Create(slot)
	require.NoError(t, err)

	// The caller overrode the conflict at the boundary; the service books the
	// colliding slot and both records then report each other as conflicts.
	slot.PatientName = "Jane Doe"
	slot.Phone = "+15559876543"
	_, err = s.Create(slot)
	require.NoError(t, err)

	conflicts, err := s.FindConflicts("Dr. Smith", "2026-03-10", "2:30 PM", 0)
	require.NoError(t, err)
	assert.Len(t, conflicts, 2)
}

func TestGetAllSortsChronologically(t *testing.T) {
	s, _ := newTestService(time.Date(2026, 3, 9, 10, 0, 0, 0, time.Local))

	_, err := s.Create(model.AppointmentRequest{
		PatientName: "Afternoon", Phone: "+15550000001",
		AppointmentDate: "2026-03-10", AppointmentTime: "2:30 PM",
	})
	require.NoError(t, err)
	_, err = s.Create(model.AppointmentRequest{
		PatientName: "Morning", Phone: "+15550000002",
		AppointmentDate: "2026-03-10", AppointmentTime: "9:00 AM",
	})
	require.NoError(t, err)
	_, err = s.Create(model.AppointmentRequest{
		PatientName: "Earlier Day", Phone: "+15550000003",
		AppointmentDate: "2026-03-09", AppointmentTime: "5:00 PM",
	})
	require.NoError(t, err)

	all, err := s.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Earlier Day", all[0].PatientName)
	assert.Equal(t, "Morning", all[1].PatientName)
	assert.Equal(t, "Afternoon", all[2].PatientName)
}

func TestRecordConfirmationPicksSoonestUpcoming(t *testing.T) {
	now := time.Date(2026, 3, 9, 10, 0, 0, 0, time.Local)
	s, _ := newTestService(now)

	phone := "+15551234567"
	// Past appointment should never receive the confirmation.
	_, err := s.Create(model.AppointmentRequest{
		PatientName: "John Smith", Phone: phone,
		AppointmentDate: "2026-03-01", AppointmentTime: "9:00 AM",
	})
	require.NoError(t, err)
	_, err = s.Create(model.AppointmentRequest{
		PatientName: "John Smith", Phone: phone,
		AppointmentDate: "2026-03-20", AppointmentTime: "9:00 AM",
	})
	require.NoError(t, err)
	soonest, err := s.Create(model.AppointmentRequest{
		PatientName: "John Smith", Phone: phone,
		AppointmentDate: "2026-03-10", AppointmentTime: "2:30 PM",
	})
	require.NoError(t, err)

	apt, err := s.RecordConfirmation(phone, model.StatusConfirmed, "YES")
	require.NoError(t, err)
	require.NotNil(t, apt)
	assert.Equal(t, soonest, apt.ID)
	assert.Equal(t, model.StatusConfirmed, apt.ConfirmationStatus)
	assert.Equal(t, "YES", apt.ConfirmationMessage)
	require.NotNil(t, apt.ConfirmationReceivedAt)
	assert.Equal(t, now, *apt.ConfirmationReceivedAt)
}

func TestRecordConfirmationNoUpcoming(t *testing.T) {
	s, _ := newTestService(time.Date(2026, 3, 9, 10, 0, 0, 0, time.Local))

	_, err := s.Create(model.AppointmentRequest{
		PatientName: "John Smith", Phone: "+15551234567",
		AppointmentDate: "2026-03-01", AppointmentTime: "9:00 AM",
	})
	require.NoError(t, err)

	apt, err := s.RecordConfirmation("+15551234567", model.StatusCancelled, "NO")
	require.NoError(t, err)
	assert.Nil(t, apt)
}

func TestMarkReminderSentIdempotent(t *testing.T) {
	s, _ := newTestService(time.Date(2026, 3, 9, 10, 0, 0, 0, time.Local))

	id, err := s.Create(model.AppointmentRequest{
		PatientName: "John Smith", Phone: "+15551234567",
		AppointmentDate: "2026-03-10", AppointmentTime: "2:30 PM",
	})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		found, err := s.MarkReminderSent(id, model.Reminder24h)
		require.NoError(t, err)
		assert.True(t, found)
	}

	apt, err := s.GetByID(id)
	require.NoError(t, err)
	assert.True(t, apt.Reminder24hSent)
	assert.False(t, apt.Reminder4hSent)

	found, err := s.MarkReminderSent(99, model.Reminder24h)
	require.NoError(t, err)
	assert.False(t, found)
}
