package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"appointment-reminder-go/internal/model"
)

func TestFileStoreInitializesEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "appointments.json")

	fs, err := NewFileStore(path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))

	appointments, err := fs.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, appointments)
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "appointments.json")
	fs, err := NewFileStore(path)
	require.NoError(t, err)

	in := []model.Appointment{
		{ID: 1, PatientName: "John Smith", Phone: "+15551234567", AppointmentDate: "2026-03-10", AppointmentTime: "2:30 PM"},
		{ID: 2, PatientName: "Jane Doe", Phone: "+15559876543", AppointmentDate: "2026-03-11", AppointmentTime: "9:00 AM", Reminder24hSent: true},
	}
	require.NoError(t, fs.WriteAll(in))

	out, err := fs.ReadAll()
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "John Smith", out[0].PatientName)
	assert.True(t, out[1].Reminder24hSent)
}

func TestFileStoreWriteNilBecomesEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "appointments.json")
	fs, err := NewFileStore(path)
	require.NoError(t, err)

	require.NoError(t, fs.WriteAll(nil))
	out, err := fs.ReadAll()
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestFileStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "appointments.json")
	fs, err := NewFileStore(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err = fs.ReadAll()
	assert.Error(t, err)
}

func TestMemoryDeliveryRecorderRing(t *testing.T) {
	r := NewMemoryDeliveryRecorder(3)

	for i := 0; i < 5; i++ {
		require.NoError(t, r.Record(model.DeliveryLog{AppointmentID: i + 1, Kind: "24h"}))
	}

	logs, err := r.Recent(10)
	require.NoError(t, err)
	require.Len(t, logs, 3)
	// Newest first, oldest two evicted.
	assert.Equal(t, 5, logs[0].AppointmentID)
	assert.Equal(t, 3, logs[2].AppointmentID)

	logs, err = r.Recent(1)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, 5, logs[0].AppointmentID)
}
