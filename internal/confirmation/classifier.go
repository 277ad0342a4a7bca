// Package confirmation turns free-text patient replies into appointment-state
// transitions and drives the auto-reply flow.
package confirmation

import (
	"strings"

	"appointment-reminder-go/internal/model"
)

// Classification is the parsed intent of an inbound message.
type Classification struct {
	Action     model.ConfirmationStatus
	Confidence model.Confidence
}

var (
	confirmTokens    = tokenSet("YES", "Y", "CONFIRM", "CONFIRMED", "OK", "OKAY", "👍")
	cancelTokens     = tokenSet("NO", "N", "CANCEL", "CANCELLED", "NOPE", "❌")
	rescheduleTokens = tokenSet("RESCHEDULE", "R", "CHANGE", "MOVE", "POSTPONE")
	optOutTokens     = tokenSet("STOP", "UNSUBSCRIBE", "QUIT", "END", "OPTOUT")
)

// Classify maps a free-text reply onto a closed set of intents with a
// confidence tier. Exact-token matches win over substring matches, and the
// pattern families are tried in a fixed order: confirm, cancel, reschedule,
// opt-out. Substring matching is deliberately loose; "I can come, NO problem"
// classifies as cancelled/medium because "NO" appears in the message.
func Classify(message string) Classification {
	msg := strings.ToUpper(strings.TrimSpace(message))

	if confirmTokens[msg] {
		return Classification{Action: model.StatusConfirmed, Confidence: model.ConfidenceHigh}
	}
	if strings.Contains(msg, "YES") || strings.Contains(msg, "CONFIRM") {
		return Classification{Action: model.StatusConfirmed, Confidence: model.ConfidenceMedium}
	}

	if cancelTokens[msg] {
		return Classification{Action: model.StatusCancelled, Confidence: model.ConfidenceHigh}
	}
	if strings.Contains(msg, "NO") || strings.Contains(msg, "CANCEL") {
		return Classification{Action: model.StatusCancelled, Confidence: model.ConfidenceMedium}
	}

	if rescheduleTokens[msg] {
		return Classification{Action: model.StatusRescheduleRequested, Confidence: model.ConfidenceHigh}
	}
	if strings.Contains(msg, "RESCHEDULE") || strings.Contains(msg, "CHANGE") || strings.Contains(msg, "MOVE") {
		return Classification{Action: model.StatusRescheduleRequested, Confidence: model.ConfidenceMedium}
	}

	if optOutTokens[msg] {
		return Classification{Action: model.StatusUnsubscribed, Confidence: model.ConfidenceHigh}
	}

	return Classification{Action: model.StatusUnclear, Confidence: model.ConfidenceLow}
}

func tokenSet(tokens ...string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	return set
}
