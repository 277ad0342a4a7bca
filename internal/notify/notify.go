// Package notify holds the outbound message transports. The engine composes
// full message text and hands it to a Notifier; transport, timeouts, and
// provider errors stay behind this boundary.
package notify

import (
	"context"
)

// Message is a fully composed outbound message. Subject and HTMLBody are only
// meaningful for email transports.
type Message struct {
	To       string
	Subject  string
	Body     string
	HTMLBody string
}

// Receipt reports a successful delivery hand-off.
type Receipt struct {
	ProviderMessageID string
}

// Notifier delivers a composed message to its destination.
type Notifier interface {
	Send(ctx context.Context, msg Message) (*Receipt, error)
}
