package mailer

import "context"

// Sender defines the minimal interface that email providers must implement.
type Sender interface {
	// Send delivers a fully prepared Email and returns the provider-assigned message ID.
	// Non-2xx provider answers are reported as *ProviderError.
	Send(ctx context.Context, email *Email) (string, error)
}
