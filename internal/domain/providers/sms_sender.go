package providers

import "context"

// SMSSender sends one text message. Failures are observable per call.
type SMSSender interface {
	Send(ctx context.Context, phoneNumber, message string) error
}
