package usecase

import "context"

// Notifier delivers a short operational message to the site administrator.
type Notifier interface {
	Send(ctx context.Context, subject, message string) error
}
