package notifier

import (
	"context"
	"time"
)

// SendResult describes a successfully delivered message.
type SendResult struct {
	MessageID string
	SentAt    time.Time
}

// EmailSender delivers transactional mail. Implementations must be safe for
// concurrent use.
type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, body string) (SendResult, error)
}
