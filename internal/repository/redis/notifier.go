package redis

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cityinfo-api/internal/domain"
	"github.com/cityinfo-api/internal/domain/repository"
)

// StreamNotifier hands mail to the worker process through stream:mail:outgoing.
type StreamNotifier struct {
	streams repository.StreamRepository
	from    string
	to      string
	now     func() time.Time
}

func NewStreamNotifier(streams repository.StreamRepository, from, to string) *StreamNotifier {
	return &StreamNotifier{
		streams: streams,
		from:    from,
		to:      to,
		now:     time.Now,
	}
}

func (n *StreamNotifier) Send(ctx context.Context, subject, message string) error {
	return n.streams.PublishToStream(ctx, domain.StreamMailOutgoing, domain.MailMessage{
		ID:        uuid.New(),
		From:      n.from,
		To:        n.to,
		Subject:   subject,
		Body:      message,
		CreatedAt: n.now().UTC(),
	})
}
