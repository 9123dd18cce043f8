package mail

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cityinfo-api/internal/domain"
)

// LocalSender "delivers" mail by writing it to the log.
type LocalSender struct {
	from   string
	to     string
	logger *zap.Logger
	now    func() time.Time
}

func NewLocalSender(from, to string, logger *zap.Logger) *LocalSender {
	return &LocalSender{
		from:   from,
		to:     to,
		logger: logger,
		now:    time.Now,
	}
}

// Send builds a mail from the configured addresses and delivers it right away.
func (s *LocalSender) Send(ctx context.Context, subject, message string) error {
	return s.Deliver(ctx, domain.MailMessage{
		ID:        uuid.New(),
		From:      s.from,
		To:        s.to,
		Subject:   subject,
		Body:      message,
		CreatedAt: s.now().UTC(),
	})
}

func (s *LocalSender) Deliver(ctx context.Context, msg domain.MailMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.logger.Info("Mail sent",
		zap.String("mail_id", msg.ID.String()),
		zap.String("from", msg.From),
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("body", msg.Body),
		zap.Time("created_at", msg.CreatedAt))
	return nil
}
