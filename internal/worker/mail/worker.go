package mail

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/cityinfo-api/internal/domain"
	"github.com/cityinfo-api/internal/domain/repository"
	"github.com/cityinfo-api/internal/worker"
)

const (
	maxBatchSize = 20

	// staleAfter - сколько сообщение может висеть неподтверждённым до повторной доставки
	staleAfter = 30 * time.Second
	// claimInterval - как часто проверять зависшие сообщения
	claimInterval = 10 * time.Second
)

// Deliverer sends one mail message.
type Deliverer interface {
	Deliver(ctx context.Context, msg domain.MailMessage) error
}

// Worker reads stream:mail:outgoing and delivers every message.
type Worker struct {
	*worker.BaseWorker
	streams repository.StreamRepository
	sender  Deliverer

	// lastClaim is only touched from the Run loop.
	lastClaim time.Time
}

func NewWorker(
	streams repository.StreamRepository,
	sender Deliverer,
	consumerGroup string,
	logger *zap.Logger,
) *Worker {
	return &Worker{
		BaseWorker: worker.NewBaseWorker("mail-delivery", consumerGroup, logger),
		streams:    streams,
		sender:     sender,
		lastClaim:  time.Now(),
	}
}

func (w *Worker) Start(ctx context.Context) error {
	w.Logger().Info("Starting mail worker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.ConsumerName()),
		zap.Int("max_batch_size", maxBatchSize))

	if err := w.streams.CreateConsumerGroup(ctx, domain.StreamMailOutgoing, w.ConsumerGroup()); err != nil {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	return w.Run(ctx, w.processBatch)
}

// processBatch delivers up to maxBatchSize messages. Undecodable messages are
// acknowledged and dropped. Failed deliveries stay pending and are claimed
// again by nextBatch once they are older than staleAfter.
func (w *Worker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.nextBatch(ctx)
	if err != nil {
		return 0, err
	}
	if len(messages) == 0 {
		return 0, nil
	}

	logger.Debug("Processing batch", zap.Int("message_count", len(messages)))

	for _, msg := range messages {
		mail, err := parseMessage(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping", zap.String("message_id", msg.ID), zap.Error(err))
			w.ack(ctx, msg.ID)
			continue
		}

		if err := w.sender.Deliver(ctx, mail); err != nil {
			logger.Error("Failed to deliver mail",
				zap.String("message_id", msg.ID),
				zap.String("mail_id", mail.ID.String()),
				zap.Error(err))
			continue
		}

		w.ack(ctx, msg.ID)
	}

	return len(messages), nil
}

// nextBatch prefers stale pending messages, including those left by a consumer
// that died, over new ones.
func (w *Worker) nextBatch(ctx context.Context) ([]domain.StreamMessage, error) {
	if time.Since(w.lastClaim) >= claimInterval {
		w.lastClaim = time.Now()
		claimed, err := w.streams.ClaimStale(ctx, domain.StreamMailOutgoing, w.ConsumerGroup(), w.ConsumerName(), staleAfter, maxBatchSize)
		if err != nil {
			return nil, fmt.Errorf("failed to claim stale messages: %w", err)
		}
		if len(claimed) > 0 {
			return claimed, nil
		}
	}

	messages, err := w.streams.ConsumeBatch(ctx, domain.StreamMailOutgoing, w.ConsumerGroup(), w.ConsumerName(), maxBatchSize)
	if err != nil {
		return nil, fmt.Errorf("failed to consume batch: %w", err)
	}
	return messages, nil
}

func (w *Worker) ack(ctx context.Context, messageID string) {
	if err := w.streams.AckMessage(ctx, domain.StreamMailOutgoing, w.ConsumerGroup(), messageID); err != nil {
		w.Logger().Error("Failed to ack message", zap.String("message_id", messageID), zap.Error(err))
	}
}

func parseMessage(msg domain.StreamMessage) (domain.MailMessage, error) {
	var mail domain.MailMessage
	if msg.Data == "" {
		return mail, fmt.Errorf("missing 'data' field")
	}
	if err := json.Unmarshal([]byte(msg.Data), &mail); err != nil {
		return mail, fmt.Errorf("failed to unmarshal mail: %w", err)
	}
	if mail.Subject == "" && mail.Body == "" {
		return mail, fmt.Errorf("empty mail")
	}
	return mail, nil
}
