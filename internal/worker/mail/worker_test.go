package mail

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cityinfo-api/internal/domain"
	"github.com/cityinfo-api/internal/mocks"
)

const testGroup = "mail-workers"

type recordingDeliverer struct {
	mu        sync.Mutex
	delivered []domain.MailMessage
	err       error
	// failures makes the next n calls fail before err is consulted
	failures int
	calls    int
}

func (d *recordingDeliverer) Deliver(_ context.Context, msg domain.MailMessage) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls++
	if d.failures > 0 {
		d.failures--
		return errors.New("mail relay unavailable")
	}
	if d.err != nil {
		return d.err
	}
	d.delivered = append(d.delivered, msg)
	return nil
}

func (d *recordingDeliverer) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.delivered)
}

func encodeMail(t *testing.T, subject string) string {
	t.Helper()
	payload, err := json.Marshal(domain.MailMessage{
		ID:        uuid.New(),
		From:      "noreply@mycompany.com",
		To:        "admin@mycompany.com",
		Subject:   subject,
		Body:      "Point of interest Cathedral with id 3 was deleted.",
		CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	return string(payload)
}

func TestProcessBatch_DeliversAndAcks(t *testing.T) {
	streams := &mocks.StreamRepository{}
	sender := &recordingDeliverer{}
	w := NewWorker(streams, sender, testGroup, zap.NewNop())

	streams.On("ConsumeBatch", mock.Anything, domain.StreamMailOutgoing, testGroup, w.ConsumerName(), maxBatchSize).
		Return([]domain.StreamMessage{
			{ID: "1-0", Data: encodeMail(t, "Point of interest deleted.")},
			{ID: "2-0", Data: encodeMail(t, "Another")},
		}, nil).Once()
	streams.On("AckMessage", mock.Anything, domain.StreamMailOutgoing, testGroup, "1-0").Return(nil).Once()
	streams.On("AckMessage", mock.Anything, domain.StreamMailOutgoing, testGroup, "2-0").Return(nil).Once()

	processed, err := w.processBatch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, processed)
	require.Len(t, sender.delivered, 2)
	assert.Equal(t, "Point of interest deleted.", sender.delivered[0].Subject)
	streams.AssertExpectations(t)
}

func TestProcessBatch_AcksBrokenMessages(t *testing.T) {
	streams := &mocks.StreamRepository{}
	sender := &recordingDeliverer{}
	w := NewWorker(streams, sender, testGroup, zap.NewNop())

	streams.On("ConsumeBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.StreamMessage{
			{ID: "1-0", Data: "{not json"},
			{ID: "2-0", Data: ""},
		}, nil).Once()
	streams.On("AckMessage", mock.Anything, domain.StreamMailOutgoing, testGroup, "1-0").Return(nil).Once()
	streams.On("AckMessage", mock.Anything, domain.StreamMailOutgoing, testGroup, "2-0").Return(nil).Once()

	processed, err := w.processBatch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, processed)
	assert.Empty(t, sender.delivered)
	streams.AssertExpectations(t)
}

func TestProcessBatch_LeavesFailedDeliveryPending(t *testing.T) {
	streams := &mocks.StreamRepository{}
	sender := &recordingDeliverer{err: errors.New("smtp down")}
	w := NewWorker(streams, sender, testGroup, zap.NewNop())

	streams.On("ConsumeBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.StreamMessage{{ID: "1-0", Data: encodeMail(t, "Subject")}}, nil).Once()

	processed, err := w.processBatch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, processed)
	streams.AssertNotCalled(t, "AckMessage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessBatch_RetriesFailedDeliveryOnNextBatch(t *testing.T) {
	streams := &mocks.StreamRepository{}
	sender := &recordingDeliverer{failures: 1}
	w := NewWorker(streams, sender, testGroup, zap.NewNop())

	msg := domain.StreamMessage{ID: "1-0", Data: encodeMail(t, "Point of interest deleted.")}
	streams.On("ConsumeBatch", mock.Anything, domain.StreamMailOutgoing, testGroup, w.ConsumerName(), maxBatchSize).
		Return([]domain.StreamMessage{msg}, nil).Once()

	processed, err := w.processBatch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, processed)
	assert.Zero(t, sender.count())
	streams.AssertNotCalled(t, "AckMessage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)

	// the entry is still pending; once it is stale the next batch claims it back
	w.lastClaim = time.Time{}
	streams.On("ClaimStale", mock.Anything, domain.StreamMailOutgoing, testGroup, w.ConsumerName(), staleAfter, maxBatchSize).
		Return([]domain.StreamMessage{msg}, nil).Once()
	streams.On("AckMessage", mock.Anything, domain.StreamMailOutgoing, testGroup, "1-0").Return(nil).Once()

	processed, err = w.processBatch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, processed)
	assert.Equal(t, 2, sender.calls)
	require.Len(t, sender.delivered, 1)
	assert.Equal(t, "Point of interest deleted.", sender.delivered[0].Subject)
	streams.AssertExpectations(t)
	streams.AssertNumberOfCalls(t, "ConsumeBatch", 1)
}

func TestProcessBatch_ReadsNewMessagesWhenNothingIsStale(t *testing.T) {
	streams := &mocks.StreamRepository{}
	sender := &recordingDeliverer{}
	w := NewWorker(streams, sender, testGroup, zap.NewNop())
	w.lastClaim = time.Time{}

	streams.On("ClaimStale", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil).Once()
	streams.On("ConsumeBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.StreamMessage{{ID: "5-0", Data: encodeMail(t, "Subject")}}, nil).Once()
	streams.On("AckMessage", mock.Anything, domain.StreamMailOutgoing, testGroup, "5-0").Return(nil).Once()

	processed, err := w.processBatch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, processed)
	assert.Equal(t, 1, sender.count())
	streams.AssertExpectations(t)

	// claims are throttled, so the following batch goes straight to new messages
	streams.On("ConsumeBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil).Once()
	processed, err = w.processBatch(context.Background())
	require.NoError(t, err)
	assert.Zero(t, processed)
	streams.AssertNumberOfCalls(t, "ClaimStale", 1)
}

func TestProcessBatch_ClaimError(t *testing.T) {
	streams := &mocks.StreamRepository{}
	w := NewWorker(streams, &recordingDeliverer{}, testGroup, zap.NewNop())
	w.lastClaim = time.Time{}

	streams.On("ClaimStale", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused")).Once()

	processed, err := w.processBatch(context.Background())
	assert.Error(t, err)
	assert.Zero(t, processed)
	streams.AssertNotCalled(t, "ConsumeBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessBatch_ConsumeError(t *testing.T) {
	streams := &mocks.StreamRepository{}
	w := NewWorker(streams, &recordingDeliverer{}, testGroup, zap.NewNop())

	streams.On("ConsumeBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused")).Once()

	processed, err := w.processBatch(context.Background())
	assert.Error(t, err)
	assert.Zero(t, processed)
}

func TestWorker_StartRunsUntilStopped(t *testing.T) {
	streams := &mocks.StreamRepository{}
	sender := &recordingDeliverer{}
	w := NewWorker(streams, sender, testGroup, zap.NewNop())

	streams.On("CreateConsumerGroup", mock.Anything, domain.StreamMailOutgoing, testGroup).Return(nil).Once()
	streams.On("ConsumeBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.StreamMessage{{ID: "1-0", Data: encodeMail(t, "Subject")}}, nil).Once()
	streams.On("ConsumeBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil)
	streams.On("AckMessage", mock.Anything, domain.StreamMailOutgoing, testGroup, "1-0").Return(nil).Once()

	done := make(chan error, 1)
	go func() { done <- w.Start(context.Background()) }()

	require.Eventually(t, func() bool { return sender.count() == 1 }, 2*time.Second, 10*time.Millisecond)
	require.NoError(t, w.Stop())

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}
	assert.True(t, w.IsStopped())
}

func TestWorker_StartFailsWithoutConsumerGroup(t *testing.T) {
	streams := &mocks.StreamRepository{}
	w := NewWorker(streams, &recordingDeliverer{}, testGroup, zap.NewNop())

	streams.On("CreateConsumerGroup", mock.Anything, domain.StreamMailOutgoing, testGroup).
		Return(errors.New("NOAUTH")).Once()

	assert.Error(t, w.Start(context.Background()))
}
