package redis_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cityinfo-api/internal/domain"
	"github.com/cityinfo-api/internal/mocks"
	redisRepo "github.com/cityinfo-api/internal/repository/redis"
)

func TestStreamNotifier_Send(t *testing.T) {
	streams := &mocks.StreamRepository{}
	notifier := redisRepo.NewStreamNotifier(streams, "noreply@mycompany.com", "admin@mycompany.com")
	ctx := context.Background()

	streams.On("PublishToStream", ctx, domain.StreamMailOutgoing, mock.MatchedBy(func(m domain.MailMessage) bool {
		return m.From == "noreply@mycompany.com" &&
			m.To == "admin@mycompany.com" &&
			m.Subject == "Point of interest deleted." &&
			m.Body == "body" &&
			!m.CreatedAt.IsZero()
	})).Return(nil).Once()

	require.NoError(t, notifier.Send(ctx, "Point of interest deleted.", "body"))
	streams.AssertExpectations(t)
}

func TestStreamNotifier_SendPropagatesError(t *testing.T) {
	streams := &mocks.StreamRepository{}
	notifier := redisRepo.NewStreamNotifier(streams, "a@b.c", "d@e.f")

	streams.On("PublishToStream", mock.Anything, domain.StreamMailOutgoing, mock.Anything).
		Return(assert.AnError).Once()

	assert.ErrorIs(t, notifier.Send(context.Background(), "s", "m"), assert.AnError)
}
