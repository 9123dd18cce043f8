package redis_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cityinfo-api/internal/domain"
	redisRepo "github.com/cityinfo-api/internal/repository/redis"
)

const testStream = "test:stream:mail:outgoing"

// getTestRedisClient returns a client on DB 1 or skips the test when Redis is not running.
func getTestRedisClient(t *testing.T) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   1,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available for integration tests: %v", err)
	}

	client.Del(ctx, testStream)
	t.Cleanup(func() {
		client.Del(context.Background(), testStream)
		_ = client.Close()
	})

	return client
}

func TestStreamRepository_CreateConsumerGroupIsIdempotent(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.CreateConsumerGroup(ctx, testStream, "test-group"))
	require.NoError(t, repo.CreateConsumerGroup(ctx, testStream, "test-group"))

	groups, err := client.XInfoGroups(ctx, testStream).Result()
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "test-group", groups[0].Name)
}

func TestStreamRepository_PublishConsumeAck(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.CreateConsumerGroup(ctx, testStream, "test-group"))

	mail := domain.MailMessage{
		ID:      uuid.New(),
		From:    "noreply@mycompany.com",
		To:      "admin@mycompany.com",
		Subject: "Point of interest deleted.",
		Body:    "Point of interest Cathedral with id 3 was deleted.",
	}
	require.NoError(t, repo.PublishToStream(ctx, testStream, mail))

	messages, err := repo.ConsumeBatch(ctx, testStream, "test-group", "consumer-1", 10)
	require.NoError(t, err)
	require.Len(t, messages, 1)

	var got domain.MailMessage
	require.NoError(t, json.Unmarshal([]byte(messages[0].Data), &got))
	assert.Equal(t, mail.ID, got.ID)
	assert.Equal(t, mail.Body, got.Body)

	require.NoError(t, repo.AckMessage(ctx, testStream, "test-group", messages[0].ID))

	pending, err := client.XPending(ctx, testStream, "test-group").Result()
	require.NoError(t, err)
	assert.Zero(t, pending.Count)
}

func TestStreamRepository_ConsumeBatchEmptyStream(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.CreateConsumerGroup(ctx, testStream, "test-group"))

	messages, err := repo.ConsumeBatch(ctx, testStream, "test-group", "consumer-1", 10)
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestStreamRepository_ClaimStaleReturnsUnackedMessages(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.CreateConsumerGroup(ctx, testStream, "test-group"))
	require.NoError(t, repo.PublishToStream(ctx, testStream, domain.MailMessage{
		ID:      uuid.New(),
		Subject: "Point of interest deleted.",
		Body:    "Point of interest Cathedral with id 3 was deleted.",
	}))

	// consumer-1 reads the message and never acknowledges it
	first, err := repo.ConsumeBatch(ctx, testStream, "test-group", "consumer-1", 10)
	require.NoError(t, err)
	require.Len(t, first, 1)

	fresh, err := repo.ClaimStale(ctx, testStream, "test-group", "consumer-2", time.Hour, 10)
	require.NoError(t, err)
	assert.Empty(t, fresh)

	claimed, err := repo.ClaimStale(ctx, testStream, "test-group", "consumer-2", 0, 10)
	require.NoError(t, err)
	require.Len(t, claimed, 1)
	assert.Equal(t, first[0].ID, claimed[0].ID)
	assert.Equal(t, first[0].Data, claimed[0].Data)

	require.NoError(t, repo.AckMessage(ctx, testStream, "test-group", claimed[0].ID))

	pending, err := client.XPending(ctx, testStream, "test-group").Result()
	require.NoError(t, err)
	assert.Zero(t, pending.Count)
}
