package mail

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLocalSender_SendLogsMail(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	sender := NewLocalSender("noreply@mycompany.com", "admin@mycompany.com", zap.New(core))

	require.NoError(t, sender.Send(context.Background(), "Point of interest deleted.", "Point of interest Cathedral with id 3 was deleted."))

	entries := logs.FilterMessage("Mail sent").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "noreply@mycompany.com", fields["from"])
	assert.Equal(t, "admin@mycompany.com", fields["to"])
	assert.Equal(t, "Point of interest deleted.", fields["subject"])
	assert.Equal(t, "Point of interest Cathedral with id 3 was deleted.", fields["body"])
}

func TestLocalSender_CancelledContext(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	sender := NewLocalSender("a@b.c", "d@e.f", zap.New(core))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, sender.Send(ctx, "s", "m"), context.Canceled)
	assert.Zero(t, logs.Len())
}
