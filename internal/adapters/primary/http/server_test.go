package http

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptdeck/promptdeck/internal/domain/entities"
)

func TestNewServerPanicsOnNilConfig(t *testing.T) {
	assert.Panics(t, func() {
		NewServer(nil, nil, nil, nil, nil)
	})
}

func TestNewServerWithLogging(t *testing.T) {
	s := NewServerWithLogging(nil, nil, nil, nil, &entities.ServerConfig{}, &entities.LoggingConfig{
		Level:   "debug",
		Verbose: true,
	})

	require.NotNil(t, s.logger)
	assert.Equal(t, entities.LogLevelDebug, s.logger.level)
}

func TestServerLifecycle(t *testing.T) {
	s, _ := newTestServer()

	assert.False(t, s.IsRunning())

	ctx := context.Background()
	require.NoError(t, s.Start(ctx, 0, "127.0.0.1"))
	assert.True(t, s.IsRunning())

	// Second start must fail while running
	assert.Error(t, s.Start(ctx, 0, "127.0.0.1"))

	require.NoError(t, s.Stop(ctx))
	assert.False(t, s.IsRunning())
}

func TestServerStopWhenNotRunning(t *testing.T) {
	s, _ := newTestServer()

	assert.Error(t, s.Stop(context.Background()))
}

func TestHTTPLoggerLevels(t *testing.T) {
	logger := NewHTTPLoggerWithLevel("test", false, entities.LogLevelWarn)

	assert.False(t, logger.shouldLog(entities.LogLevelDebug))
	assert.False(t, logger.shouldLog(entities.LogLevelInfo))
	assert.True(t, logger.shouldLog(entities.LogLevelWarn))
	assert.True(t, logger.shouldLog(entities.LogLevelError))
}

func TestServerStartStopQuickSuccession(t *testing.T) {
	s, _ := newTestServer()
	ctx := context.Background()

	require.NoError(t, s.Start(ctx, 0, "127.0.0.1"))
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, s.Stop(ctx))

	require.NoError(t, s.Start(ctx, 0, "127.0.0.1"))
	require.NoError(t, s.Stop(ctx))
}
