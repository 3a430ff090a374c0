package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromContextWithoutLogger(t *testing.T) {
	log := FromContext(context.Background())
	require.NotNil(t, log)

	// No-op logger must swallow writes without panicking
	log.Info("goes nowhere")
}

func TestWithContextRoundTrip(t *testing.T) {
	log := zap.NewNop()
	ctx := WithContext(context.Background(), log)

	assert.Same(t, log, FromContext(ctx))
}

func TestWithRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	ctx, enriched := WithRequestID(context.Background(), zap.New(core), "req-42")

	assert.Equal(t, "req-42", GetRequestID(ctx))
	assert.Same(t, enriched, FromContext(ctx))

	enriched.Info("tagged")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "req-42", logs.All()[0].ContextMap()["request_id"])
}

func TestWithPanelID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	ctx, enriched := WithPanelID(context.Background(), zap.New(core), "panel-7")

	assert.Equal(t, "panel-7", GetPanelID(ctx))

	enriched.Info("tagged")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "panel-7", logs.All()[0].ContextMap()["panel_id"])
}

func TestGetRequestIDMissing(t *testing.T) {
	assert.Empty(t, GetRequestID(context.Background()))
	assert.Empty(t, GetPanelID(context.Background()))
}
