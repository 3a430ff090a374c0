package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func newObservedGormLogger(level gormlogger.LogLevel, opts ...GormLoggerOption) (*GormLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewGormLogger(zap.New(core), level, opts...), logs
}

func traceQuery(l *GormLogger, ctx context.Context, err error) {
	l.Trace(ctx, time.Now(), func() (string, int64) {
		return "SELECT * FROM panel_clients", 3
	}, err)
}

func TestGormLoggerTraceQuery(t *testing.T) {
	l, logs := newObservedGormLogger(gormlogger.Info)

	traceQuery(l, context.Background(), nil)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "SQL Query", entry.Message)
	assert.Equal(t, "SELECT * FROM panel_clients", entry.ContextMap()["sql"])
	assert.Equal(t, int64(3), entry.ContextMap()["rows"])
}

func TestGormLoggerTraceError(t *testing.T) {
	l, logs := newObservedGormLogger(gormlogger.Error)

	traceQuery(l, context.Background(), errors.New("connection reset"))

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "SQL Error", logs.All()[0].Message)
}

func TestGormLoggerIgnoresRecordNotFound(t *testing.T) {
	l, logs := newObservedGormLogger(gormlogger.Error)

	traceQuery(l, context.Background(), gormlogger.ErrRecordNotFound)

	assert.Equal(t, 0, logs.Len())
}

func TestGormLoggerLogsRecordNotFoundWhenConfigured(t *testing.T) {
	l, logs := newObservedGormLogger(gormlogger.Error, WithIgnoreRecordNotFoundError(false))

	traceQuery(l, context.Background(), gormlogger.ErrRecordNotFound)

	assert.Equal(t, 1, logs.Len())
}

func TestGormLoggerSlowQuery(t *testing.T) {
	l, logs := newObservedGormLogger(gormlogger.Warn, WithSlowThreshold(time.Nanosecond))

	l.Trace(context.Background(), time.Now().Add(-time.Second), func() (string, int64) {
		return "SELECT pg_sleep(10)", 0
	}, nil)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	assert.Contains(t, entry.Message, "SLOW SQL")
}

func TestGormLoggerSilent(t *testing.T) {
	l, logs := newObservedGormLogger(gormlogger.Silent)

	traceQuery(l, context.Background(), errors.New("ignored"))

	assert.Equal(t, 0, logs.Len())
}

func TestGormLoggerTraceContextFields(t *testing.T) {
	l, logs := newObservedGormLogger(gormlogger.Info)

	ctx := context.Background()
	ctx, _ = WithRequestID(ctx, zap.NewNop(), "req-789")
	ctx, _ = WithPanelID(ctx, zap.NewNop(), "panel-abc")

	traceQuery(l, ctx, nil)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "req-789", fields["request_id"])
	assert.Equal(t, "panel-abc", fields["panel_id"])
}

func TestGormLoggerLogMode(t *testing.T) {
	l, logs := newObservedGormLogger(gormlogger.Info)

	silenced := l.LogMode(gormlogger.Silent)
	traceQuery(silenced.(*GormLogger), context.Background(), nil)
	assert.Equal(t, 0, logs.Len())

	// Original retains its level
	traceQuery(l, context.Background(), nil)
	assert.Equal(t, 1, logs.Len())
}

func TestMapGormLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, MapGormLogLevel("silent"))
	assert.Equal(t, gormlogger.Error, MapGormLogLevel("error"))
	assert.Equal(t, gormlogger.Warn, MapGormLogLevel("warn"))
	assert.Equal(t, gormlogger.Info, MapGormLogLevel("info"))
	assert.Equal(t, gormlogger.Info, MapGormLogLevel("debug"))
	assert.Equal(t, gormlogger.Warn, MapGormLogLevel("unknown"))
}
