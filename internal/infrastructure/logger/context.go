package logger

import (
	"context"

	"go.uber.org/zap"
)

type contextKey string

const (
	loggerKey    contextKey = "logger"
	requestIDKey contextKey = "request_id"
	panelIDKey   contextKey = "panel_id"
)

// WithContext attaches a logger to the context
func WithContext(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger attached to the context, or a no-op
// logger when none is attached
func FromContext(ctx context.Context) *zap.Logger {
	if logger, ok := ctx.Value(loggerKey).(*zap.Logger); ok {
		return logger
	}
	return zap.NewNop()
}

// WithRequestID stores the request ID on the context and returns a
// logger that tags every entry with it
func WithRequestID(ctx context.Context, logger *zap.Logger, requestID string) (context.Context, *zap.Logger) {
	ctx = context.WithValue(ctx, requestIDKey, requestID)
	enriched := logger.With(zap.String("request_id", requestID))
	return WithContext(ctx, enriched), enriched
}

// WithPanelID stores the panel ID on the context and returns a logger
// that tags every entry with it
func WithPanelID(ctx context.Context, logger *zap.Logger, panelID string) (context.Context, *zap.Logger) {
	ctx = context.WithValue(ctx, panelIDKey, panelID)
	enriched := logger.With(zap.String("panel_id", panelID))
	return WithContext(ctx, enriched), enriched
}

// GetRequestID returns the request ID carried by the context
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(requestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// GetPanelID returns the panel ID carried by the context
func GetPanelID(ctx context.Context) string {
	if panelID, ok := ctx.Value(panelIDKey).(string); ok {
		return panelID
	}
	return ""
}
