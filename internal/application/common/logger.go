package common

import "context"

// SessionLogger provides diagnostic logging for session operations
type SessionLogger interface {
	Log(level, message string, metadata map[string]interface{})
}

// Context keys for passing logger through context
type contextKey int

const (
	loggerKey contextKey = iota
)

// WithLogger adds a logger to the context
func WithLogger(ctx context.Context, logger SessionLogger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext extracts the logger from context, or returns a no-op
// logger if not found
func LoggerFromContext(ctx context.Context) SessionLogger {
	if logger, ok := ctx.Value(loggerKey).(SessionLogger); ok {
		return logger
	}
	return &noOpLogger{}
}

// noOpLogger is the fallback when no logger is carried in the context
type noOpLogger struct{}

func (l *noOpLogger) Log(level, message string, metadata map[string]interface{}) {
}
