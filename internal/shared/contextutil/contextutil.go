package contextutil

import (
	"context"

	"go.uber.org/zap"
)

// private key type so no other package can collide with our context values
type contextKey string

const (
	requestIDKey      contextKey = "request_id"
	userIDKey         contextKey = "user_id"
	organisationIDKey contextKey = "organisation_id"
	loggerKey         contextKey = "logger"
)

func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}

func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey).(string); ok {
		return rid
	}
	return ""
}

func WithUserID(ctx context.Context, uid int64) context.Context {
	return context.WithValue(ctx, userIDKey, uid)
}

func GetUserID(ctx context.Context) int64 {
	if uid, ok := ctx.Value(userIDKey).(int64); ok {
		return uid
	}
	return 0
}

func WithOrganisationID(ctx context.Context, orgID int64) context.Context {
	return context.WithValue(ctx, organisationIDKey, orgID)
}

func GetOrganisationID(ctx context.Context) int64 {
	if id, ok := ctx.Value(organisationIDKey).(int64); ok {
		return id
	}
	return 0
}

// WithLogger stores a request-scoped (already decorated) zap logger.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger returns the request-scoped logger, the supplied fallback, or a
// nop logger. Never returns nil.
func GetLogger(ctx context.Context, defaultLogger *zap.Logger) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok && l != nil {
			return l
		}
	}

	if defaultLogger != nil {
		return defaultLogger
	}

	return zap.NewNop()
}
