// Package appctx holds the request-scoped context keys shared by middlewares,
// handlers and models.
package appctx

import "context"

type ContextKey string

const (
	ContextKeyToken         ContextKey = "token"
	ContextKeyUserId        ContextKey = "user_id"
	ContextKeyUserEmail     ContextKey = "user_email"
	ContextKeyUserRole      ContextKey = "user_role"
	ContextKeyCorrelationId ContextKey = "correlation_id"
)

func GetString(ctx context.Context, key ContextKey) (string, bool) {
	v, ok := ctx.Value(key).(string)
	return v, ok
}

func GetInt(ctx context.Context, key ContextKey) (int, bool) {
	v, ok := ctx.Value(key).(int)
	return v, ok
}

func WithString(ctx context.Context, key ContextKey, value string) context.Context {
	return context.WithValue(ctx, key, value)
}

func WithInt(ctx context.Context, key ContextKey, value int) context.Context {
	return context.WithValue(ctx, key, value)
}
