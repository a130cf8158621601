package utils

import (
	"context"

	"github.com/shreeramenterprise/sems_backend/appctx"
)

var (
	ContextKeyToken         = appctx.ContextKeyToken
	ContextKeyUserId        = appctx.ContextKeyUserId
	ContextKeyUserEmail     = appctx.ContextKeyUserEmail
	ContextKeyUserRole      = appctx.ContextKeyUserRole
	ContextKeyCorrelationId = appctx.ContextKeyCorrelationId
)

func GetTokenFromContext(ctx context.Context) (string, bool) {
	return appctx.GetString(ctx, ContextKeyToken)
}

func GetUserIdFromContext(ctx context.Context) (int, bool) {
	return appctx.GetInt(ctx, ContextKeyUserId)
}

func GetUserEmailFromContext(ctx context.Context) (string, bool) {
	return appctx.GetString(ctx, ContextKeyUserEmail)
}

func GetUserRoleFromContext(ctx context.Context) (string, bool) {
	return appctx.GetString(ctx, ContextKeyUserRole)
}

func GetCorrelationIdFromContext(ctx context.Context) (string, bool) {
	return appctx.GetString(ctx, ContextKeyCorrelationId)
}

func SetTokenInContext(ctx context.Context, token string) context.Context {
	return appctx.WithString(ctx, ContextKeyToken, token)
}

func SetUserIdInContext(ctx context.Context, id int) context.Context {
	return appctx.WithInt(ctx, ContextKeyUserId, id)
}

func SetUserEmailInContext(ctx context.Context, email string) context.Context {
	return appctx.WithString(ctx, ContextKeyUserEmail, email)
}

func SetUserRoleInContext(ctx context.Context, role string) context.Context {
	return appctx.WithString(ctx, ContextKeyUserRole, role)
}

func SetCorrelationIdInContext(ctx context.Context, cid string) context.Context {
	return appctx.WithString(ctx, ContextKeyCorrelationId, cid)
}
