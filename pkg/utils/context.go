package utils

import (
	"context"

	"account-service/internal/data/entity"
)

type contextKey string

const (
	UserKey  contextKey = "user"
	TokenKey contextKey = "token"
)

// SetUserContext stores the resolved caller identity for downstream handlers
func SetUserContext(ctx context.Context, user *entity.User) context.Context {
	return context.WithValue(ctx, UserKey, user)
}

// GetUserFromContext returns the caller resolved by the auth middleware
func GetUserFromContext(ctx context.Context) (*entity.User, bool) {
	userVal := ctx.Value(UserKey)
	if userVal == nil {
		return nil, false
	}

	user, ok := userVal.(*entity.User)
	if !ok || user == nil {
		return nil, false
	}

	return user, true
}

// SetTokenContext stores the raw bearer token in the context
func SetTokenContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenKey, token)
}

// GetTokenFromContext returns the raw bearer token from the context
func GetTokenFromContext(ctx context.Context) (string, bool) {
	tokenVal := ctx.Value(TokenKey)
	if tokenVal == nil {
		return "", false
	}

	token, ok := tokenVal.(string)
	return token, ok
}
