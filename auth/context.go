package auth

import (
	"context"

	"chirper/domain"
)

const (
	userKey privateKey = "user"
)

type privateKey string

// SetUser stores the resolved caller in the request context.
func SetUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUser returns the resolved caller from the request context, or nil if
// the request carried no valid credential.
func GetUser(ctx context.Context) *domain.User {
	if temp := ctx.Value(userKey); temp != nil {
		if user, ok := temp.(*domain.User); ok {
			return user
		}
	}
	return nil
}
