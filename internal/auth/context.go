package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

type contextKey struct{}

var (
	ErrNoClaims      = errors.New("no user claims in context")
	ErrInvalidUserID = errors.New("invalid user id in claims")
)

func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, contextKey{}, claims)
}

func GetUserClaimsFromContext(ctx context.Context) (*Claims, error) {
	claims, ok := ctx.Value(contextKey{}).(*Claims)
	if !ok || claims == nil || claims.UserID == "" {
		return nil, ErrNoClaims
	}
	return claims, nil
}

// CurrentUserID resolves the caller id. Any failure means there is no usable identity.
func CurrentUserID(ctx context.Context) (uuid.UUID, error) {
	claims, err := GetUserClaimsFromContext(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, ErrInvalidUserID
	}
	return id, nil
}
