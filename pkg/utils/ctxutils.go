package utils

import (
	"context"

	"pedidos-system/pkg/contextkeys"
	apperrors "pedidos-system/pkg/errors"

	"github.com/google/uuid"
)

// Идентичность сессии передаётся через context.Context из auth middleware —
// никакого глобального состояния "текущего пользователя" в пакетах нет.

func GetUserIDFromCtx(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctx.Value(contextkeys.UserIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, apperrors.ErrUserIDNotFoundInContext
	}
	return userID, nil
}

func GetUserRoleFromCtx(ctx context.Context) (string, error) {
	role, ok := ctx.Value(contextkeys.UserRoleKey).(string)
	if !ok {
		return "", apperrors.ErrForbidden
	}
	return role, nil
}

func CtxWithUser(ctx context.Context, userID uuid.UUID, role string) context.Context {
	ctx = context.WithValue(ctx, contextkeys.UserIDKey, userID)
	return context.WithValue(ctx, contextkeys.UserRoleKey, role)
}
