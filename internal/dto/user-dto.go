package dto

import (
	"time"

	"github.com/google/uuid"
)

// PendingUserDTO — учётная запись, ожидающая подтверждения менеджером.
type PendingUserDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type ApproveUserDTO struct {
	Role string `json:"role" validate:"required,approval_role"`
}

type UserDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      *string   `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
