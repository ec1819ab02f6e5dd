package entities

import (
	"pedidos-system/pkg/types"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
)

// User — учётная запись. Role с NULL означает «ждёт подтверждения»;
// после установки в engineer или manager обратного перехода нет.
type User struct {
	ID       uuid.UUID   `json:"id" db:"id"`
	Name     string      `json:"name" db:"name"`
	Email    string      `json:"email" db:"email"`
	Password string      `json:"-" db:"password"`
	Role     null.String `json:"role" db:"role"`

	types.BaseEntity
	types.SoftDelete
}

// IsApproved сообщает, назначена ли учётной записи терминальная роль.
func (u *User) IsApproved() bool {
	return u.Role.Valid
}
