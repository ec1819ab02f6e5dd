package events

import (
	"pedidos-system/internal/entities"

	"github.com/google/uuid"
)

const (
	OrderCreatedName       = "order.created"
	OrderStatusChangedName = "order.status_changed"
	UserApprovedName       = "user.approved"
)

// OrderCreatedEvent публикуется после успешного сохранения нового заказа.
type OrderCreatedEvent struct {
	Order entities.Order
}

func (e OrderCreatedEvent) Name() string { return OrderCreatedName }

// OrderStatusChangedEvent публикуется после перевода заказа на другой
// этап конвейера.
type OrderStatusChangedEvent struct {
	OrderID   uuid.UUID
	OldStatus string
	NewStatus string
}

func (e OrderStatusChangedEvent) Name() string { return OrderStatusChangedName }

// UserApprovedEvent публикуется после перевода учётной записи в роль.
type UserApprovedEvent struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

func (e UserApprovedEvent) Name() string { return UserApprovedName }
