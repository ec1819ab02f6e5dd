package listeners

import (
	"context"
	"fmt"

	"pedidos-system/internal/events"
	"pedidos-system/pkg/eventbus"

	"go.uber.org/zap"
)

// NotificationListener — серверная сторона канала уведомлений.
// Само отображение (тосты) живёт на клиенте; здесь события workflow
// фиксируются в журнале уведомлений.
type NotificationListener struct {
	logger *zap.Logger
}

func NewNotificationListener(logger *zap.Logger) *NotificationListener {
	return &NotificationListener{logger: logger}
}

func (l *NotificationListener) Subscribe(bus *eventbus.Bus) {
	bus.Subscribe(events.OrderCreatedName, l.onOrderCreated)
	bus.Subscribe(events.OrderStatusChangedName, l.onOrderStatusChanged)
	bus.Subscribe(events.UserApprovedName, l.onUserApproved)
}

func (l *NotificationListener) onOrderCreated(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.OrderCreatedEvent)
	if !ok {
		return fmt.Errorf("неожиданный тип события: %T", event)
	}
	l.logger.Info("Уведомление: создан новый заказ",
		zap.String("orderId", e.Order.ID.String()),
		zap.String("engineerId", e.Order.EngineerID.String()),
		zap.String("urgency", e.Order.Urgency),
	)
	return nil
}

func (l *NotificationListener) onOrderStatusChanged(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.OrderStatusChangedEvent)
	if !ok {
		return fmt.Errorf("неожиданный тип события: %T", event)
	}
	l.logger.Info("Уведомление: заказ переведен на другой этап",
		zap.String("orderId", e.OrderID.String()),
		zap.String("oldStatus", e.OldStatus),
		zap.String("newStatus", e.NewStatus),
	)
	return nil
}

func (l *NotificationListener) onUserApproved(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.UserApprovedEvent)
	if !ok {
		return fmt.Errorf("неожиданный тип события: %T", event)
	}
	l.logger.Info("Уведомление: учётная запись подтверждена",
		zap.String("userId", e.UserID.String()),
		zap.String("role", e.Role),
	)
	return nil
}
