package services

import (
	"context"

	"pedidos-system/internal/dto"
	"pedidos-system/internal/entities"
	"pedidos-system/internal/events"
	"pedidos-system/internal/repositories"
	"pedidos-system/pkg/constants"
	apperrors "pedidos-system/pkg/errors"
	"pedidos-system/pkg/eventbus"
	"pedidos-system/pkg/types"
	"pedidos-system/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderServiceInterface interface {
	GetMyOrders(ctx context.Context) ([]dto.OrderDTO, error)
	GetOrders(ctx context.Context, filter types.Filter) ([]dto.OrderDTO, uint64, error)
	FindOrder(ctx context.Context, id uuid.UUID) (*dto.OrderDTO, error)
	CreateOrder(ctx context.Context, payload dto.CreateOrderDTO) (*dto.OrderDTO, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, payload dto.UpdateOrderStatusDTO) (*dto.OrderDTO, error)
}

type OrderService struct {
	orderRepo repositories.OrderRepositoryInterface
	bus       *eventbus.Bus
	logger    *zap.Logger
}

func NewOrderService(orderRepo repositories.OrderRepositoryInterface, bus *eventbus.Bus, logger *zap.Logger) OrderServiceInterface {
	return &OrderService{orderRepo: orderRepo, bus: bus, logger: logger}
}

// ToOrderDTO дополняет сырые значения заказа вычисленным шагом конвейера
// и подписями для клиента.
func ToOrderDTO(o entities.Order) dto.OrderDTO {
	return dto.OrderDTO{
		ID:              o.ID,
		EngineerID:      o.EngineerID,
		Status:          o.Status,
		StatusStep:      constants.StatusStep(o.Status),
		StatusLabel:     constants.StatusLabel(o.Status),
		Urgency:         o.Urgency,
		UrgencyLabel:    constants.UrgencyLabel(o.Urgency),
		UrgencySeverity: constants.UrgencySeverity(o.Urgency),
		CostCenter:      o.CostCenter,
		Materials:       o.Materials,
		ResponsibleName: o.ResponsibleName,
		Deadline:        o.Deadline,
		CreatedAt:       o.CreatedAt,
	}
}

func toOrderDTOs(orders []entities.Order) []dto.OrderDTO {
	dtos := make([]dto.OrderDTO, len(orders))
	for i, o := range orders {
		dtos[i] = ToOrderDTO(o)
	}
	return dtos
}

// GetMyOrders возвращает полный снимок заказов текущего инженера.
func (s *OrderService) GetMyOrders(ctx context.Context) ([]dto.OrderDTO, error) {
	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.GetOrdersByEngineer(ctx, userID)
	if err != nil {
		s.logger.Error("Не удалось загрузить заказы инженера", zap.Error(err))
		return nil, err
	}
	return toOrderDTOs(orders), nil
}

// GetOrders — общий конвейер заказов (доступ только менеджеру, проверяется
// в middleware).
func (s *OrderService) GetOrders(ctx context.Context, filter types.Filter) ([]dto.OrderDTO, uint64, error) {
	orders, total, err := s.orderRepo.GetOrders(ctx, filter)
	if err != nil {
		s.logger.Error("Не удалось загрузить конвейер заказов", zap.Error(err))
		return nil, 0, err
	}
	return toOrderDTOs(orders), total, nil
}

func (s *OrderService) FindOrder(ctx context.Context, id uuid.UUID) (*dto.OrderDTO, error) {
	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	role, err := utils.GetUserRoleFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	order, err := s.orderRepo.FindOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	// Инженер видит только свои заказы; чужой заказ неотличим от несуществующего.
	if role != constants.RoleManager && order.EngineerID != userID {
		return nil, apperrors.ErrNotFound
	}

	result := ToOrderDTO(*order)
	return &result, nil
}

// CreateOrder сохраняет заказ от имени текущего инженера. Статус всегда
// pending: конвейер начинается с первого шага независимо от payload.
func (s *OrderService) CreateOrder(ctx context.Context, payload dto.CreateOrderDTO) (*dto.OrderDTO, error) {
	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	urgency := payload.Urgency
	if urgency == "" {
		urgency = constants.UrgencyNormal
	}

	order := &entities.Order{
		EngineerID:      userID,
		Status:          constants.StatusPending,
		Urgency:         urgency,
		CostCenter:      payload.CostCenter,
		Materials:       payload.Materials,
		ResponsibleName: payload.ResponsibleName,
		Deadline:        payload.Deadline,
	}

	created, err := s.orderRepo.CreateOrder(ctx, order)
	if err != nil {
		s.logger.Error("Не удалось создать заказ", zap.Error(err))
		return nil, err
	}

	s.bus.Publish(ctx, events.OrderCreatedEvent{Order: *created})

	result := ToOrderDTO(*created)
	return &result, nil
}

// UpdateOrderStatus переводит заказ на другой этап конвейера (доступ только
// менеджеру, проверяется в middleware). Повторная установка того же статуса —
// no-op без события.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, payload dto.UpdateOrderStatusDTO) (*dto.OrderDTO, error) {
	order, err := s.orderRepo.FindOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if order.Status != payload.Status {
		if err := s.orderRepo.UpdateStatus(ctx, id, payload.Status); err != nil {
			s.logger.Error("Не удалось обновить статус заказа",
				zap.String("orderId", id.String()), zap.Error(err))
			return nil, err
		}
		s.bus.Publish(ctx, events.OrderStatusChangedEvent{
			OrderID:   id,
			OldStatus: order.Status,
			NewStatus: payload.Status,
		})
		order.Status = payload.Status
	}

	result := ToOrderDTO(*order)
	return &result, nil
}
