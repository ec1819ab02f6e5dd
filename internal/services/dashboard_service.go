package services

import (
	"context"

	"pedidos-system/internal/dto"
	"pedidos-system/internal/entities"
	"pedidos-system/internal/repositories"
	"pedidos-system/pkg/constants"
	"pedidos-system/pkg/types"
	"pedidos-system/pkg/utils"

	"go.uber.org/zap"
)

type DashboardServiceInterface interface {
	GetOrderStats(ctx context.Context) (*dto.OrderStatsDTO, error)
}

type DashboardService struct {
	orderRepo repositories.OrderRepositoryInterface
	logger    *zap.Logger
}

func NewDashboardService(orderRepo repositories.OrderRepositoryInterface, logger *zap.Logger) DashboardServiceInterface {
	return &DashboardService{orderRepo: orderRepo, logger: logger}
}

// AggregateOrders считает сводку по снимку заказов. Чистая функция:
// снимок не изменяется, результат не зависит от порядка элементов.
// InProgress намеренно считает сырой статус approved (карточка
// "Andamento"), статусы in_progress/ready/rejected в сводку не входят.
func AggregateOrders(orders []entities.Order) dto.OrderStatsDTO {
	stats := dto.OrderStatsDTO{Total: len(orders)}
	for _, order := range orders {
		switch order.Status {
		case constants.StatusPending:
			stats.Pending++
		case constants.StatusApproved:
			stats.InProgress++
		case constants.StatusDelivered:
			stats.Delivered++
		}
	}
	return stats
}

// GetOrderStats агрегирует снимок заказов вызывающего: инженер получает
// сводку по своим заказам, менеджер — по всему конвейеру.
func (s *DashboardService) GetOrderStats(ctx context.Context) (*dto.OrderStatsDTO, error) {
	role, err := utils.GetUserRoleFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	var orders []entities.Order
	if role == constants.RoleManager {
		orders, _, err = s.orderRepo.GetOrders(ctx, types.Filter{})
	} else {
		engineerID, ctxErr := utils.GetUserIDFromCtx(ctx)
		if ctxErr != nil {
			return nil, ctxErr
		}
		orders, err = s.orderRepo.GetOrdersByEngineer(ctx, engineerID)
	}
	if err != nil {
		s.logger.Error("Не удалось загрузить снимок заказов для сводки", zap.Error(err))
		return nil, err
	}

	stats := AggregateOrders(orders)
	return &stats, nil
}
