package services

import (
	"context"

	"pedidos-system/internal/dto"
	"pedidos-system/internal/repositories"
	"pedidos-system/pkg/types"

	"go.uber.org/zap"
)

type ReportServiceInterface interface {
	GetOrdersForExport(ctx context.Context) ([]dto.OrderDTO, error)
}

type reportService struct {
	orderRepo repositories.OrderRepositoryInterface
	logger    *zap.Logger
}

func NewReportService(orderRepo repositories.OrderRepositoryInterface, logger *zap.Logger) ReportServiceInterface {
	return &reportService{orderRepo: orderRepo, logger: logger}
}

// GetOrdersForExport выгружает весь конвейер без пагинации для экспорта
// в Excel. Доступ только менеджеру, проверяется в middleware.
func (s *reportService) GetOrdersForExport(ctx context.Context) ([]dto.OrderDTO, error) {
	orders, _, err := s.orderRepo.GetOrders(ctx, types.Filter{})
	if err != nil {
		s.logger.Error("Не удалось выгрузить заказы для отчёта", zap.Error(err))
		return nil, err
	}
	return toOrderDTOs(orders), nil
}
