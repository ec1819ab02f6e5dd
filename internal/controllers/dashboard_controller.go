package controllers

import (
	"net/http"

	"pedidos-system/internal/services"
	"pedidos-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
	logger           *zap.Logger
}

func NewDashboardController(dashboardService services.DashboardServiceInterface, logger *zap.Logger) *DashboardController {
	return &DashboardController{dashboardService: dashboardService, logger: logger}
}

func (c *DashboardController) GetOrderStats(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	stats, err := c.dashboardService.GetOrderStats(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, stats, "Estatísticas calculadas com sucesso.", http.StatusOK)
}
