package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"pedidos-system/internal/controllers"
	"pedidos-system/internal/services"
	"pedidos-system/pkg/constants"
	"pedidos-system/pkg/middleware"
)

func runReportRouter(
	secureGroup *echo.Group,
	reportService services.ReportServiceInterface,
	logger *zap.Logger,
	authMW *middleware.AuthMiddleware,
) {
	reportCtrl := controllers.NewReportController(reportService, logger)

	secureGroup.GET("/reports/orders", reportCtrl.ExportOrders, authMW.RequireRole(constants.RoleManager))
}
