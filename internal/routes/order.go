package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"pedidos-system/internal/controllers"
	"pedidos-system/internal/services"
	"pedidos-system/pkg/constants"
	"pedidos-system/pkg/middleware"
)

func runOrderRouter(
	secureGroup *echo.Group,
	orderService services.OrderServiceInterface,
	dashboardService services.DashboardServiceInterface,
	logger *zap.Logger,
	authMW *middleware.AuthMiddleware,
) {
	orderCtrl := controllers.NewOrderController(orderService, logger)
	dashboardCtrl := controllers.NewDashboardController(dashboardService, logger)
	{
		secureGroup.GET("/orders", orderCtrl.GetMyOrders)
		secureGroup.POST("/orders", orderCtrl.CreateOrder)
		secureGroup.GET("/orders/stats", dashboardCtrl.GetOrderStats)
		secureGroup.GET("/orders/all", orderCtrl.GetAllOrders, authMW.RequireRole(constants.RoleManager))
		secureGroup.GET("/orders/:id", orderCtrl.FindOrder)
		secureGroup.PATCH("/orders/:id/status", orderCtrl.UpdateOrderStatus, authMW.RequireRole(constants.RoleManager))
	}
}
