package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"pedidos-system/internal/controllers"
	"pedidos-system/internal/services"
)

func runAuthRouter(api *echo.Group, authService services.AuthServiceInterface, logger *zap.Logger) {
	authCtrl := controllers.NewAuthController(authService, logger)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authCtrl.Register)
		authGroup.POST("/login", authCtrl.Login)
		authGroup.POST("/refresh", authCtrl.Refresh)
	}
}
