package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"pedidos-system/internal/controllers"
	"pedidos-system/internal/services"
	"pedidos-system/pkg/constants"
	"pedidos-system/pkg/middleware"
)

func runUserRouter(
	secureGroup *echo.Group,
	userService services.UserServiceInterface,
	logger *zap.Logger,
	authMW *middleware.AuthMiddleware,
) {
	userCtrl := controllers.NewUserController(userService, logger)

	// Управление учетными записями доступно только менеджерам.
	usersGroup := secureGroup.Group("/users", authMW.RequireRole(constants.RoleManager))
	{
		usersGroup.GET("/pending", userCtrl.GetPendingUsers)
		usersGroup.POST("/:id/approve", userCtrl.ApproveUser)
	}
}
