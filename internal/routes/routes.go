package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"pedidos-system/internal/repositories"
	"pedidos-system/internal/services"
	"pedidos-system/pkg/config"
	"pedidos-system/pkg/eventbus"
	"pedidos-system/pkg/middleware"
	"pedidos-system/pkg/service"
)

func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	redisClient *redis.Client,
	jwtSvc service.JWTService,
	bus *eventbus.Bus,
	cfg *config.Config,
	logger *zap.Logger,
) {
	logger.Info("InitRouter: Начало создания маршрутов")

	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)

	// --- РЕПОЗИТОРИИ ---
	userRepo := repositories.NewUserRepository(dbConn, logger)
	orderRepo := repositories.NewOrderRepository(dbConn, logger)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	// --- СЕРВИСЫ ---
	authService := services.NewAuthService(userRepo, cacheRepo, jwtSvc, &cfg.Auth, logger)
	orderService := services.NewOrderService(orderRepo, bus, logger)
	userService := services.NewUserService(userRepo, bus, logger)
	dashboardService := services.NewDashboardService(orderRepo, logger)
	reportService := services.NewReportService(orderRepo, logger)

	// --- РОУТЕРЫ ---
	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(api, authService, logger)
	runOrderRouter(secureGroup, orderService, dashboardService, logger, authMW)
	runUserRouter(secureGroup, userService, logger, authMW)
	runReportRouter(secureGroup, reportService, logger, authMW)

	logger.Info("InitRouter: Создание маршрутов завершено")
}
