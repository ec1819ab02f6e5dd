package middleware

import (
	"strings"

	apperrors "pedidos-system/pkg/errors"
	"pedidos-system/pkg/service"
	"pedidos-system/pkg/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AuthMiddleware struct {
	jwtService service.JWTService
	logger     *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtSvc,
		logger:     logger,
	}
}

// Auth проверяет Bearer-токен и кладёт идентичность пользователя
// (id и роль) в контекст запроса.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			m.logger.Warn("AuthMiddleware: Пустой заголовок Authorization")
			return utils.ErrorResponse(c, apperrors.ErrEmptyAuthHeader, m.logger)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			m.logger.Warn("AuthMiddleware: Неверный формат заголовка Authorization")
			return utils.ErrorResponse(c, apperrors.ErrInvalidAuthHeader, m.logger)
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			m.logger.Warn("AuthMiddleware: Ошибка валидации токена", zap.Error(err))
			return utils.ErrorResponse(c, err, m.logger)
		}

		if claims.IsRefreshToken {
			m.logger.Warn("AuthMiddleware: Попытка доступа с refresh токеном")
			return utils.ErrorResponse(c, apperrors.ErrTokenIsNotAccess, m.logger)
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			m.logger.Warn("AuthMiddleware: Невалидный UserID в токене", zap.String("userId", claims.UserID))
			return utils.ErrorResponse(c, apperrors.ErrInvalidToken, m.logger)
		}

		newCtx := utils.CtxWithUser(c.Request().Context(), userID, claims.Role)
		c.SetRequest(c.Request().WithContext(newCtx))

		return next(c)
	}
}

// RequireRole пропускает запрос только если роль из токена входит в allowed.
// Право на подтверждение учётных записей проверяется именно здесь,
// сервисный слой его повторно не валидирует.
func (m *AuthMiddleware) RequireRole(allowed ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, err := utils.GetUserRoleFromCtx(c.Request().Context())
			if err != nil {
				return utils.ErrorResponse(c, err, m.logger)
			}
			for _, a := range allowed {
				if role == a {
					return next(c)
				}
			}
			m.logger.Warn("RequireRole: Недостаточно прав", zap.String("role", role), zap.Strings("allowed", allowed))
			return utils.ErrorResponse(c, apperrors.ErrForbidden, m.logger)
		}
	}
}
