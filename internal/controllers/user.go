package controllers

import (
	"net/http"

	"pedidos-system/internal/dto"
	"pedidos-system/internal/services"
	apperrors "pedidos-system/pkg/errors"
	"pedidos-system/pkg/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type UserController struct {
	userService services.UserServiceInterface
	logger      *zap.Logger
}

func NewUserController(userService services.UserServiceInterface, logger *zap.Logger) *UserController {
	return &UserController{userService: userService, logger: logger}
}

func (c *UserController) GetPendingUsers(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	users, err := c.userService.GetPendingUsers(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, users, "Usuários pendentes carregados com sucesso.", http.StatusOK)
}

// ApproveUser назначает учётной записи роль engineer или manager.
// После успеха клиент перечитывает список ожидающих; при ошибке список
// не трогается — оптимистичного удаления нет.
func (c *UserController) ApproveUser(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(
				http.StatusBadRequest,
				"ID inválido.",
				err,
				map[string]interface{}{"param": ctx.Param("id")},
			),
			c.logger,
		)
	}

	var payload dto.ApproveUserDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "JSON inválido.", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.userService.ApproveUser(reqCtx, id, payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, struct{}{}, "Usuário aprovado com sucesso.", http.StatusOK)
}
