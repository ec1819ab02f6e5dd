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

type OrderController struct {
	orderService services.OrderServiceInterface
	logger       *zap.Logger
}

func NewOrderController(orderService services.OrderServiceInterface, logger *zap.Logger) *OrderController {
	return &OrderController{orderService: orderService, logger: logger}
}

// GetMyOrders отдаёт полный снимок заказов текущего инженера.
// При ошибке чтения клиент сохраняет прежний снимок и показывает
// уведомление — частичные данные отсюда никогда не уходят.
func (c *OrderController) GetMyOrders(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	orders, err := c.orderService.GetMyOrders(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, orders, "Pedidos carregados com sucesso.", http.StatusOK)
}

// GetAllOrders — конвейер всех заказов для менеджера.
func (c *OrderController) GetAllOrders(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	orders, total, err := c.orderService.GetOrders(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, orders, "Pedidos carregados com sucesso.", http.StatusOK, total)
}

func (c *OrderController) FindOrder(ctx echo.Context) error {
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

	order, err := c.orderService.FindOrder(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, order, "Pedido encontrado.", http.StatusOK)
}

func (c *OrderController) CreateOrder(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.CreateOrderDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "JSON inválido.", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	created, err := c.orderService.CreateOrder(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, created, "Pedido criado com sucesso.", http.StatusCreated)
}

func (c *OrderController) UpdateOrderStatus(ctx echo.Context) error {
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

	var payload dto.UpdateOrderStatusDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "JSON inválido.", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	updated, err := c.orderService.UpdateOrderStatus(reqCtx, id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, updated, "Status do pedido atualizado com sucesso.", http.StatusOK)
}
