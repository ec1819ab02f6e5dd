package services

import (
	"testing"

	"pedidos-system/internal/dto"
	"pedidos-system/internal/entities"
	"pedidos-system/pkg/constants"
	apperrors "pedidos-system/pkg/errors"
	"pedidos-system/pkg/eventbus"
	"pedidos-system/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newOrderServiceForTest(repo *fakeOrderRepo) OrderServiceInterface {
	return NewOrderService(repo, eventbus.New(zap.NewNop()), zap.NewNop())
}

func TestToOrderDTO(t *testing.T) {
	order := entities.Order{
		ID:         uuid.New(),
		EngineerID: uuid.New(),
		Status:     constants.StatusReady,
		Urgency:    constants.UrgencyHigh,
		Materials:  "Cimento CP-II 50kg x20",
	}

	d := ToOrderDTO(order)

	assert.Equal(t, constants.StatusReady, d.Status)
	assert.Equal(t, 4, d.StatusStep)
	assert.Equal(t, "Alta", d.UrgencyLabel)
	assert.Equal(t, constants.SeverityCritical, d.UrgencySeverity)
}

func TestOrderService_CreateOrder(t *testing.T) {
	engineerID := uuid.New()
	ctx := utils.CtxWithUser(t.Context(), engineerID, constants.RoleEngineer)

	t.Run("новый заказ всегда начинает с pending", func(t *testing.T) {
		repo := &fakeOrderRepo{}
		svc := newOrderServiceForTest(repo)

		created, err := svc.CreateOrder(ctx, dto.CreateOrderDTO{
			Materials:  "Vergalhão 10mm x120",
			CostCenter: "CC-OBRA-01",
		})
		require.NoError(t, err)

		assert.Equal(t, constants.StatusPending, created.Status)
		assert.Equal(t, 1, created.StatusStep, "Созданный заказ — первый сегмент индикатора")
		assert.Equal(t, engineerID, created.EngineerID, "Владелец берётся из сессии")
		assert.Equal(t, constants.UrgencyNormal, created.Urgency, "Срочность по умолчанию — normal")
	})

	t.Run("созданный заказ появляется в следующем снимке", func(t *testing.T) {
		repo := &fakeOrderRepo{}
		svc := newOrderServiceForTest(repo)

		created, err := svc.CreateOrder(ctx, dto.CreateOrderDTO{
			Materials:       "Tubo PVC 100mm x30",
			CostCenter:      "CC-OBRA-02",
			Urgency:         constants.UrgencyHigh,
			ResponsibleName: utils.StringPtr("Almoxarifado Central"),
		})
		require.NoError(t, err)

		snapshot, err := svc.GetMyOrders(ctx)
		require.NoError(t, err)
		require.Len(t, snapshot, 1)
		assert.Equal(t, created.ID, snapshot[0].ID)
		assert.Equal(t, constants.UrgencyHigh, snapshot[0].Urgency)
	})

	t.Run("без идентичности в контексте — ошибка", func(t *testing.T) {
		svc := newOrderServiceForTest(&fakeOrderRepo{})
		_, err := svc.CreateOrder(t.Context(), dto.CreateOrderDTO{Materials: "x", CostCenter: "y"})
		assert.ErrorIs(t, err, apperrors.ErrUserIDNotFoundInContext)
	})
}

func TestOrderService_FindOrder(t *testing.T) {
	ownerID := uuid.New()
	strangerID := uuid.New()
	orderID := uuid.New()

	repo := &fakeOrderRepo{orders: []entities.Order{
		{ID: orderID, EngineerID: ownerID, Status: constants.StatusApproved},
	}}
	svc := newOrderServiceForTest(repo)

	t.Run("владелец видит свой заказ", func(t *testing.T) {
		ctx := utils.CtxWithUser(t.Context(), ownerID, constants.RoleEngineer)
		found, err := svc.FindOrder(ctx, orderID)
		require.NoError(t, err)
		assert.Equal(t, orderID, found.ID)
	})

	t.Run("чужой заказ неотличим от несуществующего", func(t *testing.T) {
		ctx := utils.CtxWithUser(t.Context(), strangerID, constants.RoleEngineer)
		_, err := svc.FindOrder(ctx, orderID)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("менеджер видит любой заказ", func(t *testing.T) {
		ctx := utils.CtxWithUser(t.Context(), strangerID, constants.RoleManager)
		found, err := svc.FindOrder(ctx, orderID)
		require.NoError(t, err)
		assert.Equal(t, orderID, found.ID)
	})
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	orderID := uuid.New()
	ctx := utils.CtxWithUser(t.Context(), uuid.New(), constants.RoleManager)

	t.Run("перевод на следующий этап", func(t *testing.T) {
		repo := &fakeOrderRepo{orders: []entities.Order{
			{ID: orderID, EngineerID: uuid.New(), Status: constants.StatusApproved},
		}}
		svc := newOrderServiceForTest(repo)

		updated, err := svc.UpdateOrderStatus(ctx, orderID, dto.UpdateOrderStatusDTO{Status: constants.StatusInProgress})
		require.NoError(t, err)

		assert.Equal(t, constants.StatusInProgress, updated.Status)
		assert.Equal(t, 3, updated.StatusStep)
		assert.Equal(t, constants.StatusInProgress, repo.orders[0].Status, "Статус сохранён в репозитории")
	})

	t.Run("повторная установка того же статуса — no-op", func(t *testing.T) {
		repo := &fakeOrderRepo{orders: []entities.Order{
			{ID: orderID, EngineerID: uuid.New(), Status: constants.StatusReady},
		}}
		svc := newOrderServiceForTest(repo)

		updated, err := svc.UpdateOrderStatus(ctx, orderID, dto.UpdateOrderStatusDTO{Status: constants.StatusReady})
		require.NoError(t, err)
		assert.Equal(t, constants.StatusReady, updated.Status)
	})

	t.Run("несуществующий заказ", func(t *testing.T) {
		svc := newOrderServiceForTest(&fakeOrderRepo{})
		_, err := svc.UpdateOrderStatus(ctx, uuid.New(), dto.UpdateOrderStatusDTO{Status: constants.StatusReady})
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}
