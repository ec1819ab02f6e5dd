package repositories

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"testing"

	"pedidos-system/internal/entities"
	"pedidos-system/pkg/constants"
	apperrors "pedidos-system/pkg/errors"
	"pedidos-system/pkg/types"
	"pedidos-system/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testPool *pgxpool.Pool

// TestMain поднимает соединение с тестовой БД и применяет схему.
// Без TEST_DATABASE_URL интеграционные тесты пропускаются.
func TestMain(m *testing.M) {
	testDbUrl := os.Getenv("TEST_DATABASE_URL")
	if testDbUrl == "" {
		os.Exit(m.Run())
	}

	var err error
	testPool, err = pgxpool.New(context.Background(), testDbUrl)
	if err != nil {
		log.Fatalf("Не удалось подключиться к тестовой БД: %v", err)
	}
	defer testPool.Close()

	applySchema(testPool)

	os.Exit(m.Run())
}

// applySchema читает и выполняет DDL-скрипт для создания таблиц в тестовой БД.
func applySchema(pool *pgxpool.Pool) {
	path, _ := filepath.Abs("../../testdata/schema.sql")
	schema, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Не удалось прочитать schema.sql: %v", err)
	}
	if _, err := pool.Exec(context.Background(), string(schema)); err != nil {
		log.Fatalf("Не удалось применить схему БД: %v", err)
	}
}

func requireTestDB(t *testing.T) {
	t.Helper()
	if testPool == nil {
		t.Skip("TEST_DATABASE_URL не задан, интеграционный тест пропущен")
	}
}

// cleanupTables очищает таблицы для обеспечения изоляции тестов.
func cleanupTables(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(), `TRUNCATE TABLE orders, users CASCADE;`)
	require.NoError(t, err, "Не удалось очистить таблицы")
}

// seedEngineer создает одобренного инженера, владельца тестовых заказов.
func seedEngineer(t *testing.T, pool *pgxpool.Pool, email string) uuid.UUID {
	t.Helper()
	hashed, err := utils.HashPassword("senha123")
	require.NoError(t, err)

	var id uuid.UUID
	err = pool.QueryRow(context.Background(),
		`INSERT INTO users (name, email, password, role) VALUES ('Engenheiro Teste', $1, $2, 'engineer') RETURNING id`,
		email, hashed,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func seedOrder(t *testing.T, pool *pgxpool.Pool, engineerID uuid.UUID, status, urgency, materials string) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	err := pool.QueryRow(context.Background(),
		`INSERT INTO orders (engineer_id, status, urgency, cost_center, materials)
         VALUES ($1, $2, $3, 'CC-TESTE', $4) RETURNING id`,
		engineerID, status, urgency, materials,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func TestOrderRepository_Integration_CreateOrder(t *testing.T) {
	requireTestDB(t)
	cleanupTables(t, testPool)
	engineerID := seedEngineer(t, testPool, "eng@pedidos.local")
	repo := NewOrderRepository(testPool, zap.NewNop())
	ctx := context.Background()

	created, err := repo.CreateOrder(ctx, &entities.Order{
		EngineerID: engineerID,
		Status:     constants.StatusPending,
		Urgency:    constants.UrgencyHigh,
		CostCenter: "CC-TESTE",
		Materials:  "Cimento CP-II 50kg x20",
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, constants.StatusPending, created.Status)
	assert.False(t, created.CreatedAt.IsZero())

	found, err := repo.FindOrder(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cimento CP-II 50kg x20", found.Materials)
}

func TestOrderRepository_Integration_GetOrdersByEngineer(t *testing.T) {
	requireTestDB(t)
	cleanupTables(t, testPool)
	ownerID := seedEngineer(t, testPool, "owner@pedidos.local")
	otherID := seedEngineer(t, testPool, "other@pedidos.local")
	repo := NewOrderRepository(testPool, zap.NewNop())
	ctx := context.Background()

	seedOrder(t, testPool, ownerID, constants.StatusPending, constants.UrgencyNormal, "Areia m3 x6")
	seedOrder(t, testPool, ownerID, constants.StatusDelivered, constants.UrgencyLow, "Brita m3 x4")
	seedOrder(t, testPool, otherID, constants.StatusPending, constants.UrgencyNormal, "Tijolo x1000")

	orders, err := repo.GetOrdersByEngineer(ctx, ownerID)
	require.NoError(t, err)

	require.Len(t, orders, 2, "Снимок содержит только заказы владельца")
	for _, o := range orders {
		assert.Equal(t, ownerID, o.EngineerID)
	}
}

func TestOrderRepository_Integration_GetOrders_Filter(t *testing.T) {
	requireTestDB(t)
	cleanupTables(t, testPool)
	engineerID := seedEngineer(t, testPool, "eng@pedidos.local")
	repo := NewOrderRepository(testPool, zap.NewNop())
	ctx := context.Background()

	seedOrder(t, testPool, engineerID, constants.StatusPending, constants.UrgencyNormal, "Cimento")
	seedOrder(t, testPool, engineerID, constants.StatusDelivered, constants.UrgencyHigh, "Vergalhão")

	orders, total, err := repo.GetOrders(ctx, types.Filter{
		Filter: map[string]interface{}{"status": constants.StatusDelivered},
	})
	require.NoError(t, err)

	assert.Equal(t, uint64(1), total)
	require.Len(t, orders, 1)
	assert.Equal(t, constants.StatusDelivered, orders[0].Status)

	orders, total, err = repo.GetOrders(ctx, types.Filter{Search: "cimen"})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), total)
	require.Len(t, orders, 1)
	assert.Equal(t, "Cimento", orders[0].Materials)
}

func TestOrderRepository_Integration_UpdateStatus(t *testing.T) {
	requireTestDB(t)
	cleanupTables(t, testPool)
	engineerID := seedEngineer(t, testPool, "eng@pedidos.local")
	repo := NewOrderRepository(testPool, zap.NewNop())
	ctx := context.Background()

	orderID := seedOrder(t, testPool, engineerID, constants.StatusPending, constants.UrgencyNormal, "Tinta 18L x4")

	require.NoError(t, repo.UpdateStatus(ctx, orderID, constants.StatusApproved))

	found, err := repo.FindOrder(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusApproved, found.Status)

	err = repo.UpdateStatus(ctx, uuid.New(), constants.StatusApproved)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestOrderRepository_Integration_FindOrder_NotFound(t *testing.T) {
	requireTestDB(t)
	cleanupTables(t, testPool)
	repo := NewOrderRepository(testPool, zap.NewNop())

	_, err := repo.FindOrder(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
