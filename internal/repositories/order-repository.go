package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pedidos-system/internal/entities"
	apperrors "pedidos-system/pkg/errors"
	"pedidos-system/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const orderTable = "orders"
const orderSelectFields = "id, engineer_id, status, urgency, cost_center, materials, responsible_name, deadline, created_at, updated_at, deleted_at"

// ЕДИНАЯ КАРТА ПОЛЕЙ (Фильтр + Сортировка)
var orderFieldMap = map[string]string{
	"status":      "status",
	"urgency":     "urgency",
	"engineer_id": "engineer_id",
	"created_at":  "created_at",
	"deadline":    "deadline",
}

type OrderRepositoryInterface interface {
	GetOrdersByEngineer(ctx context.Context, engineerID uuid.UUID) ([]entities.Order, error)
	GetOrders(ctx context.Context, filter types.Filter) ([]entities.Order, uint64, error)
	FindOrder(ctx context.Context, id uuid.UUID) (*entities.Order, error)
	CreateOrder(ctx context.Context, order *entities.Order) (*entities.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}

type OrderRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewOrderRepository(storage *pgxpool.Pool, logger *zap.Logger) OrderRepositoryInterface {
	return &OrderRepository{storage: storage, logger: logger}
}

func scanOrder(row pgx.Row) (*entities.Order, error) {
	var o entities.Order
	err := row.Scan(
		&o.ID, &o.EngineerID, &o.Status, &o.Urgency, &o.CostCenter,
		&o.Materials, &o.ResponsibleName, &o.Deadline,
		&o.CreatedAt, &o.UpdatedAt, &o.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка сканирования order: %w", err)
	}
	return &o, nil
}

// GetOrdersByEngineer возвращает полный снимок заказов инженера,
// новые сверху. Снимок без пагинации: клиент целиком замещает
// своё состояние результатом.
func (r *OrderRepository) GetOrdersByEngineer(ctx context.Context, engineerID uuid.UUID) ([]entities.Order, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM %s WHERE engineer_id = $1 AND deleted_at IS NULL ORDER BY created_at DESC`,
		orderSelectFields, orderTable,
	)
	r.logger.Debug("Выполнение SQL-запроса списка заказов инженера",
		zap.String("engineerId", engineerID.String()))

	rows, err := r.storage.Query(ctx, query, engineerID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения заказов: %w", err)
	}
	defer rows.Close()

	orders := make([]entities.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

// GetOrders — общий конвейер для менеджера: фильтры, поиск, пагинация.
func (r *OrderRepository) GetOrders(ctx context.Context, filter types.Filter) ([]entities.Order, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	conds := sq.And{sq.Eq{"deleted_at": nil}}
	for key, value := range filter.Filter {
		column, ok := orderFieldMap[key]
		if !ok {
			continue
		}
		if strVal, ok := value.(string); ok && strings.Contains(strVal, ",") {
			conds = append(conds, sq.Eq{column: strings.Split(strVal, ",")})
		} else {
			conds = append(conds, sq.Eq{column: value})
		}
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		conds = append(conds, sq.Or{
			sq.ILike{"materials": pattern},
			sq.ILike{"cost_center": pattern},
		})
	}

	countQuery, countArgs, err := psql.Select("COUNT(id)").From(orderTable).Where(conds).ToSql()
	if err != nil {
		return nil, 0, err
	}

	var totalCount uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("ошибка подсчёта заказов: %w", err)
	}
	if totalCount == 0 {
		return []entities.Order{}, 0, nil
	}

	builder := psql.Select(orderSelectFields).From(orderTable).Where(conds)

	orderBy := "created_at DESC"
	for field, direction := range filter.Sort {
		if column, ok := orderFieldMap[field]; ok {
			orderBy = fmt.Sprintf("%s %s", column, strings.ToUpper(direction))
			break
		}
	}
	builder = builder.OrderBy(orderBy)

	if filter.WithPagination {
		builder = builder.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	}

	mainQuery, mainArgs, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	r.logger.Debug("Выполнение основного SQL-запроса", zap.String("query", mainQuery), zap.Any("args", mainArgs))

	rows, err := r.storage.Query(ctx, mainQuery, mainArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка получения заказов: %w", err)
	}
	defer rows.Close()

	orders := make([]entities.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, *order)
	}
	return orders, totalCount, rows.Err()
}

func (r *OrderRepository) FindOrder(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1 AND deleted_at IS NULL`, orderSelectFields, orderTable)
	row := r.storage.QueryRow(ctx, query, id)
	return scanOrder(row)
}

func (r *OrderRepository) CreateOrder(ctx context.Context, order *entities.Order) (*entities.Order, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (engineer_id, status, urgency, cost_center, materials, responsible_name, deadline)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s
	`, orderTable, orderSelectFields)

	row := r.storage.QueryRow(ctx, query,
		order.EngineerID, order.Status, order.Urgency, order.CostCenter,
		order.Materials, order.ResponsibleName, order.Deadline,
	)
	return scanOrder(row)
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2 AND deleted_at IS NULL`
	result, err := r.storage.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
