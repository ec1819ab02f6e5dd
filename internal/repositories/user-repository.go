package repositories

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"pedidos-system/internal/entities"
	apperrors "pedidos-system/pkg/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const userTable = "users"
const userSelectFields = "id, name, email, password, role, created_at, updated_at, deleted_at"

type UserRepositoryInterface interface {
	GetPendingUsers(ctx context.Context) ([]entities.User, error)
	FindUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	CreateUser(ctx context.Context, user *entities.User) (*entities.User, error)
	ApproveUser(ctx context.Context, id uuid.UUID, role string) (int64, error)
}

type UserRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewUserRepository(storage *pgxpool.Pool, logger *zap.Logger) UserRepositoryInterface {
	return &UserRepository{storage: storage, logger: logger}
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var user entities.User
	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.Password, &user.Role,
		&user.CreatedAt, &user.UpdatedAt, &user.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка сканирования user: %w", err)
	}
	return &user, nil
}

// GetPendingUsers возвращает полный снимок учётных записей без роли,
// новые сверху.
func (r *UserRepository) GetPendingUsers(ctx context.Context) ([]entities.User, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM %s WHERE role IS NULL AND deleted_at IS NULL ORDER BY created_at DESC`,
		userSelectFields, userTable,
	)

	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения ожидающих пользователей: %w", err)
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

func (r *UserRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1 AND deleted_at IS NULL`, userSelectFields, userTable)
	row := r.storage.QueryRow(ctx, query, id)
	return scanUser(row)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE email = $1 AND deleted_at IS NULL LIMIT 1`, userSelectFields, userTable)
	row := r.storage.QueryRow(ctx, query, email)
	return scanUser(row)
}

func (r *UserRepository) CreateUser(ctx context.Context, user *entities.User) (*entities.User, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, email, password, role)
		VALUES ($1, $2, $3, $4)
		RETURNING %s
	`, userTable, userSelectFields)

	row := r.storage.QueryRow(ctx, query, user.Name, user.Email, user.Password, user.Role)
	createdUser, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "users_email_key") {
				return nil, apperrors.NewHttpError(http.StatusBadRequest, "E-mail já está em uso.", err, nil)
			}
		}
		return nil, err
	}
	return createdUser, nil
}

// ApproveUser выставляет роль учётной записи. Условие role IS NULL
// защищает односторонний переход: проигравший гонку апдейт затронет
// ноль строк и не перезапишет уже назначенную роль.
func (r *UserRepository) ApproveUser(ctx context.Context, id uuid.UUID, role string) (int64, error) {
	query := `UPDATE users SET role = $1, updated_at = NOW() WHERE id = $2 AND role IS NULL AND deleted_at IS NULL`
	result, err := r.storage.Exec(ctx, query, role, id)
	if err != nil {
		return 0, fmt.Errorf("ошибка подтверждения пользователя: %w", err)
	}
	return result.RowsAffected(), nil
}
