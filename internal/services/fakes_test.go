package services

import (
	"context"
	"fmt"
	"time"

	"pedidos-system/internal/entities"
	apperrors "pedidos-system/pkg/errors"
	"pedidos-system/pkg/types"

	"github.com/google/uuid"
)

// Заглушки репозиториев для юнит-тестов сервисов: хранят записи в памяти,
// без БД и без пула соединений.

type fakeOrderRepo struct {
	orders []entities.Order

	createErr error
	listErr   error
}

func (r *fakeOrderRepo) GetOrdersByEngineer(ctx context.Context, engineerID uuid.UUID) ([]entities.Order, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var result []entities.Order
	for _, o := range r.orders {
		if o.EngineerID == engineerID {
			result = append(result, o)
		}
	}
	return result, nil
}

func (r *fakeOrderRepo) GetOrders(ctx context.Context, filter types.Filter) ([]entities.Order, uint64, error) {
	if r.listErr != nil {
		return nil, 0, r.listErr
	}
	return r.orders, uint64(len(r.orders)), nil
}

func (r *fakeOrderRepo) FindOrder(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	for i := range r.orders {
		if r.orders[i].ID == id {
			o := r.orders[i]
			return &o, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeOrderRepo) CreateOrder(ctx context.Context, order *entities.Order) (*entities.Order, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	created := *order
	created.ID = uuid.New()
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	r.orders = append(r.orders, created)
	return &created, nil
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].Status = status
			return nil
		}
	}
	return apperrors.ErrNotFound
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entities.User

	approveRows int64
	approveErr  error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entities.User), approveRows: 1}
}

func (r *fakeUserRepo) GetPendingUsers(ctx context.Context) ([]entities.User, error) {
	var result []entities.User
	for _, u := range r.users {
		if !u.IsApproved() {
			result = append(result, *u)
		}
	}
	return result, nil
}

func (r *fakeUserRepo) FindUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, user *entities.User) (*entities.User, error) {
	created := *user
	created.ID = uuid.New()
	created.CreatedAt = time.Now()
	r.users[created.ID] = &created
	copied := created
	return &copied, nil
}

func (r *fakeUserRepo) ApproveUser(ctx context.Context, id uuid.UUID, role string) (int64, error) {
	if r.approveErr != nil {
		return 0, r.approveErr
	}
	return r.approveRows, nil
}

// fakeCacheRepo — счётчики в памяти вместо Redis.
type fakeCacheRepo struct {
	values map[string]int64
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{values: make(map[string]int64)}
}

func (r *fakeCacheRepo) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return nil
}

func (r *fakeCacheRepo) Get(ctx context.Context, key string) (string, error) {
	v, ok := r.values[key]
	if !ok {
		return "", fmt.Errorf("ключ не найден: %s", key)
	}
	return fmt.Sprintf("%d", v), nil
}

func (r *fakeCacheRepo) Del(ctx context.Context, key ...string) error {
	for _, k := range key {
		delete(r.values, k)
	}
	return nil
}

func (r *fakeCacheRepo) Incr(ctx context.Context, key string) (int64, error) {
	r.values[key]++
	return r.values[key], nil
}

func (r *fakeCacheRepo) Expire(ctx context.Context, key string, expiration time.Duration) (bool, error) {
	return true, nil
}
