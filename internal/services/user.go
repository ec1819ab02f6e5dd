package services

import (
	"context"

	"pedidos-system/internal/dto"
	"pedidos-system/internal/entities"
	"pedidos-system/internal/events"
	"pedidos-system/internal/repositories"
	apperrors "pedidos-system/pkg/errors"
	"pedidos-system/pkg/eventbus"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserServiceInterface interface {
	GetPendingUsers(ctx context.Context) ([]dto.PendingUserDTO, error)
	ApproveUser(ctx context.Context, id uuid.UUID, payload dto.ApproveUserDTO) error
}

type UserService struct {
	userRepo repositories.UserRepositoryInterface
	bus      *eventbus.Bus
	logger   *zap.Logger
}

func NewUserService(userRepo repositories.UserRepositoryInterface, bus *eventbus.Bus, logger *zap.Logger) UserServiceInterface {
	return &UserService{userRepo: userRepo, bus: bus, logger: logger}
}

func toPendingUserDTOs(users []entities.User) []dto.PendingUserDTO {
	dtos := make([]dto.PendingUserDTO, len(users))
	for i, u := range users {
		dtos[i] = dto.PendingUserDTO{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			CreatedAt: u.CreatedAt,
		}
	}
	return dtos
}

// GetPendingUsers возвращает полный снимок учётных записей, ожидающих
// подтверждения.
func (s *UserService) GetPendingUsers(ctx context.Context) ([]dto.PendingUserDTO, error) {
	users, err := s.userRepo.GetPendingUsers(ctx)
	if err != nil {
		s.logger.Error("Не удалось загрузить ожидающих пользователей", zap.Error(err))
		return nil, err
	}
	return toPendingUserDTOs(users), nil
}

// ApproveUser переводит учётную запись из «ждёт подтверждения» в одну из
// терминальных ролей. Переход односторонний: повторное подтверждение и
// подтверждение уже одобренной записи отклоняются, состояние в БД
// при этом не меняется.
func (s *UserService) ApproveUser(ctx context.Context, id uuid.UUID, payload dto.ApproveUserDTO) error {
	user, err := s.userRepo.FindUserByID(ctx, id)
	if err != nil {
		return apperrors.ErrUserNotFound
	}
	if user.IsApproved() {
		return apperrors.ErrAlreadyApproved
	}

	rows, err := s.userRepo.ApproveUser(ctx, id, payload.Role)
	if err != nil {
		s.logger.Error("Не удалось подтвердить пользователя",
			zap.String("userId", id.String()), zap.Error(err))
		return err
	}
	// Ноль затронутых строк: роль успела появиться между проверкой и апдейтом.
	if rows == 0 {
		return apperrors.ErrAlreadyApproved
	}

	s.bus.Publish(ctx, events.UserApprovedEvent{UserID: id, Email: user.Email, Role: payload.Role})

	s.logger.Info("Учётная запись подтверждена",
		zap.String("userId", id.String()), zap.String("role", payload.Role))
	return nil
}
