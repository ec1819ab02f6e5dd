package services

import (
	"context"
	"fmt"
	"net/http"

	"pedidos-system/internal/dto"
	"pedidos-system/internal/entities"
	"pedidos-system/internal/repositories"
	"pedidos-system/pkg/config"
	apperrors "pedidos-system/pkg/errors"
	"pedidos-system/pkg/service"
	"pedidos-system/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthServiceInterface interface {
	Register(ctx context.Context, payload dto.RegisterDTO) (*dto.PendingUserDTO, error)
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenPairDTO, error)
}

type AuthService struct {
	userRepo  repositories.UserRepositoryInterface
	cacheRepo repositories.CacheRepositoryInterface
	jwtSvc    service.JWTService
	cfg       *config.AuthConfig
	logger    *zap.Logger
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	jwtSvc service.JWTService,
	cfg *config.AuthConfig,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepo:  userRepo,
		cacheRepo: cacheRepo,
		jwtSvc:    jwtSvc,
		cfg:       cfg,
		logger:    logger,
	}
}

func toUserDTO(u *entities.User) dto.UserDTO {
	return dto.UserDTO{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role.Ptr(),
		CreatedAt: u.CreatedAt,
	}
}

// Register создаёт учётную запись без роли: до подтверждения менеджером
// вход в систему невозможен.
func (s *AuthService) Register(ctx context.Context, payload dto.RegisterDTO) (*dto.PendingUserDTO, error) {
	hashed, err := utils.HashPassword(payload.Password)
	if err != nil {
		return nil, apperrors.NewInternalError("Erro ao processar a senha.")
	}

	user := &entities.User{
		Name:     payload.Name,
		Email:    payload.Email,
		Password: hashed,
	}

	created, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Зарегистрирована новая учётная запись, ждёт подтверждения",
		zap.String("userId", created.ID.String()))

	return &dto.PendingUserDTO{
		ID:        created.ID,
		Name:      created.Name,
		Email:     created.Email,
		CreatedAt: created.CreatedAt,
	}, nil
}

func (s *AuthService) lockoutKey(email string) string {
	return fmt.Sprintf("login_attempts:%s", email)
}

func (s *AuthService) registerFailedAttempt(ctx context.Context, email string) {
	attempts, err := s.cacheRepo.Incr(ctx, s.lockoutKey(email))
	if err != nil {
		s.logger.Warn("Не удалось увеличить счётчик неудачных входов", zap.Error(err))
		return
	}
	if attempts == 1 {
		if _, err := s.cacheRepo.Expire(ctx, s.lockoutKey(email), s.cfg.LockoutDuration); err != nil {
			s.logger.Warn("Не удалось выставить TTL счётчика входов", zap.Error(err))
		}
	}
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error) {
	// Блокировка перебора: счётчик неудачных попыток живёт в Redis
	// и истекает сам по LockoutDuration.
	attemptsStr, _ := s.cacheRepo.Get(ctx, s.lockoutKey(payload.Email))
	var attempts int
	fmt.Sscanf(attemptsStr, "%d", &attempts)
	if attempts >= s.cfg.MaxLoginAttempts {
		s.logger.Warn("Слишком много неудачных попыток входа", zap.String("email", payload.Email))
		return nil, apperrors.NewHttpError(
			http.StatusTooManyRequests,
			fmt.Sprintf("Muitas tentativas. Tente novamente em %.0f minutos.", s.cfg.LockoutDuration.Minutes()),
			nil,
			nil,
		)
	}

	user, err := s.userRepo.FindByEmail(ctx, payload.Email)
	if err != nil {
		s.registerFailedAttempt(ctx, payload.Email)
		return nil, apperrors.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(payload.Password, user.Password) {
		s.registerFailedAttempt(ctx, payload.Email)
		return nil, apperrors.ErrInvalidCredentials
	}

	// Учётные данные верны, но роль ещё не назначена — вход закрыт.
	if !user.IsApproved() {
		return nil, apperrors.ErrNotApproved
	}

	if err := s.cacheRepo.Del(ctx, s.lockoutKey(payload.Email)); err != nil {
		s.logger.Warn("Не удалось сбросить счётчик входов", zap.Error(err))
	}

	accessToken, refreshToken, err := s.jwtSvc.GenerateTokens(user.ID, user.Role.String)
	if err != nil {
		s.logger.Error("Не удалось выпустить токены", zap.Error(err))
		return nil, apperrors.NewInternalError("Erro ao emitir tokens.")
	}

	return &dto.LoginResponseDTO{
		User:   toUserDTO(user),
		Tokens: dto.TokenPairDTO{AccessToken: accessToken, RefreshToken: refreshToken},
	}, nil
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenPairDTO, error) {
	claims, err := s.jwtSvc.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.ErrTokenIsNotRefresh
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	// Роль перечитывается из БД: токен мог быть выпущен до её изменения.
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	if !user.IsApproved() {
		return nil, apperrors.ErrNotApproved
	}

	accessToken, newRefreshToken, err := s.jwtSvc.GenerateTokens(user.ID, user.Role.String)
	if err != nil {
		return nil, apperrors.NewInternalError("Erro ao emitir tokens.")
	}

	return &dto.TokenPairDTO{AccessToken: accessToken, RefreshToken: newRefreshToken}, nil
}
