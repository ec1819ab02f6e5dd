package services

import (
	"net/http"
	"testing"
	"time"

	"pedidos-system/internal/dto"
	"pedidos-system/internal/entities"
	"pedidos-system/pkg/config"
	"pedidos-system/pkg/constants"
	apperrors "pedidos-system/pkg/errors"
	"pedidos-system/pkg/service"
	"pedidos-system/pkg/utils"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthServiceForTest(userRepo *fakeUserRepo, cacheRepo *fakeCacheRepo) AuthServiceInterface {
	jwtSvc := service.NewJWTService("test-secret", time.Hour, time.Hour*24, zap.NewNop())
	cfg := &config.AuthConfig{MaxLoginAttempts: 3, LockoutDuration: time.Minute * 15}
	return NewAuthService(userRepo, cacheRepo, jwtSvc, cfg, zap.NewNop())
}

func registerApprovedUser(t *testing.T, repo *fakeUserRepo, email, password, role string) *entities.User {
	t.Helper()
	hashed, err := utils.HashPassword(password)
	require.NoError(t, err)
	u, err := repo.CreateUser(t.Context(), &entities.User{
		Name:     "Engenheiro",
		Email:    email,
		Password: hashed,
		Role:     null.StringFrom(role),
	})
	require.NoError(t, err)
	return u
}

func TestAuthService_Register(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthServiceForTest(repo, newFakeCacheRepo())

	created, err := svc.Register(t.Context(), dto.RegisterDTO{
		Name:     "Engenheiro Novo",
		Email:    "novo@pedidos.local",
		Password: "senha123",
	})
	require.NoError(t, err)

	stored, err := repo.FindUserByID(t.Context(), created.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsApproved(), "Новая запись без роли, вход закрыт до подтверждения")
	assert.NotEqual(t, "senha123", stored.Password, "Пароль хранится только хэшем")
}

func TestAuthService_Login(t *testing.T) {
	t.Run("успешный вход одобренного пользователя", func(t *testing.T) {
		repo := newFakeUserRepo()
		registerApprovedUser(t, repo, "eng@pedidos.local", "senha123", constants.RoleEngineer)
		svc := newAuthServiceForTest(repo, newFakeCacheRepo())

		resp, err := svc.Login(t.Context(), dto.LoginDTO{Email: "eng@pedidos.local", Password: "senha123"})
		require.NoError(t, err)

		assert.NotEmpty(t, resp.Tokens.AccessToken)
		assert.NotEmpty(t, resp.Tokens.RefreshToken)
		require.NotNil(t, resp.User.Role)
		assert.Equal(t, constants.RoleEngineer, *resp.User.Role)
	})

	t.Run("неверный пароль", func(t *testing.T) {
		repo := newFakeUserRepo()
		registerApprovedUser(t, repo, "eng@pedidos.local", "senha123", constants.RoleEngineer)
		svc := newAuthServiceForTest(repo, newFakeCacheRepo())

		_, err := svc.Login(t.Context(), dto.LoginDTO{Email: "eng@pedidos.local", Password: "errada"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("неподтверждённая запись не входит даже с верным паролем", func(t *testing.T) {
		repo := newFakeUserRepo()
		hashed, err := utils.HashPassword("senha123")
		require.NoError(t, err)
		_, err = repo.CreateUser(t.Context(), &entities.User{
			Email:    "pendente@pedidos.local",
			Password: hashed,
		})
		require.NoError(t, err)
		svc := newAuthServiceForTest(repo, newFakeCacheRepo())

		_, err = svc.Login(t.Context(), dto.LoginDTO{Email: "pendente@pedidos.local", Password: "senha123"})
		assert.ErrorIs(t, err, apperrors.ErrNotApproved)
	})

	t.Run("блокировка после лимита неудачных попыток", func(t *testing.T) {
		repo := newFakeUserRepo()
		registerApprovedUser(t, repo, "eng@pedidos.local", "senha123", constants.RoleEngineer)
		cache := newFakeCacheRepo()
		svc := newAuthServiceForTest(repo, cache)

		for i := 0; i < 3; i++ {
			_, err := svc.Login(t.Context(), dto.LoginDTO{Email: "eng@pedidos.local", Password: "errada"})
			assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		}

		// Четвёртая попытка отклоняется до проверки пароля, даже верного.
		_, err := svc.Login(t.Context(), dto.LoginDTO{Email: "eng@pedidos.local", Password: "senha123"})
		var httpErr *apperrors.HttpError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusTooManyRequests, httpErr.Code)
	})

	t.Run("успешный вход сбрасывает счётчик попыток", func(t *testing.T) {
		repo := newFakeUserRepo()
		registerApprovedUser(t, repo, "eng@pedidos.local", "senha123", constants.RoleEngineer)
		cache := newFakeCacheRepo()
		svc := newAuthServiceForTest(repo, cache)

		_, err := svc.Login(t.Context(), dto.LoginDTO{Email: "eng@pedidos.local", Password: "errada"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

		_, err = svc.Login(t.Context(), dto.LoginDTO{Email: "eng@pedidos.local", Password: "senha123"})
		require.NoError(t, err)

		assert.Empty(t, cache.values, "Счётчик удалён после успешного входа")
	})
}

func TestAuthService_Refresh(t *testing.T) {
	repo := newFakeUserRepo()
	user := registerApprovedUser(t, repo, "eng@pedidos.local", "senha123", constants.RoleEngineer)
	svc := newAuthServiceForTest(repo, newFakeCacheRepo())

	resp, err := svc.Login(t.Context(), dto.LoginDTO{Email: "eng@pedidos.local", Password: "senha123"})
	require.NoError(t, err)

	t.Run("refresh-токен обменивается на новую пару", func(t *testing.T) {
		tokens, err := svc.Refresh(t.Context(), resp.Tokens.RefreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEmpty(t, tokens.RefreshToken)
	})

	t.Run("access-токен для обновления не годится", func(t *testing.T) {
		_, err := svc.Refresh(t.Context(), resp.Tokens.AccessToken)
		assert.ErrorIs(t, err, apperrors.ErrTokenIsNotRefresh)
	})

	t.Run("мусорная строка отклоняется", func(t *testing.T) {
		_, err := svc.Refresh(t.Context(), "not-a-token")
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("удалённый пользователь не обновляет токены", func(t *testing.T) {
		delete(repo.users, user.ID)
		_, err := svc.Refresh(t.Context(), resp.Tokens.RefreshToken)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}
