package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return authServiceFixtures{
		service:      svc,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func newTestAdmin() *entity.User {
	return &entity.User{
		Email:        "admin@example.com",
		Name:         "Admin",
		PasswordHash: "$2a$10$hash",
		Role:         entity.RoleAdmin,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	admin := newTestAdmin()

	fx.userRepo.EXPECT().FindByEmail(ctx, admin.Email).Return(admin, nil)
	fx.hasher.EXPECT().Check("correct-password", admin.PasswordHash).Return(true)
	fx.tokenService.EXPECT().
		GenerateTokens(admin.Email, entity.RoleAdmin.String()).
		Return("access-token", "refresh-token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    admin.Email,
		Password: "correct-password",
	})

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	admin := newTestAdmin()

	fx.userRepo.EXPECT().FindByEmail(ctx, admin.Email).Return(admin, nil)
	fx.hasher.EXPECT().Check("wrong-password", admin.PasswordHash).Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    admin.Email,
		Password: "wrong-password",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmailIndistinguishable(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	require.Error(t, err)
	// Same error as a wrong password, so callers cannot probe for accounts.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_RefreshToken_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	admin := newTestAdmin()

	fx.tokenService.EXPECT().
		ValidateToken("valid-refresh").
		Return(&service.Claims{Email: admin.Email, Role: entity.RoleAdmin.String(), Type: "refresh"}, nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, admin.Email).Return(admin, nil)
	fx.tokenService.EXPECT().
		GenerateTokens(admin.Email, entity.RoleAdmin.String()).
		Return("new-access-token", "unused-refresh", nil)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "valid-refresh"})

	require.NoError(t, err)
	assert.Equal(t, "new-access-token", output.AccessToken)
}

func TestAuthService_RefreshToken_Invalid(t *testing.T) {
	fx := createTestAuthService(t)

	fx.tokenService.EXPECT().
		ValidateToken("garbage").
		Return(nil, errors.New("token is malformed"))

	_, err := fx.service.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: "garbage"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_RefreshToken_AccessTokenRejected(t *testing.T) {
	fx := createTestAuthService(t)

	fx.tokenService.EXPECT().
		ValidateToken("access-as-refresh").
		Return(&service.Claims{Email: "admin@example.com", Role: "admin", Type: "access"}, nil)

	_, err := fx.service.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: "access-as-refresh"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_RefreshToken_SubjectGone(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateToken("orphan-refresh").
		Return(&service.Claims{Email: "gone@example.com", Role: "admin", Type: "refresh"}, nil)
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "gone@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "orphan-refresh"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}
