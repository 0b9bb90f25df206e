package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oguzk/learnhub/internal/app/models"
	"github.com/oguzk/learnhub/internal/app/models/dto"
	"github.com/oguzk/learnhub/internal/pkg/apperrors"
	"github.com/oguzk/learnhub/internal/pkg/auth"
)

func newTestAuthService() (*AuthService, *fakeUserRepo, *fakeTokenRepo) {
	userRepo := newFakeUserRepo()
	tokenRepo := newFakeTokenRepo()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret-key",
		AccessTokenExp:  15 * time.Minute,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "test",
	})
	svc := NewAuthService(userRepo, tokenRepo, jwtService, zerolog.Nop())
	return svc, userRepo, tokenRepo
}

func registerRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Username:  "maya_k",
		Email:     "maya@example.com",
		Password:  "orbit-Veil-77",
		Password2: "orbit-Veil-77",
		FirstName: "Maya",
		LastName:  "Karlsen",
		Role:      models.RoleStudent,
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, userRepo, tokenRepo := newTestAuthService()

		resp, err := svc.Register(ctx, registerRequest())
		require.NoError(t, err)

		assert.Equal(t, "maya_k", resp.User.Username)
		require.NotNil(t, resp.User.Profile)
		assert.Equal(t, "student", resp.User.Profile.Role)
		assert.NotEmpty(t, resp.Token.AccessToken)
		assert.NotEmpty(t, resp.Token.RefreshToken)

		// The refresh token must be persisted for later rotation
		userID, _, _, err := tokenRepo.GetTokenByValue(ctx, resp.Token.RefreshToken)
		require.NoError(t, err)
		assert.Equal(t, resp.User.ID, userID)

		stored, err := userRepo.GetByID(ctx, resp.User.ID)
		require.NoError(t, err)
		assert.Equal(t, "maya@example.com", stored.Email)
	})

	t.Run("PasswordConfirmationMismatch", func(t *testing.T) {
		svc, userRepo, _ := newTestAuthService()

		req := registerRequest()
		req.Password2 = "something-Else-9"

		_, err := svc.Register(ctx, req)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		assert.Empty(t, userRepo.users)
	})

	t.Run("DuplicateUsername", func(t *testing.T) {
		svc, _, _ := newTestAuthService()

		_, err := svc.Register(ctx, registerRequest())
		require.NoError(t, err)

		req := registerRequest()
		req.Email = "other@example.com"
		_, err = svc.Register(ctx, req)
		assert.ErrorIs(t, err, apperrors.ErrUsernameAlreadyExists)
	})

	t.Run("DuplicateEmailDifferentCase", func(t *testing.T) {
		svc, _, _ := newTestAuthService()

		_, err := svc.Register(ctx, registerRequest())
		require.NoError(t, err)

		req := registerRequest()
		req.Username = "maya_second"
		req.Email = "Maya@Example.COM"
		_, err = svc.Register(ctx, req)
		assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
	})

	t.Run("MixedCaseEmailStoredLowercase", func(t *testing.T) {
		svc, userRepo, _ := newTestAuthService()

		req := registerRequest()
		req.Email = "Maya.K@Example.COM"
		resp, err := svc.Register(ctx, req)
		require.NoError(t, err)

		stored, err := userRepo.GetByID(ctx, resp.User.ID)
		require.NoError(t, err)
		assert.Equal(t, "maya.k@example.com", stored.Email)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestAuthService()

	_, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		resp, err := svc.Login(ctx, &dto.LoginRequest{Username: "maya_k", Password: "orbit-Veil-77"})
		require.NoError(t, err)
		assert.Equal(t, "maya_k", resp.User.Username)
		assert.NotEmpty(t, resp.Token.AccessToken)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, err := svc.Login(ctx, &dto.LoginRequest{Username: "maya_k", Password: "not-the-One-1"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		// An unknown username must not be distinguishable from a bad password
		_, err := svc.Login(ctx, &dto.LoginRequest{Username: "ghost", Password: "orbit-Veil-77"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestRefreshTokenRotation(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestAuthService()

	registered, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)
	oldRefresh := registered.Token.RefreshToken

	rotated, err := svc.RefreshToken(ctx, oldRefresh)
	require.NoError(t, err)
	assert.NotEqual(t, oldRefresh, rotated.RefreshToken)

	// The consumed refresh token is single use
	_, err = svc.RefreshToken(ctx, oldRefresh)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestAuthService()

	registered, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, registered.Token.RefreshToken))

	_, err = svc.RefreshToken(ctx, registered.Token.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)

	assert.ErrorIs(t, svc.Logout(ctx, "no-such-token"), apperrors.ErrTokenNotFound)
}
