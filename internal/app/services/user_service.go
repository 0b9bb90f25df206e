package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/oguzk/learnhub/internal/app/models/dto"
	"github.com/oguzk/learnhub/internal/app/repositories"
	"github.com/oguzk/learnhub/internal/pkg/apperrors"
	"github.com/oguzk/learnhub/internal/pkg/auth"
	"github.com/oguzk/learnhub/internal/pkg/validation"
)

// UserService handles profile operations for the authenticated user
type UserService struct {
	userRepo  repositories.IUserRepository
	tokenRepo repositories.ITokenRepository
	logger    zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(
	userRepo repositories.IUserRepository,
	tokenRepo repositories.ITokenRepository,
	logger zerolog.Logger,
) *UserService {
	return &UserService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		logger:    logger,
	}
}

// GetProfile returns the user's identity and profile view
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := dto.FromUser(user)
	return &resp, nil
}

// UpdateProfile applies a partial update to the user's identity and profile
// fields. Only fields present in the request change; an empty date of birth
// string is treated as absent.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile := user.Profile

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Email != nil {
		// Emails are stored lowercased, so compare and check the same way.
		email := strings.ToLower(*req.Email)
		if email != user.Email {
			if err := validation.ValidateEmail(email); err != nil {
				return nil, apperrors.NewValidationError("email", err.Error())
			}
			exists, err := s.userRepo.EmailExists(ctx, email)
			if err != nil {
				return nil, fmt.Errorf("error checking if email exists: %w", err)
			}
			if exists {
				return nil, apperrors.ErrEmailAlreadyExists
			}
			user.Email = email
		}
	}
	if req.Role != nil {
		if !req.Role.Valid() {
			return nil, apperrors.NewValidationError("role", "role must be either student or instructor")
		}
		profile.Role = *req.Role
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.PhoneNumber != nil {
		profile.PhoneNumber = *req.PhoneNumber
	}
	if req.DateOfBirth != nil && *req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return nil, apperrors.NewValidationError("dateOfBirth", "date of birth must be in YYYY-MM-DD format")
		}
		profile.DateOfBirth = &dob
	}

	if err := s.userRepo.UpdateUserAndProfile(ctx, user, profile); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", userID).Msg("Profile updated")

	resp := dto.FromUser(user)
	return &resp, nil
}

// ChangePassword replaces the user's password after verifying the current
// one, then revokes every refresh token so existing sessions must log in
// again.
func (s *UserService) ChangePassword(ctx context.Context, userID int64, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(user.Password, req.OldPassword) {
		return apperrors.ErrInvalidCredentials
	}

	if req.NewPassword != req.NewPassword2 {
		return apperrors.NewValidationError("newPassword2", "password fields didn't match")
	}
	if err := validation.ValidatePassword(req.NewPassword, user.Username, user.Email, user.FirstName, user.LastName); err != nil {
		return apperrors.NewValidationError("newPassword", err.Error())
	}

	hashedPassword, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, hashedPassword); err != nil {
		return err
	}

	if err := s.tokenRepo.RevokeAllUserTokens(ctx, userID); err != nil {
		s.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to revoke tokens after password change")
		return fmt.Errorf("failed to revoke tokens: %w", err)
	}

	s.logger.Info().Int64("userID", userID).Msg("Password changed, all refresh tokens revoked")
	return nil
}

// DeleteAccount removes the user. The profile, owned courses and
// enrollments cascade at the database level.
func (s *UserService) DeleteAccount(ctx context.Context, userID int64) error {
	if err := s.tokenRepo.RevokeAllUserTokens(ctx, userID); err != nil {
		return fmt.Errorf("failed to revoke tokens: %w", err)
	}
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}
	s.logger.Info().Int64("userID", userID).Msg("Account deleted")
	return nil
}
