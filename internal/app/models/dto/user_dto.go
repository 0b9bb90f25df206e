package dto

import (
	"time"

	"github.com/oguzk/learnhub/internal/app/models"
)

// ProfileResponse represents the profile extension of a user
type ProfileResponse struct {
	Role         string  `json:"role" example:"student" enums:"student,instructor"`
	Bio          string  `json:"bio"`
	ProfileImage *string `json:"profileImage,omitempty"`
	DateOfBirth  *string `json:"dateOfBirth,omitempty" example:"1999-06-15"`
	PhoneNumber  string  `json:"phoneNumber"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// UserResponse represents basic user information with its profile
type UserResponse struct {
	ID        int64            `json:"id"`
	Username  string           `json:"username"`
	Email     string           `json:"email"`
	FirstName string           `json:"firstName"`
	LastName  string           `json:"lastName"`
	Profile   *ProfileResponse `json:"profile,omitempty"`
}

// UpdateProfileRequest represents partial profile update data. All fields
// are optional; the role may be changed without re-selection being forced.
type UpdateProfileRequest struct {
	FirstName   *string          `json:"firstName,omitempty"`
	LastName    *string          `json:"lastName,omitempty"`
	Email       *string          `json:"email,omitempty" binding:"omitempty,email"`
	Role        *models.RoleType `json:"role,omitempty" binding:"omitempty,roletype"`
	Bio         *string          `json:"bio,omitempty"`
	PhoneNumber *string          `json:"phoneNumber,omitempty"`
	// Date of birth in YYYY-MM-DD form; an empty string is treated as absent.
	DateOfBirth *string `json:"dateOfBirth,omitempty"`
}

// ChangePasswordRequest represents a password change request. The new
// password must be confirmed by repeating it.
type ChangePasswordRequest struct {
	OldPassword  string `json:"oldPassword" binding:"required"`
	NewPassword  string `json:"newPassword" binding:"required"`
	NewPassword2 string `json:"newPassword2" binding:"required"`
}

// FromUser converts a models.User (with profile) to a UserResponse
func FromUser(user *models.User) UserResponse {
	resp := UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
	if user.Profile != nil {
		resp.Profile = fromProfile(user.Profile)
	}
	return resp
}

func fromProfile(p *models.Profile) *ProfileResponse {
	out := &ProfileResponse{
		Role:         string(p.Role),
		Bio:          p.Bio,
		ProfileImage: p.ProfileImage,
		PhoneNumber:  p.PhoneNumber,
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    p.UpdatedAt.Format(time.RFC3339),
	}
	if p.DateOfBirth != nil {
		dob := p.DateOfBirth.Format("2006-01-02")
		out.DateOfBirth = &dob
	}
	return out
}
