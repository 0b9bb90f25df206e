package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	Username  string    `json:"username" db:"username" example:"jdoe"`                    // Unique username
	Email     string    `json:"email" db:"email" example:"jdoe@example.com"`              // User's email address
	Password  string    `json:"-" db:"password"`                                          // User's hashed password (excluded from JSON)
	FirstName string    `json:"firstName" db:"first_name" example:"John"`                 // User's first name
	LastName  string    `json:"lastName" db:"last_name" example:"Doe"`                    // User's last name
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"` // Timestamp when the user was last updated
	Profile   *Profile  `json:"profile,omitempty"`                                        // Relation, no db tag
}

// Profile defines the profile model based on the 'profiles' table.
// Every user has exactly one profile, created in the same transaction
// as the user row.
type Profile struct {
	ID           int64      `json:"id" db:"id"`
	UserID       int64      `json:"userId" db:"user_id"`
	Role         RoleType   `json:"role" db:"role" example:"student"`
	Bio          string     `json:"bio" db:"bio"`
	ProfileImage *string    `json:"profileImage,omitempty" db:"profile_image"` // Pointer for potential NULL
	DateOfBirth  *time.Time `json:"dateOfBirth,omitempty" db:"date_of_birth"`  // Pointer for potential NULL
	PhoneNumber  string     `json:"phoneNumber" db:"phone_number"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time  `json:"updatedAt" db:"updated_at"`
}
