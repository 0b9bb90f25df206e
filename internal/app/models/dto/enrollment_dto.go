package dto

import (
	"time"

	"github.com/oguzk/learnhub/internal/app/models"
)

// ProgressUpdateRequest represents a progress update. Values outside [0,100]
// are accepted and clamped server side.
type ProgressUpdateRequest struct {
	Progress *int `json:"progress" binding:"required"`
}

// EnrollmentResponse represents enrollment information
type EnrollmentResponse struct {
	ID         int64           `json:"id"`
	User       *UserResponse   `json:"user,omitempty"`
	Course     *CourseResponse `json:"course,omitempty"`
	EnrolledAt time.Time       `json:"enrolledAt"`
	Progress   int             `json:"progress"`
	Completed  bool            `json:"completed"`
}

// EnrollmentListResponse represents a paginated list of enrollments
type EnrollmentListResponse struct {
	Enrollments []EnrollmentResponse `json:"enrollments"`
	PaginationInfo
}

// FromEnrollment converts a models.Enrollment to an EnrollmentResponse
func FromEnrollment(enrollment *models.Enrollment) EnrollmentResponse {
	resp := EnrollmentResponse{
		ID:         enrollment.ID,
		EnrolledAt: enrollment.EnrolledAt,
		Progress:   enrollment.Progress,
		Completed:  enrollment.Completed,
	}
	if enrollment.User != nil {
		user := FromUser(enrollment.User)
		resp.User = &user
	} else if enrollment.UserID != 0 {
		// The owner is always identified, even when only the key was loaded.
		resp.User = &UserResponse{ID: enrollment.UserID}
	}
	if enrollment.Course != nil {
		course := FromCourse(enrollment.Course)
		resp.Course = &course
	}
	return resp
}
