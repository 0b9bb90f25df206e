package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/oguzk/learnhub/internal/app/models"
	"github.com/oguzk/learnhub/internal/pkg/apperrors"
	"github.com/oguzk/learnhub/internal/pkg/logger"
)

// Common errors specific to authorization that aren't in the central apperrors
var (
	ErrNotInstructor = errors.New("only instructors can perform this action")
)

// CourseOwnershipStore resolves the instructor that owns a course
type CourseOwnershipStore interface {
	GetInstructorID(ctx context.Context, courseID int64) (int64, error)
}

// LessonStore resolves a lesson so its parent course can be checked
type LessonStore interface {
	GetByID(ctx context.Context, id int64) (*models.Lesson, error)
}

// AuthorizationService handles authorization decisions. Role gates work on
// the role carried in the access token; ownership gates resolve the owning
// instructor from the database.
type AuthorizationService struct {
	courseStore CourseOwnershipStore
	lessonStore LessonStore
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(courseStore CourseOwnershipStore, lessonStore LessonStore) *AuthorizationService {
	return &AuthorizationService{
		courseStore: courseStore,
		lessonStore: lessonStore,
	}
}

// IsInstructorRole checks if the role grants instructor capabilities
func IsInstructorRole(role models.RoleType) bool {
	return role == models.RoleInstructor
}

// ValidateInstructorRole validates that the role may create courses and
// lessons or returns an error
func ValidateInstructorRole(role models.RoleType) error {
	if !IsInstructorRole(role) {
		return ErrNotInstructor
	}
	return nil
}

// CanModifyCourse checks if the user is the instructor that owns the course
func (s *AuthorizationService) CanModifyCourse(ctx context.Context, courseID, userID int64) (bool, error) {
	instructorID, err := s.courseStore.GetInstructorID(ctx, courseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return false, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Int64("courseID", courseID).Msg("Error fetching course instructor ID")
		return false, fmt.Errorf("failed to check course ownership: %w", err)
	}
	return instructorID == userID, nil
}

// ValidateCourseOwnership validates that the user owns the course or returns
// an error
func (s *AuthorizationService) ValidateCourseOwnership(ctx context.Context, courseID, userID int64) error {
	canModify, err := s.CanModifyCourse(ctx, courseID, userID)
	if err != nil {
		return err
	}
	if !canModify {
		return apperrors.ErrPermissionDenied
	}
	return nil
}

// CanModifyLesson checks if the user owns the course the lesson belongs to
func (s *AuthorizationService) CanModifyLesson(ctx context.Context, lessonID, userID int64) (bool, error) {
	lesson, err := s.lessonStore.GetByID(ctx, lessonID)
	if err != nil {
		if errors.Is(err, apperrors.ErrLessonNotFound) {
			return false, apperrors.ErrLessonNotFound
		}
		logger.Error().Err(err).Int64("lessonID", lessonID).Msg("Error fetching lesson for ownership check")
		return false, fmt.Errorf("failed to check lesson ownership: %w", err)
	}
	return s.CanModifyCourse(ctx, lesson.CourseID, userID)
}

// ValidateLessonOwnership validates that the user owns the lesson's parent
// course or returns an error
func (s *AuthorizationService) ValidateLessonOwnership(ctx context.Context, lessonID, userID int64) error {
	canModify, err := s.CanModifyLesson(ctx, lessonID, userID)
	if err != nil {
		return err
	}
	if !canModify {
		return apperrors.ErrPermissionDenied
	}
	return nil
}
