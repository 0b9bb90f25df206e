package services

import (
	"context"

	"github.com/oguzk/learnhub/internal/app/models"
	"github.com/oguzk/learnhub/internal/app/models/dto"
	"github.com/oguzk/learnhub/internal/app/repositories"
	"github.com/oguzk/learnhub/internal/pkg/apperrors"
	"github.com/oguzk/learnhub/internal/pkg/helpers"
	"github.com/rs/zerolog"
)

// EnrollmentService handles enrollment and progress tracking. Every
// operation is scoped to the acting user; there is no path to another
// user's enrollments.
type EnrollmentService struct {
	enrollmentRepo repositories.IEnrollmentRepository
	courseRepo     repositories.ICourseRepository
	logger         zerolog.Logger
}

// NewEnrollmentService creates a new EnrollmentService
func NewEnrollmentService(
	enrollmentRepo repositories.IEnrollmentRepository,
	courseRepo repositories.ICourseRepository,
	logger zerolog.Logger,
) *EnrollmentService {
	return &EnrollmentService{
		enrollmentRepo: enrollmentRepo,
		courseRepo:     courseRepo,
		logger:         logger,
	}
}

// Enroll enrolls the user in a course. A duplicate (user, course) pair is
// rejected by the unique constraint, so concurrent enroll attempts cannot
// both succeed.
func (s *EnrollmentService) Enroll(ctx context.Context, userID, courseID int64) (*dto.EnrollmentResponse, error) {
	if _, err := s.courseRepo.GetInstructorID(ctx, courseID); err != nil {
		return nil, err
	}

	// Advisory pre-check; the unique constraint has the final word.
	exists, err := s.enrollmentRepo.Exists(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrAlreadyEnrolled
	}

	enrollment := &models.Enrollment{
		UserID:   userID,
		CourseID: courseID,
		Progress: 0,
	}
	if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", userID).Int64("courseID", courseID).Msg("User enrolled in course")

	return s.GetEnrollment(ctx, enrollment.ID, userID)
}

// ListEnrollments returns the user's own enrollments
func (s *EnrollmentService) ListEnrollments(ctx context.Context, userID int64, page, pageSize int) (*dto.EnrollmentListResponse, error) {
	enrollments, totalItems, err := s.enrollmentRepo.ListByUser(ctx, userID, page, pageSize)
	if err != nil {
		return nil, err
	}

	resp := &dto.EnrollmentListResponse{
		Enrollments:    make([]dto.EnrollmentResponse, 0, len(enrollments)),
		PaginationInfo: helpers.NewPaginationInfo(totalItems, page, pageSize),
	}
	for _, enrollment := range enrollments {
		resp.Enrollments = append(resp.Enrollments, dto.FromEnrollment(enrollment))
	}
	return resp, nil
}

// GetEnrollment returns one of the user's enrollments
func (s *EnrollmentService) GetEnrollment(ctx context.Context, id, userID int64) (*dto.EnrollmentResponse, error) {
	enrollment, err := s.enrollmentRepo.GetByIDForUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	resp := dto.FromEnrollment(enrollment)
	return &resp, nil
}

// UpdateProgress sets the progress of one of the user's enrollments. The
// value is clamped into [0,100]; reaching 100 marks the enrollment
// completed, and completion is never undone by a later lower value.
func (s *EnrollmentService) UpdateProgress(ctx context.Context, id, userID int64, progress int) (*dto.EnrollmentResponse, error) {
	enrollment, err := s.enrollmentRepo.GetByIDForUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	enrollment.ApplyProgress(progress)

	if err := s.enrollmentRepo.UpdateProgress(ctx, id, userID, enrollment.Progress, enrollment.Completed); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("enrollmentID", id).Int("progress", enrollment.Progress).
		Bool("completed", enrollment.Completed).Msg("Enrollment progress updated")

	resp := dto.FromEnrollment(enrollment)
	return &resp, nil
}

// DeleteEnrollment removes one of the user's enrollments
func (s *EnrollmentService) DeleteEnrollment(ctx context.Context, id, userID int64) error {
	if err := s.enrollmentRepo.Delete(ctx, id, userID); err != nil {
		return err
	}
	s.logger.Info().Int64("enrollmentID", id).Int64("userID", userID).Msg("Enrollment deleted")
	return nil
}
