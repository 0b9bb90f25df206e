package services

import (
	"context"

	"github.com/rs/zerolog"

	appauth "github.com/oguzk/learnhub/internal/app/auth"
	"github.com/oguzk/learnhub/internal/app/models"
	"github.com/oguzk/learnhub/internal/app/models/dto"
	"github.com/oguzk/learnhub/internal/app/repositories"
	"github.com/oguzk/learnhub/internal/pkg/apperrors"
)

// LessonService handles lesson operations within the course catalog
type LessonService struct {
	lessonRepo   repositories.ILessonRepository
	courseRepo   repositories.ICourseRepository
	authzService *appauth.AuthorizationService
	logger       zerolog.Logger
}

// NewLessonService creates a new LessonService
func NewLessonService(
	lessonRepo repositories.ILessonRepository,
	courseRepo repositories.ICourseRepository,
	authzService *appauth.AuthorizationService,
	logger zerolog.Logger,
) *LessonService {
	return &LessonService{
		lessonRepo:   lessonRepo,
		courseRepo:   courseRepo,
		authzService: authzService,
		logger:       logger,
	}
}

// ListLessons returns a course's lessons ordered by their position
func (s *LessonService) ListLessons(ctx context.Context, courseID int64) ([]dto.LessonResponse, error) {
	if _, err := s.courseRepo.GetInstructorID(ctx, courseID); err != nil {
		return nil, err
	}

	lessons, err := s.lessonRepo.GetByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.LessonResponse, 0, len(lessons))
	for i := range lessons {
		resp = append(resp, dto.FromLesson(&lessons[i]))
	}
	return resp, nil
}

// GetLesson returns a single lesson
func (s *LessonService) GetLesson(ctx context.Context, id int64) (*dto.LessonResponse, error) {
	lesson, err := s.lessonRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.FromLesson(lesson)
	return &resp, nil
}

// CreateLesson adds a lesson to a course. Creation requires the instructor
// role; the (course, order) uniqueness is checked up front and backed by the
// database constraint.
func (s *LessonService) CreateLesson(ctx context.Context, courseID, actorID int64, role models.RoleType, req *dto.CreateLessonRequest) (*dto.LessonResponse, error) {
	if err := appauth.ValidateInstructorRole(role); err != nil {
		return nil, apperrors.NewForbiddenError("only instructors can create lessons")
	}

	if _, err := s.courseRepo.GetInstructorID(ctx, courseID); err != nil {
		return nil, err
	}

	taken, err := s.lessonRepo.OrderExists(ctx, courseID, req.Order, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.ErrDuplicateOrder
	}

	lesson := &models.Lesson{
		CourseID:  courseID,
		Title:     req.Title,
		VideoURL:  req.VideoURL,
		Materials: req.Materials,
		Order:     req.Order,
	}
	if err := s.lessonRepo.Create(ctx, lesson); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("lessonID", lesson.ID).Int64("courseID", courseID).Int("order", lesson.Order).Msg("Lesson created")

	resp := dto.FromLesson(lesson)
	return &resp, nil
}

// UpdateLesson applies a partial update to a lesson owned by the actor's
// course
func (s *LessonService) UpdateLesson(ctx context.Context, lessonID, actorID int64, req *dto.UpdateLessonRequest) (*dto.LessonResponse, error) {
	if err := s.authzService.ValidateLessonOwnership(ctx, lessonID, actorID); err != nil {
		return nil, err
	}

	lesson, err := s.lessonRepo.GetByID(ctx, lessonID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		lesson.Title = *req.Title
	}
	if req.VideoURL != nil {
		lesson.VideoURL = req.VideoURL
	}
	if req.Materials != nil {
		lesson.Materials = req.Materials
	}
	if req.Order != nil && *req.Order != lesson.Order {
		if *req.Order < 1 {
			return nil, apperrors.NewValidationError("order", "order must be a positive integer")
		}
		taken, err := s.lessonRepo.OrderExists(ctx, lesson.CourseID, *req.Order, lessonID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.ErrDuplicateOrder
		}
		lesson.Order = *req.Order
	}

	if err := s.lessonRepo.Update(ctx, lesson); err != nil {
		return nil, err
	}

	resp := dto.FromLesson(lesson)
	return &resp, nil
}

// DeleteLesson removes a lesson owned by the actor's course
func (s *LessonService) DeleteLesson(ctx context.Context, lessonID, actorID int64) error {
	if err := s.authzService.ValidateLessonOwnership(ctx, lessonID, actorID); err != nil {
		return err
	}
	if err := s.lessonRepo.Delete(ctx, lessonID); err != nil {
		return err
	}
	s.logger.Info().Int64("lessonID", lessonID).Msg("Lesson deleted")
	return nil
}
