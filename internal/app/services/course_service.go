package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	appauth "github.com/oguzk/learnhub/internal/app/auth"
	"github.com/oguzk/learnhub/internal/app/models"
	"github.com/oguzk/learnhub/internal/app/models/dto"
	"github.com/oguzk/learnhub/internal/app/repositories"
	"github.com/oguzk/learnhub/internal/pkg/apperrors"
	"github.com/oguzk/learnhub/internal/pkg/helpers"
)

// CourseService handles course catalog operations
type CourseService struct {
	courseRepo   repositories.ICourseRepository
	lessonRepo   repositories.ILessonRepository
	authzService *appauth.AuthorizationService
	logger       zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(
	courseRepo repositories.ICourseRepository,
	lessonRepo repositories.ILessonRepository,
	authzService *appauth.AuthorizationService,
	logger zerolog.Logger,
) *CourseService {
	return &CourseService{
		courseRepo:   courseRepo,
		lessonRepo:   lessonRepo,
		authzService: authzService,
		logger:       logger,
	}
}

// ListCourses returns a filtered, paginated course list
func (s *CourseService) ListCourses(ctx context.Context, filter *dto.CourseFilterRequest) (*dto.CourseListResponse, error) {
	if filter.Category != "" && !models.CourseCategory(filter.Category).Valid() {
		return nil, apperrors.NewValidationError("category", "unknown category")
	}
	if filter.Difficulty != "" && !models.CourseDifficulty(filter.Difficulty).Valid() {
		return nil, apperrors.NewValidationError("difficulty", "unknown difficulty")
	}

	courses, totalItems, err := s.courseRepo.GetAll(ctx, repositories.CourseFilter{
		Category:     filter.Category,
		Difficulty:   filter.Difficulty,
		InstructorID: filter.InstructorID,
		Search:       filter.Search,
		Ordering:     filter.Ordering,
		Page:         filter.Page,
		PageSize:     filter.PageSize,
	})
	if err != nil {
		return nil, err
	}

	resp := &dto.CourseListResponse{
		Courses:        make([]dto.CourseResponse, 0, len(courses)),
		PaginationInfo: helpers.NewPaginationInfo(totalItems, filter.Page, filter.PageSize),
	}
	for _, course := range courses {
		resp.Courses = append(resp.Courses, dto.FromCourse(course))
	}
	return resp, nil
}

// GetCourse returns a single course with its instructor and ordered lessons
func (s *CourseService) GetCourse(ctx context.Context, id int64) (*dto.CourseResponse, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	lessons, err := s.lessonRepo.GetByCourse(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load course lessons: %w", err)
	}
	course.Lessons = lessons

	resp := dto.FromCourse(course)
	return &resp, nil
}

// CreateCourse creates a course owned by the acting instructor. Only the
// instructor role may create courses.
func (s *CourseService) CreateCourse(ctx context.Context, actorID int64, role models.RoleType, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	if err := appauth.ValidateInstructorRole(role); err != nil {
		return nil, apperrors.NewForbiddenError("only instructors can create courses")
	}
	if !req.Category.Valid() {
		return nil, apperrors.NewValidationError("category", "unknown category")
	}
	if !req.Difficulty.Valid() {
		return nil, apperrors.NewValidationError("difficulty", "unknown difficulty")
	}

	course := &models.Course{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Difficulty:   req.Difficulty,
		InstructorID: actorID,
		Thumbnail:    req.Thumbnail,
	}
	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("courseID", course.ID).Int64("instructorID", actorID).Msg("Course created")

	// Re-read for the instructor embed and derived counts
	return s.GetCourse(ctx, course.ID)
}

// UpdateCourse applies a partial update to a course owned by the actor
func (s *CourseService) UpdateCourse(ctx context.Context, courseID, actorID int64, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error) {
	if err := s.authzService.ValidateCourseOwnership(ctx, courseID, actorID); err != nil {
		return nil, err
	}

	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		course.Title = *req.Title
	}
	if req.Description != nil {
		course.Description = *req.Description
	}
	if req.Category != nil {
		if !req.Category.Valid() {
			return nil, apperrors.NewValidationError("category", "unknown category")
		}
		course.Category = *req.Category
	}
	if req.Difficulty != nil {
		if !req.Difficulty.Valid() {
			return nil, apperrors.NewValidationError("difficulty", "unknown difficulty")
		}
		course.Difficulty = *req.Difficulty
	}
	if req.Thumbnail != nil {
		course.Thumbnail = req.Thumbnail
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}

	return s.GetCourse(ctx, courseID)
}

// DeleteCourse removes a course owned by the actor. Lessons and enrollments
// cascade at the database level.
func (s *CourseService) DeleteCourse(ctx context.Context, courseID, actorID int64) error {
	if err := s.authzService.ValidateCourseOwnership(ctx, courseID, actorID); err != nil {
		return err
	}
	if err := s.courseRepo.Delete(ctx, courseID); err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return apperrors.ErrCourseNotFound
		}
		return err
	}
	s.logger.Info().Int64("courseID", courseID).Int64("instructorID", actorID).Msg("Course deleted")
	return nil
}
