package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oguzk/learnhub/internal/app/models"
	"github.com/oguzk/learnhub/internal/pkg/apperrors"
)

type fakeCourseStore struct {
	instructors map[int64]int64
}

func (f *fakeCourseStore) GetInstructorID(_ context.Context, courseID int64) (int64, error) {
	instructorID, ok := f.instructors[courseID]
	if !ok {
		return 0, apperrors.ErrCourseNotFound
	}
	return instructorID, nil
}

type fakeLessonStore struct {
	lessons map[int64]*models.Lesson
}

func (f *fakeLessonStore) GetByID(_ context.Context, id int64) (*models.Lesson, error) {
	lesson, ok := f.lessons[id]
	if !ok {
		return nil, apperrors.ErrLessonNotFound
	}
	return lesson, nil
}

func newTestAuthzService() *AuthorizationService {
	courses := &fakeCourseStore{instructors: map[int64]int64{
		10: 1, // course 10 owned by user 1
		20: 2, // course 20 owned by user 2
	}}
	lessons := &fakeLessonStore{lessons: map[int64]*models.Lesson{
		100: {ID: 100, CourseID: 10},
		200: {ID: 200, CourseID: 20},
	}}
	return NewAuthorizationService(courses, lessons)
}

func TestValidateInstructorRole(t *testing.T) {
	assert.NoError(t, ValidateInstructorRole(models.RoleInstructor))
	assert.ErrorIs(t, ValidateInstructorRole(models.RoleStudent), ErrNotInstructor)
	assert.ErrorIs(t, ValidateInstructorRole(models.RoleType("")), ErrNotInstructor)
}

func TestCanModifyCourse(t *testing.T) {
	svc := newTestAuthzService()
	ctx := context.Background()

	t.Run("OwnerCanModify", func(t *testing.T) {
		ok, err := svc.CanModifyCourse(ctx, 10, 1)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("NonOwnerCannotModify", func(t *testing.T) {
		ok, err := svc.CanModifyCourse(ctx, 10, 2)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("MissingCourse", func(t *testing.T) {
		_, err := svc.CanModifyCourse(ctx, 99, 1)
		assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	})
}

func TestValidateCourseOwnership(t *testing.T) {
	svc := newTestAuthzService()
	ctx := context.Background()

	assert.NoError(t, svc.ValidateCourseOwnership(ctx, 10, 1))
	assert.ErrorIs(t, svc.ValidateCourseOwnership(ctx, 10, 2), apperrors.ErrPermissionDenied)
	assert.ErrorIs(t, svc.ValidateCourseOwnership(ctx, 99, 1), apperrors.ErrCourseNotFound)
}

func TestCanModifyLesson(t *testing.T) {
	svc := newTestAuthzService()
	ctx := context.Background()

	t.Run("CourseOwnerCanModifyLesson", func(t *testing.T) {
		ok, err := svc.CanModifyLesson(ctx, 100, 1)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("OtherInstructorCannotModifyLesson", func(t *testing.T) {
		ok, err := svc.CanModifyLesson(ctx, 200, 1)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("MissingLesson", func(t *testing.T) {
		_, err := svc.CanModifyLesson(ctx, 999, 1)
		assert.ErrorIs(t, err, apperrors.ErrLessonNotFound)
	})
}

func TestValidateLessonOwnership(t *testing.T) {
	svc := newTestAuthzService()
	ctx := context.Background()

	assert.NoError(t, svc.ValidateLessonOwnership(ctx, 100, 1))
	assert.ErrorIs(t, svc.ValidateLessonOwnership(ctx, 100, 2), apperrors.ErrPermissionDenied)
	assert.ErrorIs(t, svc.ValidateLessonOwnership(ctx, 999, 1), apperrors.ErrLessonNotFound)
}
