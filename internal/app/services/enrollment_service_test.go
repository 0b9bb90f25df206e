package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oguzk/learnhub/internal/app/models"
	"github.com/oguzk/learnhub/internal/pkg/apperrors"
)

type enrollmentFixture struct {
	svc      *EnrollmentService
	userID   int64
	courseID int64
}

func newEnrollmentFixture(t *testing.T) *enrollmentFixture {
	t.Helper()
	userRepo := newFakeUserRepo()
	courseRepo := newFakeCourseRepo()
	enrollmentRepo := newFakeEnrollmentRepo(courseRepo, userRepo)

	userID := seedUser(t, userRepo, "maya_k", "maya@example.com", "orbit-Veil-77")
	instructorID := seedUser(t, userRepo, "inst_jo", "jo@example.com", "orbit-Veil-77")

	course := &models.Course{
		Title:        "Intro to Databases",
		Description:  "Relational foundations",
		Category:     models.CategoryProgramming,
		Difficulty:   models.DifficultyBeginner,
		InstructorID: instructorID,
	}
	require.NoError(t, courseRepo.Create(context.Background(), course))

	return &enrollmentFixture{
		svc:      NewEnrollmentService(enrollmentRepo, courseRepo, zerolog.Nop()),
		userID:   userID,
		courseID: course.ID,
	}
}

func TestEnroll(t *testing.T) {
	ctx := context.Background()

	t.Run("ResponseCarriesOwnerAndCourse", func(t *testing.T) {
		fx := newEnrollmentFixture(t)

		resp, err := fx.svc.Enroll(ctx, fx.userID, fx.courseID)
		require.NoError(t, err)

		assert.Zero(t, resp.Progress)
		assert.False(t, resp.Completed)

		require.NotNil(t, resp.User)
		assert.Equal(t, fx.userID, resp.User.ID)
		assert.Equal(t, "maya_k", resp.User.Username)

		require.NotNil(t, resp.Course)
		assert.Equal(t, fx.courseID, resp.Course.ID)
		assert.Equal(t, "Intro to Databases", resp.Course.Title)
	})

	t.Run("AlreadyEnrolled", func(t *testing.T) {
		fx := newEnrollmentFixture(t)

		_, err := fx.svc.Enroll(ctx, fx.userID, fx.courseID)
		require.NoError(t, err)

		_, err = fx.svc.Enroll(ctx, fx.userID, fx.courseID)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyEnrolled)
	})

	t.Run("UnknownCourse", func(t *testing.T) {
		fx := newEnrollmentFixture(t)

		_, err := fx.svc.Enroll(ctx, fx.userID, 999)
		assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	})
}

func TestGetEnrollment(t *testing.T) {
	ctx := context.Background()
	fx := newEnrollmentFixture(t)

	created, err := fx.svc.Enroll(ctx, fx.userID, fx.courseID)
	require.NoError(t, err)

	resp, err := fx.svc.GetEnrollment(ctx, created.ID, fx.userID)
	require.NoError(t, err)
	require.NotNil(t, resp.User)
	assert.Equal(t, fx.userID, resp.User.ID)

	// Another user's ID must not reach this enrollment
	_, err = fx.svc.GetEnrollment(ctx, created.ID, fx.userID+100)
	assert.ErrorIs(t, err, apperrors.ErrEnrollmentNotFound)
}

func TestListEnrollments(t *testing.T) {
	ctx := context.Background()
	fx := newEnrollmentFixture(t)

	resp, err := fx.svc.ListEnrollments(ctx, fx.userID, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, resp.Enrollments)

	_, err = fx.svc.Enroll(ctx, fx.userID, fx.courseID)
	require.NoError(t, err)

	resp, err = fx.svc.ListEnrollments(ctx, fx.userID, 1, 10)
	require.NoError(t, err)
	require.Len(t, resp.Enrollments, 1)
	require.NotNil(t, resp.Enrollments[0].User)
	assert.Equal(t, fx.userID, resp.Enrollments[0].User.ID)
	assert.Equal(t, int64(1), resp.TotalItems)
}

func TestUpdateProgressService(t *testing.T) {
	ctx := context.Background()
	fx := newEnrollmentFixture(t)

	created, err := fx.svc.Enroll(ctx, fx.userID, fx.courseID)
	require.NoError(t, err)

	t.Run("ClampsAboveHundred", func(t *testing.T) {
		resp, err := fx.svc.UpdateProgress(ctx, created.ID, fx.userID, 150)
		require.NoError(t, err)
		assert.Equal(t, 100, resp.Progress)
		assert.True(t, resp.Completed)
	})

	t.Run("CompletionIsNotUndone", func(t *testing.T) {
		resp, err := fx.svc.UpdateProgress(ctx, created.ID, fx.userID, 30)
		require.NoError(t, err)
		assert.Equal(t, 30, resp.Progress)
		assert.True(t, resp.Completed)
	})

	t.Run("NotOwner", func(t *testing.T) {
		_, err := fx.svc.UpdateProgress(ctx, created.ID, fx.userID+100, 50)
		assert.ErrorIs(t, err, apperrors.ErrEnrollmentNotFound)
	})
}

func TestDeleteEnrollment(t *testing.T) {
	ctx := context.Background()
	fx := newEnrollmentFixture(t)

	created, err := fx.svc.Enroll(ctx, fx.userID, fx.courseID)
	require.NoError(t, err)

	assert.ErrorIs(t, fx.svc.DeleteEnrollment(ctx, created.ID, fx.userID+100), apperrors.ErrEnrollmentNotFound)
	require.NoError(t, fx.svc.DeleteEnrollment(ctx, created.ID, fx.userID))

	_, err = fx.svc.GetEnrollment(ctx, created.ID, fx.userID)
	assert.ErrorIs(t, err, apperrors.ErrEnrollmentNotFound)
}
