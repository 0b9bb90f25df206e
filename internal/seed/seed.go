package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	appModels "github.com/oguzk/learnhub/internal/app/models"
	appRepos "github.com/oguzk/learnhub/internal/app/repositories"
	"github.com/oguzk/learnhub/internal/pkg/apperrors"
	pkgAuth "github.com/oguzk/learnhub/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// CreateDefaultData creates a demo instructor and a starter course on an
// empty database. Safe to run on every startup; existing data is left alone.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	courseRepo := appRepos.NewCourseRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")

	exists, err := userRepo.UsernameExists(ctx, "demo_instructor")
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if demo instructor exists")
		return err
	}
	if exists {
		lgr.Info().Msg("Demo instructor already exists, skipping seed")
		return nil
	}

	hashedPassword, err := pkgAuth.HashPassword("LearnHub-Demo-1")
	if err != nil {
		return err
	}

	instructor := &appModels.User{
		Username:  "demo_instructor",
		Email:     "instructor@learnhub.app",
		Password:  hashedPassword,
		FirstName: "Demo",
		LastName:  "Instructor",
	}
	profile := &appModels.Profile{
		Role: appModels.RoleInstructor,
		Bio:  "Seeded demo instructor account",
	}

	if err := userRepo.CreateWithProfile(ctx, instructor, profile); err != nil {
		if errors.Is(err, apperrors.ErrUsernameAlreadyExists) || errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating demo instructor")
		return err
	}

	course := &appModels.Course{
		Title:        "Getting Started with LearnHub",
		Description:  "A short walkthrough of the platform for new students.",
		Category:     appModels.CategoryOther,
		Difficulty:   appModels.DifficultyBeginner,
		InstructorID: instructor.ID,
	}
	if err := courseRepo.Create(ctx, course); err != nil {
		lgr.Error().Err(err).Msg("Error creating starter course")
		return err
	}

	lgr.Info().Int64("instructorID", instructor.ID).Int64("courseID", course.ID).Msg("Default data created")
	return nil
}
