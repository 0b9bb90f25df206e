package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oguzk/learnhub/internal/app/models"
	"github.com/oguzk/learnhub/internal/pkg/apperrors"
	"github.com/oguzk/learnhub/internal/pkg/dberrors"
	"github.com/oguzk/learnhub/internal/pkg/logger"
)

// IEnrollmentRepository defines the interface for enrollment-related database operations
type IEnrollmentRepository interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	Exists(ctx context.Context, userID, courseID int64) (bool, error)
	GetByIDForUser(ctx context.Context, id, userID int64) (*models.Enrollment, error)
	ListByUser(ctx context.Context, userID int64, page, pageSize int) ([]*models.Enrollment, int64, error)
	UpdateProgress(ctx context.Context, id, userID int64, progress int, completed bool) error
	Delete(ctx context.Context, id, userID int64) error
}

// EnrollmentRepository handles enrollment database operations. All read and
// write queries are pre-filtered by the owning user's ID: an actor can never
// reach another user's enrollments through this repository.
type EnrollmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *EnrollmentRepository) baseSelect() squirrel.SelectBuilder {
	return r.sb.Select(
		"e.id", "e.user_id", "e.course_id", "e.enrolled_at", "e.progress", "e.completed",
		"c.id", "c.title", "c.description", "c.category", "c.difficulty",
		"c.instructor_id", "c.thumbnail", "c.created_at", "c.updated_at",
		"(SELECT COUNT(*) FROM lessons l WHERE l.course_id = c.id) AS total_lessons",
		"(SELECT COUNT(*) FROM enrollments e2 WHERE e2.course_id = c.id) AS total_enrollments",
		"u.id", "u.username", "u.email", "u.first_name", "u.last_name",
	).
		From("enrollments e").
		Join("courses c ON e.course_id = c.id").
		Join("users u ON e.user_id = u.id")
}

func scanEnrollment(row pgx.Row) (*models.Enrollment, error) {
	enrollment := &models.Enrollment{}
	course := &models.Course{}
	user := &models.User{}
	err := row.Scan(
		&enrollment.ID, &enrollment.UserID, &enrollment.CourseID,
		&enrollment.EnrolledAt, &enrollment.Progress, &enrollment.Completed,
		&course.ID, &course.Title, &course.Description, &course.Category, &course.Difficulty,
		&course.InstructorID, &course.Thumbnail, &course.CreatedAt, &course.UpdatedAt,
		&course.TotalLessons, &course.TotalEnrollments,
		&user.ID, &user.Username, &user.Email, &user.FirstName, &user.LastName)
	if err != nil {
		return nil, err
	}
	enrollment.Course = course
	enrollment.User = user
	return enrollment, nil
}

// Create inserts a new enrollment. The existence check and insert are
// indivisible: the unique constraint on (user_id, course_id) is the
// authoritative guard against concurrent duplicate enrollments.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	sql, args, err := r.sb.Insert("enrollments").
		Columns("user_id", "course_id", "progress", "completed").
		Values(enrollment.UserID, enrollment.CourseID, enrollment.Progress, enrollment.Completed).
		Suffix("RETURNING id, enrolled_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create enrollment query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&enrollment.ID, &enrollment.EnrolledAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "enrollments_user_id_course_id_key") {
			return apperrors.ErrAlreadyEnrolled
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Int64("userID", enrollment.UserID).Int64("courseID", enrollment.CourseID).
			Msg("Error executing create enrollment query")
		return fmt.Errorf("error creating enrollment: %w", err)
	}
	return nil
}

// Exists checks whether the user is already enrolled in the course
func (r *EnrollmentRepository) Exists(ctx context.Context, userID, courseID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM enrollments WHERE user_id = $1 AND course_id = $2)`,
		userID, courseID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking enrollment: %w", err)
	}
	return exists, nil
}

// GetByIDForUser retrieves an enrollment by ID scoped to its owning user
func (r *EnrollmentRepository) GetByIDForUser(ctx context.Context, id, userID int64) (*models.Enrollment, error) {
	query := r.baseSelect().Where(squirrel.Eq{"e.id": id, "e.user_id": userID})
	querySql, queryArgs, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get enrollment query: %w", err)
	}

	enrollment, err := scanEnrollment(r.db.QueryRow(ctx, querySql, queryArgs...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		logger.Error().Err(err).Int64("enrollmentID", id).Msg("Error scanning enrollment row")
		return nil, fmt.Errorf("failed to get enrollment: %w", err)
	}
	return enrollment, nil
}

// ListByUser retrieves the user's enrollments, newest first
func (r *EnrollmentRepository) ListByUser(ctx context.Context, userID int64, page, pageSize int) ([]*models.Enrollment, int64, error) {
	var totalItems int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM enrollments WHERE user_id = $1`, userID).Scan(&totalItems)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count enrollments: %w", err)
	}
	if totalItems == 0 {
		return []*models.Enrollment{}, 0, nil
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	query := r.baseSelect().
		Where(squirrel.Eq{"e.user_id": userID}).
		OrderBy("e.enrolled_at DESC").
		Limit(uint64(pageSize)).
		Offset(uint64((page - 1) * pageSize))

	querySql, queryArgs, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list enrollments query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, queryArgs...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error querying enrollments")
		return nil, 0, fmt.Errorf("failed to query enrollments: %w", err)
	}
	defer rows.Close()

	enrollments := make([]*models.Enrollment, 0, pageSize)
	for rows.Next() {
		enrollment, err := scanEnrollment(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan enrollment row: %w", err)
		}
		enrollments = append(enrollments, enrollment)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating enrollment rows: %w", err)
	}

	return enrollments, totalItems, nil
}

// UpdateProgress persists the progress and completed state of an enrollment,
// scoped to its owning user.
func (r *EnrollmentRepository) UpdateProgress(ctx context.Context, id, userID int64, progress int, completed bool) error {
	sql, args, err := r.sb.Update("enrollments").
		Set("progress", progress).
		Set("completed", completed).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update progress query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("enrollmentID", id).Msg("Error executing update progress query")
		return fmt.Errorf("error updating progress: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}
	return nil
}

// Delete removes an enrollment, scoped to its owning user
func (r *EnrollmentRepository) Delete(ctx context.Context, id, userID int64) error {
	sql, args, err := r.sb.Delete("enrollments").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete enrollment query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("enrollmentID", id).Msg("Error executing delete enrollment query")
		return fmt.Errorf("error deleting enrollment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}
	return nil
}
