package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oguzk/learnhub/internal/app/models"
	"github.com/oguzk/learnhub/internal/pkg/apperrors"
	"github.com/oguzk/learnhub/internal/pkg/dberrors"
	"github.com/oguzk/learnhub/internal/pkg/logger"
)

// ILessonRepository defines the interface for lesson-related database operations
type ILessonRepository interface {
	GetByCourse(ctx context.Context, courseID int64) ([]models.Lesson, error)
	GetByID(ctx context.Context, id int64) (*models.Lesson, error)
	OrderExists(ctx context.Context, courseID int64, order int, excludeLessonID int64) (bool, error)
	Create(ctx context.Context, lesson *models.Lesson) error
	Update(ctx context.Context, lesson *models.Lesson) error
	Delete(ctx context.Context, id int64) error
}

// LessonRepository handles lesson database operations
type LessonRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewLessonRepository creates a new LessonRepository
func NewLessonRepository(db *pgxpool.Pool) *LessonRepository {
	return &LessonRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const lessonColumns = "id, course_id, title, video_url, materials, order_num, created_at, updated_at"

func scanLesson(row pgx.Row) (*models.Lesson, error) {
	lesson := &models.Lesson{}
	err := row.Scan(&lesson.ID, &lesson.CourseID, &lesson.Title, &lesson.VideoURL,
		&lesson.Materials, &lesson.Order, &lesson.CreatedAt, &lesson.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return lesson, nil
}

// GetByCourse retrieves all lessons of a course ordered by position
func (r *LessonRepository) GetByCourse(ctx context.Context, courseID int64) ([]models.Lesson, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+lessonColumns+`
		FROM lessons
		WHERE course_id = $1
		ORDER BY order_num ASC`, courseID)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", courseID).Msg("Error querying lessons")
		return nil, fmt.Errorf("failed to query lessons: %w", err)
	}
	defer rows.Close()

	var lessons []models.Lesson
	for rows.Next() {
		lesson, err := scanLesson(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lesson row: %w", err)
		}
		lessons = append(lessons, *lesson)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating lesson rows: %w", err)
	}
	return lessons, nil
}

// GetByID retrieves a lesson by ID
func (r *LessonRepository) GetByID(ctx context.Context, id int64) (*models.Lesson, error) {
	lesson, err := scanLesson(r.db.QueryRow(ctx, `
		SELECT `+lessonColumns+`
		FROM lessons
		WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrLessonNotFound
		}
		return nil, fmt.Errorf("failed to get lesson: %w", err)
	}
	return lesson, nil
}

// OrderExists checks whether a lesson with the given order already exists in
// the course. Advisory application-layer check; the unique constraint on
// (course_id, order_num) remains the authoritative backstop.
func (r *LessonRepository) OrderExists(ctx context.Context, courseID int64, order int, excludeLessonID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM lessons WHERE course_id = $1 AND order_num = $2 AND id <> $3)`,
		courseID, order, excludeLessonID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking lesson order: %w", err)
	}
	return exists, nil
}

// Create persists a new lesson
func (r *LessonRepository) Create(ctx context.Context, lesson *models.Lesson) error {
	sql, args, err := r.sb.Insert("lessons").
		Columns("course_id", "title", "video_url", "materials", "order_num").
		Values(lesson.CourseID, lesson.Title, lesson.VideoURL, lesson.Materials, lesson.Order).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create lesson query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&lesson.ID, &lesson.CreatedAt, &lesson.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "lessons_course_id_order_num_key") {
			return apperrors.ErrDuplicateOrder
		}
		logger.Error().Err(err).Int64("courseID", lesson.CourseID).Msg("Error executing create lesson query")
		return fmt.Errorf("error creating lesson: %w", err)
	}
	return nil
}

// Update persists changed lesson fields
func (r *LessonRepository) Update(ctx context.Context, lesson *models.Lesson) error {
	sql, args, err := r.sb.Update("lessons").
		Set("title", lesson.Title).
		Set("video_url", lesson.VideoURL).
		Set("materials", lesson.Materials).
		Set("order_num", lesson.Order).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": lesson.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update lesson query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "lessons_course_id_order_num_key") {
			return apperrors.ErrDuplicateOrder
		}
		logger.Error().Err(err).Int64("lessonID", lesson.ID).Msg("Error executing update lesson query")
		return fmt.Errorf("error updating lesson: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrLessonNotFound
	}
	return nil
}

// Delete removes a lesson
func (r *LessonRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("lessons").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete lesson query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("lessonID", id).Msg("Error executing delete lesson query")
		return fmt.Errorf("error deleting lesson: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrLessonNotFound
	}
	return nil
}
