package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oguzk/learnhub/internal/app/models"
	"github.com/oguzk/learnhub/internal/pkg/apperrors"
	"github.com/oguzk/learnhub/internal/pkg/logger"
)

// CourseFilter carries list filtering, search and ordering parameters.
type CourseFilter struct {
	Category     string
	Difficulty   string
	InstructorID int64
	Search       string
	Ordering     string
	Page         int
	PageSize     int
}

// ICourseRepository defines the interface for course-related database operations
type ICourseRepository interface {
	GetAll(ctx context.Context, filter CourseFilter) ([]*models.Course, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetInstructorID(ctx context.Context, courseID int64) (int64, error)
	Create(ctx context.Context, course *models.Course) error
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
}

// CourseRepository handles course database operations
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Derived counts are computed per read from the live relations, never stored.
const courseCountColumns = `
	(SELECT COUNT(*) FROM lessons l WHERE l.course_id = c.id) AS total_lessons,
	(SELECT COUNT(*) FROM enrollments e WHERE e.course_id = c.id) AS total_enrollments`

func (r *CourseRepository) baseSelect() squirrel.SelectBuilder {
	return r.sb.Select(
		"c.id", "c.title", "c.description", "c.category", "c.difficulty",
		"c.instructor_id", "c.thumbnail", "c.created_at", "c.updated_at",
		courseCountColumns,
		"u.id", "u.username", "u.email", "u.first_name", "u.last_name",
		"p.role", "p.bio", "p.phone_number",
	).
		From("courses c").
		Join("users u ON c.instructor_id = u.id").
		Join("profiles p ON p.user_id = u.id")
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	course := &models.Course{}
	instructor := &models.User{Profile: &models.Profile{}}
	err := row.Scan(
		&course.ID, &course.Title, &course.Description, &course.Category, &course.Difficulty,
		&course.InstructorID, &course.Thumbnail, &course.CreatedAt, &course.UpdatedAt,
		&course.TotalLessons, &course.TotalEnrollments,
		&instructor.ID, &instructor.Username, &instructor.Email, &instructor.FirstName, &instructor.LastName,
		&instructor.Profile.Role, &instructor.Profile.Bio, &instructor.Profile.PhoneNumber)
	if err != nil {
		return nil, err
	}
	instructor.Profile.UserID = instructor.ID
	course.Instructor = instructor
	return course, nil
}

// orderingColumn maps an API ordering field to a sortable SQL expression.
// Unknown fields fall back to creation date.
func orderingColumn(field string) string {
	switch field {
	case "title":
		return "c.title"
	case "total_enrollments":
		return "total_enrollments"
	case "created_at":
		return "c.created_at"
	default:
		return "c.created_at"
	}
}

// GetAll retrieves courses with filtering, search, ordering and pagination.
// Default ordering is newest first.
func (r *CourseRepository) GetAll(ctx context.Context, filter CourseFilter) ([]*models.Course, int64, error) {
	where := squirrel.And{}
	if filter.Category != "" {
		where = append(where, squirrel.Eq{"c.category": filter.Category})
	}
	if filter.Difficulty != "" {
		where = append(where, squirrel.Eq{"c.difficulty": filter.Difficulty})
	}
	if filter.InstructorID > 0 {
		where = append(where, squirrel.Eq{"c.instructor_id": filter.InstructorID})
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + search + "%"
		where = append(where, squirrel.Or{
			squirrel.ILike{"c.title": pattern},
			squirrel.ILike{"c.description": pattern},
		})
	}

	countSelect := r.sb.Select("COUNT(*)").From("courses c").Where(where)
	countSql, countArgs, err := countSelect.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building count courses SQL")
		return nil, 0, fmt.Errorf("failed to build count courses query: %w", err)
	}

	var totalItems int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems); err != nil {
		logger.Error().Err(err).Msg("Error executing count courses query")
		return nil, 0, fmt.Errorf("failed to count courses: %w", err)
	}
	if totalItems == 0 {
		return []*models.Course{}, 0, nil
	}

	direction := "DESC"
	field := filter.Ordering
	if field == "" {
		field = "-created_at"
	}
	if strings.HasPrefix(field, "-") {
		field = strings.TrimPrefix(field, "-")
	} else {
		direction = "ASC"
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 10
	}

	query := r.baseSelect().
		Where(where).
		OrderBy(fmt.Sprintf("%s %s", orderingColumn(field), direction)).
		Limit(uint64(pageSize)).
		Offset(uint64((page - 1) * pageSize))

	querySql, queryArgs, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all courses SQL")
		return nil, 0, fmt.Errorf("failed to build get courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, queryArgs...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all courses query")
		return nil, 0, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	courses := make([]*models.Course, 0, pageSize)
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan course row: %w", err)
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, totalItems, nil
}

// GetByID retrieves a course by ID with derived counts and its instructor
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := r.baseSelect().Where(squirrel.Eq{"c.id": id})
	querySql, queryArgs, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course, err := scanCourse(r.db.QueryRow(ctx, querySql, queryArgs...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Int64("courseID", id).Msg("Error scanning course row")
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	return course, nil
}

// GetInstructorID returns only the owning instructor's user ID for a course.
// Used by ownership checks that don't need the full row.
func (r *CourseRepository) GetInstructorID(ctx context.Context, courseID int64) (int64, error) {
	var instructorID int64
	err := r.db.QueryRow(ctx, `SELECT instructor_id FROM courses WHERE id = $1`, courseID).Scan(&instructorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrCourseNotFound
		}
		return 0, fmt.Errorf("failed to get course instructor: %w", err)
	}
	return instructorID, nil
}

// Create persists a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	sql, args, err := r.sb.Insert("courses").
		Columns("title", "description", "category", "difficulty", "instructor_id", "thumbnail").
		Values(course.Title, course.Description, course.Category, course.Difficulty, course.InstructorID, course.Thumbnail).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create course query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt)
	if err != nil {
		logger.Error().Err(err).Str("title", course.Title).Msg("Error executing create course query")
		return fmt.Errorf("error creating course: %w", err)
	}
	return nil
}

// Update persists changed course fields
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	sql, args, err := r.sb.Update("courses").
		Set("title", course.Title).
		Set("description", course.Description).
		Set("category", course.Category).
		Set("difficulty", course.Difficulty).
		Set("thumbnail", course.Thumbnail).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": course.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", course.ID).Msg("Error executing update course query")
		return fmt.Errorf("error updating course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// Delete removes a course; lessons and enrollments cascade.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("courses").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", id).Msg("Error executing delete course query")
		return fmt.Errorf("error deleting course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}
