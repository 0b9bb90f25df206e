package dto

import (
	"time"

	"github.com/oguzk/learnhub/internal/app/models"
)

// CreateCourseRequest represents course creation data. The instructor is
// always the authenticated actor, never taken from the payload.
type CreateCourseRequest struct {
	Title       string                  `json:"title" binding:"required,max=200"`
	Description string                  `json:"description" binding:"required"`
	Category    models.CourseCategory   `json:"category" binding:"required,coursecategory"`
	Difficulty  models.CourseDifficulty `json:"difficulty" binding:"required,coursedifficulty"`
	Thumbnail   *string                 `json:"thumbnail,omitempty"`
}

// UpdateCourseRequest represents partial course update data
type UpdateCourseRequest struct {
	Title       *string                  `json:"title,omitempty" binding:"omitempty,max=200"`
	Description *string                  `json:"description,omitempty"`
	Category    *models.CourseCategory   `json:"category,omitempty" binding:"omitempty,coursecategory"`
	Difficulty  *models.CourseDifficulty `json:"difficulty,omitempty" binding:"omitempty,coursedifficulty"`
	Thumbnail   *string                  `json:"thumbnail,omitempty"`
}

// CourseFilterRequest represents course list filtering parameters
type CourseFilterRequest struct {
	Category     string `form:"category"`
	Difficulty   string `form:"difficulty"`
	InstructorID int64  `form:"instructor"`
	Search       string `form:"search"`
	// Ordering accepts created_at, title or total_enrollments, optionally
	// prefixed with '-' for descending. Default is -created_at.
	Ordering string `form:"ordering"`
	Page     int    `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int    `form:"size,default=10" binding:"omitempty,min=1,max=100"`
}

// CourseResponse represents course information with derived counts
type CourseResponse struct {
	ID               int64            `json:"id"`
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	Category         string           `json:"category"`
	Difficulty       string           `json:"difficulty"`
	Instructor       *UserResponse    `json:"instructor,omitempty"`
	Thumbnail        *string          `json:"thumbnail,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
	Lessons          []LessonResponse `json:"lessons,omitempty"`
	TotalLessons     int64            `json:"totalLessons"`
	TotalEnrollments int64            `json:"totalEnrollments"`
}

// CourseListResponse represents a paginated list of courses
type CourseListResponse struct {
	Courses []CourseResponse `json:"courses"`
	PaginationInfo
}

// FromCourse converts a models.Course to a CourseResponse
func FromCourse(course *models.Course) CourseResponse {
	resp := CourseResponse{
		ID:               course.ID,
		Title:            course.Title,
		Description:      course.Description,
		Category:         string(course.Category),
		Difficulty:       string(course.Difficulty),
		Thumbnail:        course.Thumbnail,
		CreatedAt:        course.CreatedAt,
		UpdatedAt:        course.UpdatedAt,
		TotalLessons:     course.TotalLessons,
		TotalEnrollments: course.TotalEnrollments,
	}
	if course.Instructor != nil {
		instructor := FromUser(course.Instructor)
		resp.Instructor = &instructor
	}
	for i := range course.Lessons {
		resp.Lessons = append(resp.Lessons, FromLesson(&course.Lessons[i]))
	}
	return resp
}
