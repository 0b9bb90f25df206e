package dto

import (
	"time"

	"github.com/oguzk/learnhub/internal/app/models"
)

// CreateLessonRequest represents lesson creation data
type CreateLessonRequest struct {
	Title     string  `json:"title" binding:"required,max=200"`
	VideoURL  *string `json:"videoUrl,omitempty" binding:"omitempty,url"`
	Materials *string `json:"materials,omitempty"`
	Order     int     `json:"order" binding:"required,min=1"`
}

// UpdateLessonRequest represents partial lesson update data
type UpdateLessonRequest struct {
	Title     *string `json:"title,omitempty" binding:"omitempty,max=200"`
	VideoURL  *string `json:"videoUrl,omitempty" binding:"omitempty,url"`
	Materials *string `json:"materials,omitempty"`
	Order     *int    `json:"order,omitempty" binding:"omitempty,min=1"`
}

// LessonResponse represents lesson information
type LessonResponse struct {
	ID        int64     `json:"id"`
	CourseID  int64     `json:"courseId"`
	Title     string    `json:"title"`
	VideoURL  *string   `json:"videoUrl,omitempty"`
	Materials *string   `json:"materials,omitempty"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromLesson converts a models.Lesson to a LessonResponse
func FromLesson(lesson *models.Lesson) LessonResponse {
	return LessonResponse{
		ID:        lesson.ID,
		CourseID:  lesson.CourseID,
		Title:     lesson.Title,
		VideoURL:  lesson.VideoURL,
		Materials: lesson.Materials,
		Order:     lesson.Order,
		CreatedAt: lesson.CreatedAt,
		UpdatedAt: lesson.UpdatedAt,
	}
}
