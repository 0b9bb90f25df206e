package models

import (
	"time"
)

// Lesson defines the lesson model based on the 'lessons' table.
// The (course_id, order_num) pair is unique: no two lessons in the same
// course share an order value.
type Lesson struct {
	ID        int64     `json:"id" db:"id"`
	CourseID  int64     `json:"courseId" db:"course_id"`
	Title     string    `json:"title" db:"title"`
	VideoURL  *string   `json:"videoUrl,omitempty" db:"video_url"`   // Pointer for potential NULL
	Materials *string   `json:"materials,omitempty" db:"materials"`  // Pointer for potential NULL
	Order     int       `json:"order" db:"order_num" example:"1"`    // Positive position within the course
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
