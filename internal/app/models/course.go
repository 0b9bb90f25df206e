package models

import (
	"time"
)

// Course defines the course model based on the 'courses' table
type Course struct {
	ID           int64            `json:"id" db:"id"`
	Title        string           `json:"title" db:"title"`
	Description  string           `json:"description" db:"description"`
	Category     CourseCategory   `json:"category" db:"category"`
	Difficulty   CourseDifficulty `json:"difficulty" db:"difficulty"`
	InstructorID int64            `json:"instructorId" db:"instructor_id"`
	Thumbnail    *string          `json:"thumbnail,omitempty" db:"thumbnail"` // Pointer for potential NULL
	CreatedAt    time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time        `json:"updatedAt" db:"updated_at"`

	// Derived fields, populated from live relation counts at read time
	TotalLessons     int64 `json:"totalLessons" db:"total_lessons"`
	TotalEnrollments int64 `json:"totalEnrollments" db:"total_enrollments"`

	Instructor *User    `json:"instructor,omitempty"` // Relation, no db tag
	Lessons    []Lesson `json:"lessons,omitempty"`    // Relation, no db tag
}
