package models

import (
	"time"
)

// Enrollment defines the enrollment model based on the 'enrollments' table.
// The (user_id, course_id) pair is unique: a user enrolls in a course at
// most once.
type Enrollment struct {
	ID         int64     `json:"id" db:"id"`
	UserID     int64     `json:"userId" db:"user_id"`
	CourseID   int64     `json:"courseId" db:"course_id"`
	EnrolledAt time.Time `json:"enrolledAt" db:"enrolled_at"`
	Progress   int       `json:"progress" db:"progress" example:"40"` // Progress percentage (0-100)
	Completed  bool      `json:"completed" db:"completed"`

	User   *User   `json:"user,omitempty"`   // Relation, no db tag
	Course *Course `json:"course,omitempty"` // Relation, no db tag
}

// ApplyProgress clamps the given progress into [0,100] and latches the
// completed flag once progress reaches 100. Completed is never unset here:
// a later lower progress value keeps the enrollment completed.
func (e *Enrollment) ApplyProgress(newProgress int) {
	if newProgress < 0 {
		newProgress = 0
	}
	if newProgress > 100 {
		newProgress = 100
	}
	e.Progress = newProgress
	if e.Progress >= 100 {
		e.Completed = true
	}
}
