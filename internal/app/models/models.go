// Package models defines the database-backed domain entities.
package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent    RoleType = "student"
	RoleInstructor RoleType = "instructor"
)

// Valid reports whether the role is a known member of the role set.
func (r RoleType) Valid() bool {
	switch r {
	case RoleStudent, RoleInstructor:
		return true
	}
	return false
}

// CourseCategory defines the course category enum
type CourseCategory string

const (
	CategoryProgramming CourseCategory = "programming"
	CategoryDesign      CourseCategory = "design"
	CategoryBusiness    CourseCategory = "business"
	CategoryMarketing   CourseCategory = "marketing"
	CategoryMusic       CourseCategory = "music"
	CategoryPhotography CourseCategory = "photography"
	CategoryHealth      CourseCategory = "health"
	CategoryLanguage    CourseCategory = "language"
	CategoryOther       CourseCategory = "other"
)

// Categories lists all known course categories.
var Categories = []CourseCategory{
	CategoryProgramming,
	CategoryDesign,
	CategoryBusiness,
	CategoryMarketing,
	CategoryMusic,
	CategoryPhotography,
	CategoryHealth,
	CategoryLanguage,
	CategoryOther,
}

// Valid reports whether the category is a known member of the category set.
func (c CourseCategory) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// CourseDifficulty defines the course difficulty enum
type CourseDifficulty string

const (
	DifficultyBeginner     CourseDifficulty = "beginner"
	DifficultyIntermediate CourseDifficulty = "intermediate"
	DifficultyAdvanced     CourseDifficulty = "advanced"
)

// Valid reports whether the difficulty is a known member of the difficulty set.
func (d CourseDifficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}
