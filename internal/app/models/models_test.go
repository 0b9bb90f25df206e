package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleTypeValid(t *testing.T) {
	assert.True(t, RoleStudent.Valid())
	assert.True(t, RoleInstructor.Valid())
	assert.False(t, RoleType("admin").Valid())
	assert.False(t, RoleType("").Valid())
	assert.False(t, RoleType("Student").Valid())
}

func TestCourseCategoryValid(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.Valid(), "category %q should be valid", c)
	}
	assert.False(t, CourseCategory("cooking").Valid())
	assert.False(t, CourseCategory("").Valid())
}

func TestCourseDifficultyValid(t *testing.T) {
	assert.True(t, DifficultyBeginner.Valid())
	assert.True(t, DifficultyIntermediate.Valid())
	assert.True(t, DifficultyAdvanced.Valid())
	assert.False(t, CourseDifficulty("expert").Valid())
	assert.False(t, CourseDifficulty("").Valid())
}
