package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyProgress(t *testing.T) {
	t.Run("SetsProgressWithinRange", func(t *testing.T) {
		e := &Enrollment{Progress: 10}
		e.ApplyProgress(40)

		assert.Equal(t, 40, e.Progress)
		assert.False(t, e.Completed)
	})

	t.Run("ClampsNegativeToZero", func(t *testing.T) {
		e := &Enrollment{Progress: 50}
		e.ApplyProgress(-5)

		assert.Equal(t, 0, e.Progress)
		assert.False(t, e.Completed)
	})

	t.Run("ClampsAboveHundred", func(t *testing.T) {
		e := &Enrollment{}
		e.ApplyProgress(150)

		assert.Equal(t, 100, e.Progress)
		assert.True(t, e.Completed)
	})

	t.Run("MarksCompletedAtHundred", func(t *testing.T) {
		e := &Enrollment{Progress: 90}
		e.ApplyProgress(100)

		assert.Equal(t, 100, e.Progress)
		assert.True(t, e.Completed)
	})

	t.Run("CompletedStaysSetWhenProgressDrops", func(t *testing.T) {
		e := &Enrollment{Progress: 100, Completed: true}
		e.ApplyProgress(30)

		assert.Equal(t, 30, e.Progress)
		assert.True(t, e.Completed)
	})
}
