package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oguzk/learnhub/internal/app/models"
)

func TestFromEnrollment(t *testing.T) {
	t.Run("EmbedsLoadedUserAndCourse", func(t *testing.T) {
		enrollment := &models.Enrollment{
			ID:         3,
			UserID:     7,
			CourseID:   10,
			EnrolledAt: time.Now(),
			Progress:   40,
			User:       &models.User{ID: 7, Username: "maya_k", Email: "maya@example.com"},
			Course:     &models.Course{ID: 10, Title: "Intro to Databases"},
		}

		resp := FromEnrollment(enrollment)

		require.NotNil(t, resp.User)
		assert.Equal(t, int64(7), resp.User.ID)
		assert.Equal(t, "maya_k", resp.User.Username)
		require.NotNil(t, resp.Course)
		assert.Equal(t, "Intro to Databases", resp.Course.Title)
	})

	t.Run("OwnerIdentifiedFromKeyAlone", func(t *testing.T) {
		enrollment := &models.Enrollment{ID: 3, UserID: 7, CourseID: 10, Progress: 40}

		resp := FromEnrollment(enrollment)

		require.NotNil(t, resp.User)
		assert.Equal(t, int64(7), resp.User.ID)
	})
}
