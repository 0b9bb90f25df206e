package dto

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerInput struct {
	Username string `validate:"required,min=3"`
	Email    string `validate:"required,email"`
}

func TestHandleValidationError(t *testing.T) {
	validate := validator.New()

	t.Run("SingleFieldError", func(t *testing.T) {
		err := validate.Struct(registerInput{Username: "jane", Email: "not-an-email"})
		require.Error(t, err)

		detail := HandleValidationError(err)
		assert.Equal(t, ErrorCodeValidationFailed, detail.Code)
		assert.Equal(t, "Email", detail.Field)
		assert.Contains(t, detail.Message, "valid email address")
	})

	t.Run("MultipleFieldErrorsListed", func(t *testing.T) {
		err := validate.Struct(registerInput{})
		require.Error(t, err)

		detail := HandleValidationError(err)
		assert.Equal(t, ErrorCodeValidationFailed, detail.Code)
		require.NotNil(t, detail.Details)
		all, ok := detail.Details.([]string)
		require.True(t, ok)
		assert.Len(t, all, 2)
	})

	t.Run("NonValidatorError", func(t *testing.T) {
		detail := HandleValidationError(errors.New("unexpected EOF"))
		assert.Equal(t, ErrorCodeValidationFailed, detail.Code)
		assert.Equal(t, "Invalid request format", detail.Message)
	})
}

func TestNewErrorResponse(t *testing.T) {
	detail := NewErrorDetail(ErrorCodeConflict, "already enrolled in this course").WithField("courseId")
	resp := NewErrorResponse(detail)

	assert.False(t, resp.Success)
	assert.Equal(t, detail, resp.Error)
	assert.False(t, resp.Timestamp.IsZero())
}
