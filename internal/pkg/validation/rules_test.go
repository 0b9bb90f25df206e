package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@sub.domain.org",
		"user+tag@example.co",
	}
	for _, email := range valid {
		assert.NoError(t, ValidateEmail(email), "expected %q to be valid", email)
	}

	invalid := []string{
		"",
		"   ",
		"not-an-email",
		"missing@tld",
		"@example.com",
	}
	for _, email := range invalid {
		assert.Error(t, ValidateEmail(email), "expected %q to be invalid", email)
	}
}

func TestValidateUsername(t *testing.T) {
	assert.NoError(t, ValidateUsername("john_doe"))
	assert.NoError(t, ValidateUsername("user.name+tag@x"))

	assert.Error(t, ValidateUsername(""))
	assert.Error(t, ValidateUsername("   "))
	assert.Error(t, ValidateUsername("has spaces"))
	assert.Error(t, ValidateUsername("emoji🙂name"))
}

func TestValidatePassword(t *testing.T) {
	t.Run("AcceptsStrongPassword", func(t *testing.T) {
		assert.NoError(t, ValidatePassword("correct-horse-battery"))
	})

	t.Run("RejectsTooShort", func(t *testing.T) {
		assert.Error(t, ValidatePassword("short1"))
	})

	t.Run("RejectsEntirelyNumeric", func(t *testing.T) {
		assert.Error(t, ValidatePassword("12345678901"))
	})

	t.Run("RejectsSimilarToUsername", func(t *testing.T) {
		err := ValidatePassword("johndoe99", "johndoe")
		assert.Error(t, err)
	})

	t.Run("RejectsSimilarToEmailLocalPart", func(t *testing.T) {
		err := ValidatePassword("xjanedoex", "jane@example.com", "janedoe")
		assert.Error(t, err)
	})

	t.Run("IgnoresShortAttributeParts", func(t *testing.T) {
		assert.NoError(t, ValidatePassword("unrelated-pass", "ab"))
	})

	t.Run("ComparisonIsCaseInsensitive", func(t *testing.T) {
		err := ValidatePassword("JohnDoe123", "johndoe")
		assert.Error(t, err)
	})
}
