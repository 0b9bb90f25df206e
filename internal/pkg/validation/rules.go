package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// Username pattern - letters, digits and @/./+/-/_ only
	UsernamePattern = `^[\w.@+\-]+$`

	// Password min length
	PasswordMinLength = 8

	// Name validation min/max length
	NameMaxLength = 150
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email    *regexp.Regexp
	Username *regexp.Regexp
}{
	Email:    regexp.MustCompile(EmailPattern),
	Username: regexp.MustCompile(UsernamePattern),
}

// ValidateEmail checks basic email shape.
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("email cannot be empty")
	}
	if !CompiledPatterns.Email.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

// ValidateUsername checks username shape.
func ValidateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("username cannot be empty")
	}
	if len(username) > NameMaxLength {
		return fmt.Errorf("username must be at most %d characters", NameMaxLength)
	}
	if !CompiledPatterns.Username.MatchString(username) {
		return fmt.Errorf("username may contain only letters, digits and @/./+/-/_ characters")
	}
	return nil
}

// ValidatePassword enforces the password strength policy: minimum length,
// not purely numeric, and not too similar to the given user attributes
// (username, email, names).
func ValidatePassword(password string, userAttributes ...string) error {
	if len(password) < PasswordMinLength {
		return fmt.Errorf("password must be at least %d characters long", PasswordMinLength)
	}

	numeric := true
	for _, r := range password {
		if !unicode.IsDigit(r) {
			numeric = false
			break
		}
	}
	if numeric {
		return fmt.Errorf("password cannot be entirely numeric")
	}

	lowered := strings.ToLower(password)
	for _, attr := range userAttributes {
		for _, part := range splitAttribute(attr) {
			if len(part) < 3 {
				continue
			}
			if strings.Contains(lowered, part) || strings.Contains(part, lowered) {
				return fmt.Errorf("password is too similar to your personal information")
			}
		}
	}

	return nil
}

// splitAttribute breaks an attribute into comparable parts. Email addresses
// additionally contribute their local part.
func splitAttribute(attr string) []string {
	attr = strings.ToLower(strings.TrimSpace(attr))
	if attr == "" {
		return nil
	}
	parts := []string{attr}
	if at := strings.IndexByte(attr, '@'); at > 0 {
		parts = append(parts, attr[:at])
	}
	return parts
}
