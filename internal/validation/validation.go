package validation

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar date format used by playdates and care requests
const DateLayout = "2006-01-02"

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Required checks that a trimmed value is not empty
func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return ValidationError{Field: field, Message: field + " is required"}
	}
	return nil
}

// ValidateEmail checks that an email address was supplied
func ValidateEmail(email string) error {
	return Required("email", email)
}

// ValidateName checks that a display name was supplied
func ValidateName(name string) error {
	return Required("name", name)
}

// ValidatePassword checks that a password was supplied
func ValidatePassword(password string) error {
	if password == "" {
		return ValidationError{Field: "password", Message: "password is required"}
	}
	return nil
}

// ValidatePasswordsMatch checks the confirmation field of a signup form
func ValidatePasswordsMatch(password, confirm string) error {
	if password != confirm {
		return ValidationError{Field: "confirmPassword", Message: "passwords don't match"}
	}
	return nil
}

// ParseCount parses a required non-negative integer form field
func ParseCount(field, raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ValidationError{Field: field, Message: field + " is required"}
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ValidationError{Field: field, Message: field + " must be a whole number"}
	}
	if n < 0 {
		return 0, ValidationError{Field: field, Message: field + " cannot be negative"}
	}
	return n, nil
}

// ValidateDate checks that a required field holds a YYYY-MM-DD date
func ValidateDate(field, value string) error {
	if err := Required(field, value); err != nil {
		return err
	}
	if _, err := time.Parse(DateLayout, strings.TrimSpace(value)); err != nil {
		return ValidationError{Field: field, Message: field + " must be a date (YYYY-MM-DD)"}
	}
	return nil
}
