package service

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// MinTextLength is the minimum length of passwords, titles and contents.
const MinTextLength = 5

func minLength(field string) []validation.Rule {
	msg := fmt.Sprintf("%s must contain at least %d characters", field, MinTextLength)
	return []validation.Rule{
		validation.Required.Error(msg),
		validation.RuneLength(MinTextLength, 0).Error(msg),
	}
}

func check(field, value string, rules ...validation.Rule) error {
	if err := validation.Validate(value, rules...); err != nil {
		return NewValidationError(field, err.Error())
	}
	return nil
}

// ValidateEmail requires a well-formed address.
func ValidateEmail(email string) error {
	return check("email", email,
		validation.Required.Error("email is invalid"),
		is.Email.Error("email is invalid"),
	)
}

func ValidatePassword(password string) error {
	return check("password", password, minLength("password")...)
}

func ValidateName(name string) error {
	return check("name", strings.TrimSpace(name), validation.Required.Error("name must not be empty"))
}

func ValidateTitle(title string) error {
	return check("title", strings.TrimSpace(title), minLength("title")...)
}

func ValidateContent(content string) error {
	return check("content", strings.TrimSpace(content), minLength("content")...)
}

func ValidateStatus(status string) error {
	return check("status", strings.TrimSpace(status), validation.Required.Error("status must not be empty"))
}

// firstError runs checks in order and returns the first failure.
func firstError(checks ...func() error) error {
	for _, c := range checks {
		if err := c(); err != nil {
			return err
		}
	}
	return nil
}
