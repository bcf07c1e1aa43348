package services

import (
	"fmt"
	"strings"

	"github.com/learntech/courseplanner/internal/pkg/apperrors"
	"github.com/learntech/courseplanner/internal/pkg/validation"
)

func invalid(field, format string, args ...any) error {
	return &apperrors.CustomError{
		Err:     apperrors.ErrValidationFailed,
		Message: fmt.Sprintf(format, args...),
		Field:   field,
	}
}

// requireText rejects empty or whitespace-only values
func requireText(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return invalid(field, "%s is required", field)
	}
	return nil
}

func validateCode(code, field string) error {
	if err := requireText(code, field); err != nil {
		return err
	}
	if !validation.IsCode(code) {
		return invalid(field, "%s must be alphanumeric and at most %d characters", field, validation.CodeMaxLength)
	}
	return nil
}

func validateName(name, field string, required bool) error {
	if required {
		if err := requireText(name, field); err != nil {
			return err
		}
	}
	if len(name) > validation.NameMaxLength {
		return invalid(field, "%s must be at most %d characters", field, validation.NameMaxLength)
	}
	return nil
}

func validateEmail(email string) error {
	if err := requireText(email, "email"); err != nil {
		return err
	}
	if !validation.IsEmail(email) {
		return invalid("email", "email must be a valid email address")
	}
	return nil
}

// validateTermCode accepts an empty value unless required
func validateTermCode(value, field string, required bool) error {
	if value == "" && !required {
		return nil
	}
	if !validation.IsTermCode(value) {
		return invalid(field, "%s must be a term code like 2024-1", field)
	}
	return nil
}

func validateFiscalYear(value string) error {
	if !validation.IsFiscalYear(value) {
		return invalid("fiscalYear", "fiscalYear must look like 2024-2025")
	}
	return nil
}

func validateID(id int64, field string) error {
	if id <= 0 {
		return invalid(field, "%s must be a positive number", field)
	}
	return nil
}
