package middleware

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/learntech/courseplanner/internal/app/models/dto"
	"github.com/learntech/courseplanner/internal/pkg/logger"
	"github.com/learntech/courseplanner/internal/pkg/validation"
)

var registerOnce sync.Once

// RegisterValidators adds the term code and fiscal year rules to gin's
// validator and reports fields by their JSON names. Safe to call repeatedly.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			logger.Warn().Msg("gin validator engine is not go-playground/validator; custom rules not registered")
			return
		}

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
				if name != "" && name != "-" {
					return name
				}
			}
			return field.Name
		})

		_ = v.RegisterValidation("termcode", func(fl validator.FieldLevel) bool {
			return validation.IsTermCode(fl.Field().String())
		})
		_ = v.RegisterValidation("fiscalyear", func(fl validator.FieldLevel) bool {
			return validation.IsFiscalYear(fl.Field().String())
		})
	})
}

// HandleBindingError responds 400 to a request that failed to bind
func HandleBindingError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		details := dto.NewValidationErrors()
		for _, fe := range validationErrs {
			details.AddError(fe.Field(), formatValidationError(fe))
		}
		first := details.Errors[0]
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, first.Message).
			WithField(first.Field).
			WithDetails(details.Errors)
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
		WithDetails(err.Error())
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case "termcode":
		return e.Field() + " must be a term code like 2024-1"
	case "fiscalyear":
		return e.Field() + " must be a fiscal year like 2024-2025"
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
