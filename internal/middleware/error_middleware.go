package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/learntech/courseplanner/internal/app/models/dto"
	"github.com/learntech/courseplanner/internal/pkg/apperrors"
	"github.com/learntech/courseplanner/internal/pkg/logger"
)

// UnauthorizedMessage is the message of every denied request
const UnauthorizedMessage = "Unauthorized"

// HandleAPIError maps an application error to its status and error body
func HandleAPIError(c *gin.Context, err error) {
	status, detail := describeError(err)

	var ce *apperrors.CustomError
	if errors.As(err, &ce) && ce.Field != "" {
		detail = detail.WithField(ce.Field)
	}

	if status >= http.StatusInternalServerError {
		logger.Ctx(c.Request.Context()).Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Request failed")
	}

	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

func describeError(err error) (int, *dto.ErrorDetail) {
	switch {
	case apperrors.Is(err, apperrors.ErrResourceNotFound, apperrors.ErrUserNotFound, apperrors.ErrRoleNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, apperrors.MessageOf(err, "Resource not found"))
	case errors.Is(err, apperrors.ErrResourceAlreadyExists):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, apperrors.MessageOf(err, "Resource already exists"))
	case errors.Is(err, apperrors.ErrResourceReferenced):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeResourceReferenced, apperrors.MessageOf(err, "Resource is still referenced"))
	case errors.Is(err, apperrors.ErrInvalidReference):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeResourceInvalid, apperrors.MessageOf(err, "Referenced resource does not exist"))
	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, apperrors.MessageOf(err, "Validation failed"))
	case apperrors.Is(err, apperrors.ErrBadRequest, apperrors.ErrUnknownSortField):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeBadRequest, apperrors.MessageOf(err, "Bad request"))
	case apperrors.Is(err, apperrors.ErrUnauthorized, apperrors.ErrTokenMissing, apperrors.ErrTokenInvalid, apperrors.ErrAccessDenied):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeUnauthorized, UnauthorizedMessage)
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeTimeout, "Request timed out").
			WithSeverity(dto.ErrorSeverityCritical)
	default:
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error").
			WithSeverity(dto.ErrorSeverityCritical)
	}
}

// RespondUnauthorized aborts the request with 401 Unauthorized
func RespondUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
		dto.NewErrorDetail(dto.ErrorCodeUnauthorized, UnauthorizedMessage),
	))
}
