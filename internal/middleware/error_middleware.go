package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/gradebook/internal/app/models/dto"
	"github.com/yigit/gradebook/internal/pkg/apperrors"
	"github.com/yigit/gradebook/internal/pkg/logger"
)

// HandleAPIError maps a service error to a status code and error body.
// Everything is logged; server-side failures at error level.
func HandleAPIError(c *gin.Context, err error) {
	status, detail := describeError(err)

	lgr := logger.Get()
	event := lgr.Warn()
	if status >= http.StatusInternalServerError {
		event = lgr.Error()
	}
	event.Err(err).
		Str("requestID", GetRequestID(c)).
		Str("path", c.Request.URL.Path).
		Int("status", status).
		Msg("Request failed")

	c.AbortWithStatusJSON(status, dto.NewFailure(detail))
}

func describeError(err error) (int, *dto.ErrorDetail) {
	var custom *apperrors.CustomError
	hasCustom := errors.As(err, &custom)

	switch {
	case errors.Is(err, apperrors.ErrNotConfirmed):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeConfirmationRequired, "This operation must be confirmed").
			WithHint("repeat the request with confirm=true")
	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())
	case errors.Is(err, apperrors.ErrUnauthenticated):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Login required")
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Wrong password")
	case errors.Is(err, apperrors.ErrUserNotFound):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeUnknownUser, "Unknown username")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden, dto.NewErrorDetail(dto.ErrorCodeForbidden, err.Error())
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())
	case errors.Is(err, apperrors.ErrNoData):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeNoData, err.Error())
	case errors.Is(err, apperrors.ErrResourceAlreadyExists):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error())
	case errors.Is(err, apperrors.ErrConflict):
		detail := dto.NewErrorDetail(dto.ErrorCodeConflict, err.Error())
		if hasCustom && custom.Details != nil {
			detail.WithDetails(custom.Details)
		}
		return http.StatusConflict, detail
	case errors.Is(err, apperrors.ErrDatabaseUnavailable):
		return http.StatusServiceUnavailable, dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Database unavailable").
			WithHint("check that PostgreSQL is running and the database settings are correct")
	default:
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
	}
}
