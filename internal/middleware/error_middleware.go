package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jkcodespace/academics/internal/app/models/dto"
	"github.com/jkcodespace/academics/internal/pkg/apperrors"
	"github.com/jkcodespace/academics/internal/pkg/logger"
)

// HandleAPIError maps domain errors to the standard JSON error body. Domain
// errors carry their message from the point of detection; anything that is
// not part of the taxonomy is reported as an internal server error without
// leaking the underlying failure.
func HandleAPIError(c *gin.Context, err error) {
	path := c.Request.URL.Path

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.NewJSONError(http.StatusNotFound, err.Error(), path))
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, dto.NewJSONError(http.StatusConflict, err.Error(), path))
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewJSONError(http.StatusBadRequest, err.Error(), path))
	case errors.Is(err, apperrors.ErrInternal):
		c.JSON(http.StatusInternalServerError, dto.NewJSONError(http.StatusInternalServerError, err.Error(), path))
	default:
		logger.Error().Err(err).Str("path", path).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewJSONError(http.StatusInternalServerError, "Internal server error", path))
	}
}
