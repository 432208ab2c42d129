package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jkcodespace/academics/internal/app/models/dto"
)

// RequireJSON rejects bodies that are not declared as JSON. Endpoints with
// request bodies answer 415 instead of attempting to bind other media types.
func RequireJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		contentType := c.ContentType()
		if contentType != "application/json" {
			c.AbortWithStatusJSON(http.StatusUnsupportedMediaType,
				dto.NewJSONError(http.StatusUnsupportedMediaType,
					"Content type '"+contentType+"' is not supported", c.Request.URL.Path))
			return
		}
		c.Next()
	}
}

// BindingErrorMessage produces a readable message for a failed request bind.
// Validator errors are reported per field; anything else keeps its own text.
func BindingErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		parts := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			parts = append(parts, formatFieldError(fe))
		}
		return strings.Join(parts, "; ")
	}
	return err.Error()
}

// formatFieldError creates a human-readable validation error message
func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	default:
		return e.Field() + " is invalid"
	}
}
