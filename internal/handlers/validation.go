package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// bindJSON decodes and validates a request body. On failure it writes a
// 400 carrying the first violation's message plus the full violation list,
// and returns false.
func (h *Handler) bindJSON(c *gin.Context, req interface{}) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fieldErrors := make([]fieldError, 0, len(verrs))
		for _, fe := range verrs {
			fieldErrors = append(fieldErrors, fieldError{
				Field:   strings.ToLower(fe.Field()),
				Message: validationMessage(fe),
			})
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"message": fieldErrors[0].Message,
			"errors":  fieldErrors,
		})
		return false
	}

	c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid Request Body"})
	return false
}

func validationMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return field + " must be at least " + fe.Param() + " characters"
	case "max":
		return field + " must be at most " + fe.Param() + " characters"
	case "oneof":
		return field + " must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "url":
		return field + " must be a valid URL"
	default:
		return field + " is invalid"
	}
}

// respondInternalError hides store/runtime details from the client and
// logs them instead.
func (h *Handler) respondInternalError(c *gin.Context, err error) {
	h.logger.Error("internal error",
		"error", err,
		"path", c.FullPath(),
		"request_id", c.GetString("request_id"),
	)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
}
