package handlers

import (
	"errors"
	"net/http"

	apperrors "payroll-backend/internal/errors"
	"payroll-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respondError maps service errors onto HTTP status codes
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err), isValidationFailure(err), isBusinessError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.WithContext(c).WithField("path", c.Request.URL.Path).Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error", "details": err.Error()})
	}
}

func isValidationFailure(err error) bool {
	var verrs validator.ValidationErrors
	return errors.As(err, &verrs)
}

func isBusinessError(err error) bool {
	return errors.Is(err, apperrors.ErrInvalidTimeRange) ||
		errors.Is(err, apperrors.ErrInvalidDateRange) ||
		errors.Is(err, apperrors.ErrInvalidStatus) ||
		errors.Is(err, apperrors.ErrNoTimeDetails) ||
		errors.Is(err, apperrors.ErrInvalidPaginationParams)
}
