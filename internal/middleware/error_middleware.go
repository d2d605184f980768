package middleware

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bilguun/eduview/internal/app/models/dto"
	"github.com/bilguun/eduview/internal/pkg/apperrors"
)

// --- Central Error Handling Middleware/Function ---

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrClassNotFound):
		c.JSON(404, dto.APIResponse{
			Error:     dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Class not found"),
			Timestamp: time.Now(),
		})
		return
	case errors.Is(err, apperrors.ErrTeacherNotFound):
		c.JSON(404, dto.APIResponse{
			Error:     dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Teacher not found"),
			Timestamp: time.Now(),
		})
		return
	case errors.Is(err, apperrors.ErrSchoolNotFound):
		c.JSON(404, dto.APIResponse{
			Error:     dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "School not found"),
			Timestamp: time.Now(),
		})
		return
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(404, dto.APIResponse{
			Error:     dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found"),
			Timestamp: time.Now(),
		})
		return
	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrBadRequest):
		c.JSON(400, dto.APIResponse{
			Error:     dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").WithField("name"),
			Timestamp: time.Now(),
		})
		return
	default:
		// Handle unknown errors
		c.JSON(500, dto.APIResponse{
			Error:     dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
			Timestamp: time.Now(),
		})
		return
	}
}
