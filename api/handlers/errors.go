package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"inkwell/dto"
	"inkwell/internal/logger"
	"inkwell/services"
)

// writeServiceError maps service sentinel errors onto HTTP statuses.
// Anything unrecognized is a storage failure and surfaces as an opaque 500.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidID) || errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: err.Error()})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponseDTO{Error: err.Error()})
	default:
		logger.ErrorWithFields("storage failure", logger.Fields{
			"error":      err.Error(),
			"path":       c.Request.URL.Path,
			"request_id": c.GetString("request_id"),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "internal_error"})
	}
}
