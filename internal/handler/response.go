package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pedala/internal/repository"
	"pedala/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, service.ErrNotLoggedIn),
		errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized

	// Validation errors - Bad Request
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest

	// Not found errors
	case errors.Is(err, service.ErrBikeNotFound),
		errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, service.ErrDuplicateAccount),
		errors.Is(err, service.ErrAlreadyRenting),
		errors.Is(err, service.ErrNoActiveRental):
		return http.StatusConflict

	// Business rule errors
	case errors.Is(err, service.ErrTooFarFromBike):
		return http.StatusForbidden

	// Default to internal server error (includes ErrCorruptData)
	default:
		return http.StatusInternalServerError
	}
}
