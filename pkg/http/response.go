package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// OKResponse writes data as-is with 200.
func OKResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// CreatedResponse writes the created record with 201.
func CreatedResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, data)
}

// ValidationErrorResponse writes 400 with the field errors.
func ValidationErrorResponse(c echo.Context, message string, errs []ValidationError) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Message: message, Errors: errs})
}

// MessageResponse writes {message} with the given status.
func MessageResponse(c echo.Context, status int, message string) error {
	return c.JSON(status, ErrorResponse{Message: message})
}

// AppErrorResponse writes an AppError with its own status, or 500 with fallback otherwise.
func AppErrorResponse(c echo.Context, err error, fallback string) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return MessageResponse(c, appErr.Status, appErr.Message)
	}
	return MessageResponse(c, http.StatusInternalServerError, fallback)
}
