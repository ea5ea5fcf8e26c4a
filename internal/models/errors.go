package models

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse represents a standardized API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Predefined error constructors
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    "VALIDATION_ERROR",
		Message: message,
	}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    "UNAUTHORIZED",
		Message: message,
	}
}

// NewNotAuthenticatedError signals an operation that requires an active
// account was attempted without one.
func NewNotAuthenticatedError() *AppError {
	return &AppError{
		Code:    "NOT_AUTHENTICATED",
		Message: "An active account is required for this operation",
	}
}

// NewDuplicateDailyEntryError signals the one-entry-per-day rule rejected a write.
func NewDuplicateDailyEntryError() *AppError {
	return &AppError{
		Code:    "DUPLICATE_DAILY_ENTRY",
		Message: "An entry already exists for today. Only one entry per day is allowed.",
	}
}

// NewRequestFailedError wraps an underlying persistence failure. The gateway
// does not distinguish network, permission, or data errors further.
func NewRequestFailedError(err error) *AppError {
	return &AppError{
		Code:    "REQUEST_FAILED",
		Message: "The persistence request failed",
		Err:     err,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: "Internal server error",
		Err:     err,
	}
}

// RespondWithError creates a standardized error response
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	var response ErrorResponse

	if appErr, ok := err.(*AppError); ok {
		response = ErrorResponse{
			Error: appErr.Message,
			Code:  appErr.Code,
		}
		if appErr.Err != nil {
			response.Details = appErr.Err.Error()
		}
	} else {
		response = ErrorResponse{
			Error: err.Error(),
		}
	}

	return c.Status(status).JSON(response)
}
