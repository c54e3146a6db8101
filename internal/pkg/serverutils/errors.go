package serverutils

import "github.com/gofiber/fiber/v2"

// AppError is the application-raised error-with-status that the central
// handler maps onto a response. Details carries field-level validation
// problems or hints like retryAfter.
type AppError struct {
	Status  int         `json:"-"`
	Code    string      `json:"error"`
	Message string      `json:"message,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

func NewValidationError(message string, details interface{}) *AppError {
	return &AppError{Status: fiber.StatusBadRequest, Code: "validation_error", Message: message, Details: details}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{Status: fiber.StatusUnauthorized, Code: "unauthorized", Message: message}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{Status: fiber.StatusForbidden, Code: "forbidden", Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Status: fiber.StatusNotFound, Code: "not_found", Message: message}
}

func NewConflictError(message string) *AppError {
	return &AppError{Status: fiber.StatusConflict, Code: "conflict", Message: message}
}

func NewRateLimitError(message string, retryAfterSeconds int) *AppError {
	return &AppError{
		Status:  fiber.StatusTooManyRequests,
		Code:    "rate_limited",
		Message: message,
		Details: fiber.Map{"retryAfter": retryAfterSeconds},
	}
}
