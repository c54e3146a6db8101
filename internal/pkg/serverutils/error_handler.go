package serverutils

import (
	"errors"
	"strconv"

	"github.com/tomymaritano/viny-sub011/internal/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type errorBody struct {
	Error   string      `json:"error"`
	Message string      `json:"message,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// ErrorHandlerMiddleware catches errors returned by handlers and maps them
// onto the response taxonomy. Internals are logged, never sent to the client.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *AppError
		if errors.As(err, &appErr) {
			if appErr.Status == fiber.StatusTooManyRequests {
				if m, ok := appErr.Details.(fiber.Map); ok {
					if retry, ok := m["retryAfter"].(int); ok {
						ctx.Set(fiber.HeaderRetryAfter, strconv.Itoa(retry))
					}
				}
			}
			return ctx.Status(appErr.Status).JSON(errorBody{
				Error:   appErr.Code,
				Message: appErr.Message,
				Details: appErr.Details,
			})
		}

		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return ctx.Status(fiber.StatusBadRequest).JSON(errorBody{
				Error:   "validation_error",
				Message: "Invalid request payload",
				Details: FormatValidationErrors(validationErrs),
			})
		}

		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ctx.Status(fiber.StatusConflict).JSON(errorBody{
				Error:   "conflict",
				Message: "Resource already exists",
			})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(errorBody{
				Error:   "request_error",
				Message: fiberErr.Message,
			})
		}

		log.Error("http", "Unhandled error", map[string]interface{}{
			"path":   ctx.Path(),
			"method": ctx.Method(),
			"error":  err.Error(),
		})

		return ctx.Status(fiber.StatusInternalServerError).JSON(errorBody{
			Error:   "internal_error",
			Message: "Something went wrong",
		})
	}
}
