package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"mcpsite/internal/http/middleware"
)

// errorPayload is the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// statusErrors maps statuses the global handler can see to a code and a safe message.
var statusErrors = map[int]errorEnvelope{
	fiber.StatusBadRequest:       {"BAD_REQUEST", "bad request"},
	fiber.StatusNotFound:         {"NOT_FOUND", "resource not found"},
	fiber.StatusMethodNotAllowed: {"METHOD_NOT_ALLOWED", "method not allowed"},
	fiber.StatusRequestTimeout:   {"TIMEOUT", "request timed out"},
}

var internalError = errorEnvelope{"INTERNAL_ERROR", "internal server error"}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	rid, _ := c.Locals(middleware.RequestIDLocalKey).(string)
	return rid
}

// writeError writes a standardized JSON error response without leaking internal errors.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(errorPayload{
		RequestID: requestIDFromCtx(c),
		Error:     errorEnvelope{Code: code, Message: message},
	})
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
// Anything that is not a *fiber.Error is reported as a 500; unmapped statuses
// keep their code but carry the generic internal error body.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		env, ok := statusErrors[status]
		if !ok {
			env = internalError
		}
		return writeError(c, status, env.Code, env.Message)
	}
}
