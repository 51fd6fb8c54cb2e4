package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"cityinfo/internal/apiversion"
	"cityinfo/internal/auth"
	"cityinfo/internal/http/middleware"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_ID", "UNAUTHORIZED")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: middleware.RequestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
// Sentinel errors from the auth and apiversion packages are mapped first; any other
// error falls back to its *fiber.Error status, or 500.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	if log == nil {
		log = zap.NewNop()
	}

	return func(c *fiber.Ctx, err error) error {
		switch {
		case errors.Is(err, auth.ErrMissingToken):
			c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
			return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
		case errors.Is(err, auth.ErrInvalidToken):
			c.Set(fiber.HeaderWWWAuthenticate, `Bearer error="invalid_token"`)
			return writeError(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "invalid or expired token")
		case errors.Is(err, apiversion.ErrUnsupported):
			return writeError(c, fiber.StatusBadRequest, "UNSUPPORTED_API_VERSION", "requested api version is not supported")
		case errors.Is(err, apiversion.ErrInvalid):
			return writeError(c, fiber.StatusBadRequest, "INVALID_API_VERSION", "invalid api version")
		}

		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		default:
			log.Error("unhandled request error",
				zap.String("request_id", middleware.RequestIDFromCtx(c)),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
