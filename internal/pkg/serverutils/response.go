package serverutils

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kavia-common/personal-notes-manager-24022-24060/internal/pkg/apperr"
	"github.com/kavia-common/personal-notes-manager-24022-24060/internal/pkg/logger"
)

type SuccessEnvelope[T any] struct {
	Status string `json:"status"`
	Data   T      `json:"data"`
}

type ErrorEnvelope struct {
	Status    string `json:"status"`
	Code      string `json:"code"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

func SuccessResponse[T any](data T) SuccessEnvelope[T] {
	return SuccessEnvelope[T]{
		Status: "success",
		Data:   data,
	}
}

// ErrorHandlerMiddleware renders every error escaping a handler through the
// shared taxonomy. Messages of 5xx errors are replaced with a generic string;
// the cause is only logged.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		appErr := apperr.From(err)

		log.Error("http", "Request failed", map[string]interface{}{
			"status": appErr.StatusCode,
			"code":   appErr.Code,
			"path":   ctx.OriginalURL(),
			"method": ctx.Method(),
			"error":  err.Error(),
		})

		message := appErr.Message
		if appErr.StatusCode >= fiber.StatusInternalServerError {
			message = "Internal Server Error"
		}

		return ctx.Status(appErr.StatusCode).JSON(ErrorEnvelope{
			Status:    "error",
			Code:      appErr.Code,
			Message:   message,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// NotFoundHandler answers unmatched routes with the error envelope instead
// of Fiber's plain-text default.
func NotFoundHandler() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusNotFound).JSON(ErrorEnvelope{
			Status:    "error",
			Code:      apperr.CodeNotFound,
			Message:   "Route not found",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}
}
