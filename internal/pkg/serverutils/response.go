package serverutils

import (
	"errors"

	"mindwell-be/internal/pkg/apperror"
	"mindwell-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

func ErrorResponse(message string) fiber.Map {
	return fiber.Map{"error": message}
}

func MessageResponse(message string) fiber.Map {
	return fiber.Map{"message": message}
}

// ErrorHandler renders every error returned by a handler as {"error": "..."}.
// Application errors keep their message and status, fiber errors keep their
// status, anything else is logged and reported as a 500.
func ErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		var appErr *apperror.Error
		if errors.As(err, &appErr) {
			if appErr.Status() >= fiber.StatusInternalServerError {
				log.Error("HTTP", appErr.Message, map[string]interface{}{
					"error":  err.Error(),
					"kind":   string(appErr.Kind),
					"method": ctx.Method(),
					"path":   ctx.Path(),
				})
			}
			return ctx.Status(appErr.Status()).JSON(ErrorResponse(appErr.Message))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
		}

		log.Error("HTTP", "Unhandled error", map[string]interface{}{
			"error":  err.Error(),
			"method": ctx.Method(),
			"path":   ctx.Path(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("internal server error"))
	}
}
