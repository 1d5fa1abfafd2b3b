package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// MsgInternalError is the body sent for unexpected failures.
const MsgInternalError = "Error interno del servidor"

// ErrorHandler converts errors returned by handlers into JSON responses.
// *fiber.Error keeps its status and message; anything else becomes a 500
// with a generic message and is logged.
func ErrorHandler(logger *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{
				"error": fiberErr.Message,
			})
		}

		logger.WithFields(logrus.Fields{
			"path":       c.Path(),
			"method":     c.Method(),
			"request_id": c.GetRespHeader(fiber.HeaderXRequestID),
		}).WithError(err).Error("Unhandled request error")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": MsgInternalError,
		})
	}
}
