package middleware

import (
	"encoding/json"

	"productos/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const (
	localsValidationErrors = "validation_errors"
	localsRequestBody      = "request_body"
)

// MsgInvalidJSON is returned when the request body is not a JSON object.
const MsgInvalidJSON = "El cuerpo de la petición no es un JSON válido"

// Validate runs the chain against the request and accumulates its failures
// in the context. It never rejects the request itself; HandleInputErrors does.
func Validate(chain validation.Chain) fiber.Handler {
	return func(c *fiber.Ctx) error {
		body, err := RequestBody(c)
		if err != nil {
			return err
		}

		errs := chain.Run(validation.Request{
			Params: c.AllParams(),
			Body:   body,
		})
		if len(errs) > 0 {
			c.Locals(localsValidationErrors, append(InputErrors(c), errs...))
		}
		return c.Next()
	}
}

// HandleInputErrors responds 400 with every accumulated validation failure,
// or passes control to the next handler when there are none.
func HandleInputErrors(c *fiber.Ctx) error {
	errs := InputErrors(c)
	if len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": errs,
		})
	}
	return c.Next()
}

// InputErrors returns the validation failures recorded for the request.
func InputErrors(c *fiber.Ctx) validation.Errors {
	errs, _ := c.Locals(localsValidationErrors).(validation.Errors)
	return errs
}

// RequestBody decodes the JSON body once per request. An empty body is
// treated as an empty object.
func RequestBody(c *fiber.Ctx) (map[string]any, error) {
	if body, ok := c.Locals(localsRequestBody).(map[string]any); ok {
		return body, nil
	}

	body := map[string]any{}
	if raw := c.Body(); len(raw) > 0 {
		if err := json.Unmarshal(raw, &body); err != nil || body == nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, MsgInvalidJSON)
		}
	}
	c.Locals(localsRequestBody, body)
	return body, nil
}
