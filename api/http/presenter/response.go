package presenter

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse carries the message twice: "message" for API clients and
// "error" for the web client.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message, Error: message})
}

// ErrorHandler renders errors that reach Fiber, including the ones it raises
// before any handler runs (body limit, unknown route), as ErrorResponse.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code, message := fiber.StatusInternalServerError, "internal error"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code, message = fe.Code, fe.Message
	}
	return Error(c, code, message)
}
