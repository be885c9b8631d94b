package presenters

import (
	"moodbite/domain"

	"github.com/gofiber/fiber/v2"
)

func SuccessResponse(c *fiber.Ctx, data any, statusCode int, message string) error {
	return c.Status(statusCode).JSON(domain.Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	var detail any
	if err != nil {
		detail = err.Error()
	}
	return c.Status(statusCode).JSON(domain.Response{
		Status:  false,
		Message: message,
		Error:   detail,
	})
}
