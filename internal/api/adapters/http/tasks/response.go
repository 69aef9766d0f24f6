package tasks

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"taskhub/internal/api/app/validation"
)

// Вспомогательные функции формирования ответов об ошибках.

func sendErrorResponse(ctx fiber.Ctx, statusCode int, message string) error {
	if err := ctx.Status(statusCode).JSON(fiber.Map{
		"error": message,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

func sendValidationResponse(ctx fiber.Ctx, violations []validation.Violation) error {
	if err := ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"errors": violations,
	}); err != nil {
		return fmt.Errorf("error sending validation response: %w", err)
	}
	return nil
}
