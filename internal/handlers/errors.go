package handlers

import (
	"errors"

	"github.com/ad/go-quiz-backend/internal/db"
	"github.com/ad/go-quiz-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

// fail maps the repository/service failure kinds onto HTTP statuses:
// retry later (503), do not retry (400/404/409), report and alert (500).
func fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrValidation):
		status = fiber.StatusBadRequest
	case errors.Is(err, db.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, db.ErrConflict):
		status = fiber.StatusConflict
	case errors.Is(err, db.ErrUnavailable):
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
