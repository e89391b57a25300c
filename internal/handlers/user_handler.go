package handlers

import (
	"fmt"

	"github.com/ad/go-quiz-backend/internal/models"
	"github.com/ad/go-quiz-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	svc *services.UserService
}

func NewUserHandler(svc *services.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) Register(app *fiber.App) {
	app.Post("/users", h.create)
	app.Post("/login", h.authenticate)
	app.Post("/score", h.updateScore)
	app.Get("/leaderboard", h.leaderboard)
}

func (h *UserHandler) create(c *fiber.Ctx) error {
	var req services.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fmt.Errorf("%w: %v", services.ErrValidation, err))
	}

	token, err := h.svc.CreateUser(c.UserContext(), req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"sessionToken": token})
}

func (h *UserHandler) authenticate(c *fiber.Ctx) error {
	var req services.AuthenticateRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fmt.Errorf("%w: %v", services.ErrValidation, err))
	}

	token, err := h.svc.Authenticate(c.UserContext(), req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"sessionToken": token})
}

func (h *UserHandler) updateScore(c *fiber.Ctx) error {
	var req services.UpdateScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fmt.Errorf("%w: %v", services.ErrValidation, err))
	}

	if err := h.svc.UpdateScore(c.UserContext(), req); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{})
}

func (h *UserHandler) leaderboard(c *fiber.Ctx) error {
	entries, err := h.svc.ListByScore(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	if entries == nil {
		entries = []models.ScoreEntry{}
	}
	return c.JSON(entries)
}
