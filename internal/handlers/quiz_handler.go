package handlers

import (
	"fmt"
	"strconv"

	"github.com/ad/go-quiz-backend/internal/models"
	"github.com/ad/go-quiz-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type QuizHandler struct {
	svc *services.QuizService
}

func NewQuizHandler(svc *services.QuizService) *QuizHandler {
	return &QuizHandler{svc: svc}
}

func (h *QuizHandler) Register(app *fiber.App) {
	app.Post("/questions", h.create)
	app.Get("/questions", h.list)
	app.Delete("/questions/:id", h.delete)
}

func (h *QuizHandler) create(c *fiber.Ctx) error {
	var payloads []services.QuestionPayload
	if err := c.BodyParser(&payloads); err != nil {
		return fail(c, fmt.Errorf("%w: %v", services.ErrValidation, err))
	}

	created, err := h.svc.CreateQuestions(c.UserContext(), payloads)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *QuizHandler) list(c *fiber.Ctx) error {
	questions, err := h.svc.ListQuestions(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	if questions == nil {
		questions = []*models.Question{}
	}
	return c.JSON(questions)
}

func (h *QuizHandler) delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return fail(c, fmt.Errorf("%w: bad question id", services.ErrValidation))
	}

	if err := h.svc.DeleteQuestion(c.UserContext(), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{})
}
