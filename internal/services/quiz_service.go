package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ad/go-quiz-backend/internal/db"
	"github.com/ad/go-quiz-backend/internal/models"
	"github.com/go-playground/validator/v10"
)

// ErrValidation marks a malformed request. No store access is attempted
// once a request fails validation.
var ErrValidation = errors.New("invalid request")

type QuestionPayload struct {
	Text               string   `json:"text" validate:"required"`
	CorrectAnswerIndex *int     `json:"correctAnswerIndex,omitempty"`
	Explanation        *string  `json:"explanation,omitempty"`
	Alternatives       []string `json:"alternatives" validate:"dive,required"`
}

type QuizService struct {
	repo     *db.QuestionRepository
	validate *validator.Validate
}

func NewQuizService(repo *db.QuestionRepository) *QuizService {
	return &QuizService{
		repo:     repo,
		validate: validator.New(),
	}
}

// CreateQuestions creates one question aggregate per payload, each in its
// own transaction, and returns the created questions with assigned ids.
// An empty payload list is a client error.
func (s *QuizService) CreateQuestions(ctx context.Context, payloads []QuestionPayload) ([]*models.Question, error) {
	if len(payloads) == 0 {
		return nil, fmt.Errorf("%w: request carries no question", ErrValidation)
	}

	questions := make([]*models.Question, 0, len(payloads))
	for i, payload := range payloads {
		if err := s.validate.Struct(payload); err != nil {
			return nil, fmt.Errorf("%w: question %d: %v", ErrValidation, i, err)
		}

		question := &models.Question{
			Text:               payload.Text,
			CorrectAnswerIndex: payload.CorrectAnswerIndex,
			Explanation:        payload.Explanation,
			Alternatives:       payload.Alternatives,
		}
		if !question.HasValidAnswerIndex() {
			return nil, fmt.Errorf("%w: question %d: correctAnswerIndex %d out of range",
				ErrValidation, i, *payload.CorrectAnswerIndex)
		}
		questions = append(questions, question)
	}

	created := make([]*models.Question, 0, len(questions))
	for _, question := range questions {
		result, err := s.repo.Create(ctx, question)
		if err != nil {
			return nil, err
		}
		created = append(created, result)
	}
	return created, nil
}

func (s *QuizService) ListQuestions(ctx context.Context) ([]*models.Question, error) {
	return s.repo.List(ctx)
}

func (s *QuizService) DeleteQuestion(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: question id must be positive", ErrValidation)
	}
	return s.repo.Delete(ctx, id)
}
