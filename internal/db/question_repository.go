package db

import (
	"context"
	"database/sql"

	"github.com/ad/go-quiz-backend/internal/models"
)

type QuestionRepository struct {
	gateway *Gateway
}

func NewQuestionRepository(gateway *Gateway) *QuestionRepository {
	return &QuestionRepository{gateway: gateway}
}

// Create inserts the question and its alternatives as one atomic write:
// parent row first, then one child row per alternative in caller order.
// If any statement fails nothing is committed.
func (r *QuestionRepository) Create(ctx context.Context, question *models.Question) (*models.Question, error) {
	created := *question
	err := r.gateway.WithTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			INSERT INTO questions (text, correct_answer_index, explanation)
			VALUES ($1, $2, $3)
			RETURNING id
		`, question.Text, nullableInt(question.CorrectAnswerIndex), nullableString(question.Explanation)).Scan(&created.ID)
		if err != nil {
			return err
		}

		for position, alternative := range question.Alternatives {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO alternatives (question_id, position, alternative)
				VALUES ($1, $2, $3)
			`, created.ID, position, alternative); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// List joins questions with their alternatives in one query and groups the
// rows by question id, preserving first-seen order. The join is a LEFT
// JOIN so a question without alternatives still appears, with an empty
// alternatives sequence.
func (r *QuestionRepository) List(ctx context.Context) ([]*models.Question, error) {
	var questions []*models.Question
	err := r.gateway.WithTx(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, `
			SELECT q.id, q.text, q.correct_answer_index, q.explanation, a.alternative
			FROM questions q
			LEFT JOIN alternatives a ON a.question_id = q.id
			ORDER BY q.id, a.position
		`)
		if err != nil {
			return err
		}
		defer rows.Close()

		var current *models.Question
		for rows.Next() {
			var (
				id          int64
				text        string
				answerIndex sql.NullInt64
				explanation sql.NullString
				alternative sql.NullString
			)
			if err := rows.Scan(&id, &text, &answerIndex, &explanation, &alternative); err != nil {
				return err
			}

			if current == nil || current.ID != id {
				current = &models.Question{
					ID:           id,
					Text:         text,
					Alternatives: []string{},
				}
				if answerIndex.Valid {
					v := int(answerIndex.Int64)
					current.CorrectAnswerIndex = &v
				}
				if explanation.Valid {
					v := explanation.String
					current.Explanation = &v
				}
				questions = append(questions, current)
			}

			if alternative.Valid {
				current.Alternatives = append(current.Alternatives, alternative.String)
			}
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// Delete removes the question row; child alternatives go with it via the
// schema's ON DELETE CASCADE. Deleting an unknown id is a no-op.
func (r *QuestionRepository) Delete(ctx context.Context, id int64) error {
	return r.gateway.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `DELETE FROM questions WHERE id = $1`, id)
		return err
	})
}

func nullableInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullableString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}
