package db

import (
	"context"
	"database/sql"

	"github.com/ad/go-quiz-backend/internal/models"
)

type UserRepository struct {
	gateway *Gateway
	scheme  CredentialScheme
}

func NewUserRepository(gateway *Gateway, scheme CredentialScheme) *UserRepository {
	if scheme == nil {
		scheme = PlainScheme{}
	}
	return &UserRepository{gateway: gateway, scheme: scheme}
}

// Create inserts a new user with score 0 and a freshly generated session
// token, and returns the token. A duplicate login surfaces as ErrConflict.
func (r *UserRepository) Create(ctx context.Context, name, login, credential string) (string, error) {
	stored, err := r.scheme.Hash(credential)
	if err != nil {
		return "", err
	}
	token := NewSessionToken()

	err = r.gateway.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO users (name, login, credential, session_token, score)
			VALUES ($1, $2, $3, $4, 0)
		`, name, login, stored, token)
		return err
	})
	if err != nil {
		return "", err
	}
	return token, nil
}

// UpdateScore applies score = score + delta as a single atomic UPDATE
// filtered by token. The increment is computed by the storage engine, so
// concurrent calls on the same user never lose an update. An unknown
// token yields ErrNotFound.
func (r *UserRepository) UpdateScore(ctx context.Context, token string, delta int) error {
	return r.gateway.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE users SET score = score + $1 WHERE session_token = $2
		`, delta, token)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// Authenticate looks the user up by login, verifies the credential under
// the configured scheme, and returns the stored session token. Both an
// unknown login and a wrong credential yield ErrNotFound.
func (r *UserRepository) Authenticate(ctx context.Context, login, credential string) (string, error) {
	var token string
	err := r.gateway.WithTx(ctx, func(tx *sql.Tx) error {
		var stored string
		err := tx.QueryRowContext(ctx, `
			SELECT credential, session_token FROM users WHERE login = $1
		`, login).Scan(&stored, &token)
		if err != nil {
			return err
		}
		if !r.scheme.Verify(stored, credential) {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return token, nil
}

// ListByScore returns all users ordered by score descending. Only name
// and score leave the repository through this path.
func (r *UserRepository) ListByScore(ctx context.Context) ([]models.ScoreEntry, error) {
	var entries []models.ScoreEntry
	err := r.gateway.WithTx(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, `
			SELECT name, score FROM users ORDER BY score DESC
		`)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var entry models.ScoreEntry
			if err := rows.Scan(&entry.Name, &entry.Score); err != nil {
				return err
			}
			entries = append(entries, entry)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// GetByToken returns the user owning the given session token.
func (r *UserRepository) GetByToken(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	err := r.gateway.WithTx(ctx, func(tx *sql.Tx) error {
		return tx.QueryRowContext(ctx, `
			SELECT id, name, login, credential, session_token, score, created_at
			FROM users WHERE session_token = $1
		`, token).Scan(
			&user.ID, &user.Name, &user.Login, &user.Credential,
			&user.SessionToken, &user.Score, &user.CreatedAt,
		)
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}
