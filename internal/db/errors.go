package db

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/lib/pq"
)

// Failure kinds callers can branch on. Anything not wrapped in one of
// these is an internal storage failure.
var (
	// ErrUnavailable means the store could not be reached at all.
	ErrUnavailable = errors.New("storage unavailable")
	// ErrConflict means a uniqueness constraint was violated.
	ErrConflict = errors.New("conflict")
	// ErrNotFound means a lookup matched zero rows.
	ErrNotFound = errors.New("not found")
)

const pqUniqueViolation = "23505"

// isUniqueViolation recognizes unique-constraint failures from both the
// postgres driver used in production and the sqlite driver used in tests.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUniqueViolation
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return ErrNotFound
	case isUniqueViolation(err):
		return ErrConflict
	default:
		return err
	}
}
