package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	_ "modernc.org/sqlite"
)

func TestWithTxCommitsOnSuccess(t *testing.T) {
	gateway, _ := setupQuizTestDB(t)
	ctx := context.Background()

	err := gateway.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO questions (text) VALUES ($1)`, "kept")
		return err
	})
	if err != nil {
		t.Fatalf("WithTx failed: %v", err)
	}

	var count int
	if err := gateway.DB().QueryRow(`SELECT COUNT(*) FROM questions`).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("Expected the committed row to be visible, got %d rows", count)
	}
}

func TestWithTxRollsBackOnError(t *testing.T) {
	gateway, _ := setupQuizTestDB(t)
	ctx := context.Background()

	boom := fmt.Errorf("mid-transaction failure")
	err := gateway.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO questions (text) VALUES ($1)`, "discarded"); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Expected the callback error back, got %v", err)
	}

	var count int
	if err := gateway.DB().QueryRow(`SELECT COUNT(*) FROM questions`).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Errorf("Expected rollback to discard the row, got %d rows", count)
	}
}

func TestWithTxClassifiesNoRows(t *testing.T) {
	gateway, _ := setupQuizTestDB(t)
	ctx := context.Background()

	err := gateway.WithTx(ctx, func(tx *sql.Tx) error {
		var id int64
		return tx.QueryRowContext(ctx, `SELECT id FROM questions WHERE id = $1`, 99).Scan(&id)
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for zero rows, got %v", err)
	}
}

func TestWithTxReportsUnavailable(t *testing.T) {
	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	sqlDB.Close()

	gateway := NewGateway(sqlDB)
	err = gateway.WithTx(context.Background(), func(tx *sql.Tx) error { return nil })
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Expected ErrUnavailable on a closed pool, got %v", err)
	}
}
