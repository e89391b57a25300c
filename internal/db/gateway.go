package db

import (
	"context"
	"database/sql"
	"fmt"
)

// Gateway owns the connection pool and the transaction boundaries. Every
// repository operation runs inside exactly one WithTx scope.
type Gateway struct {
	db *sql.DB
}

func NewGateway(db *sql.DB) *Gateway {
	return &Gateway{db: db}
}

// WithTx opens a transaction, invokes fn with it, and commits if fn
// returns nil. Any error from fn rolls back every statement issued inside
// the scope, so partial aggregate writes are never visible to readers.
func (g *Gateway) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := g.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if err := fn(tx); err != nil {
		tx.Rollback()
		return classify(err)
	}

	if err := tx.Commit(); err != nil {
		return classify(err)
	}
	return nil
}

func (g *Gateway) Close() error {
	return g.db.Close()
}

func (g *Gateway) DB() *sql.DB {
	return g.db
}
