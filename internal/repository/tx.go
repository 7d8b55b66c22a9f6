package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type txKey struct{}

// Transactor runs a function inside a READ COMMITTED transaction on the
// master. Capacity and ownership checks rely on the row locks taken by the
// FOR UPDATE lookups, not on the isolation level.
type Transactor struct {
	db *dbpg.DB
}

func NewTransactor(db *dbpg.DB) *Transactor {
	return &Transactor{db: db}
}

func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := txFrom(ctx); ok {
		return fn(ctx)
	}

	tx, err := t.db.Master.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func txFrom(ctx context.Context) (*sql.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(*sql.Tx)
	return tx, ok
}

// conn sends a statement through the transaction carried by ctx, or
// through the pool with retries when there is none. Statements inside a
// transaction are never retried.
type conn struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func newConn(db *dbpg.DB) conn {
	return conn{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (c conn) queryRow(ctx context.Context, query string, args ...any) (*sql.Row, error) {
	if tx, ok := txFrom(ctx); ok {
		return tx.QueryRowContext(ctx, query, args...), nil
	}
	return c.db.QueryRowWithRetry(ctx, c.strategy, query, args...)
}

func (c conn) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	if tx, ok := txFrom(ctx); ok {
		return tx.QueryContext(ctx, query, args...)
	}
	return c.db.QueryWithRetry(ctx, c.strategy, query, args...)
}
