// Copyright (c) 2026 Scribe. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of pgx used by repositories.
// Both *pgxpool.Pool and pgx.Tx satisfy this interface.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TxBeginner starts transactions. *pgxpool.Pool satisfies it.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Conn can run statements directly or open a transaction.
// *pgxpool.Pool satisfies it.
type Conn interface {
	DBTX
	TxBeginner
}

/*
WithTx begins a transaction, runs fn with the transactional handle, and then
commits on success or rolls back on error or panic. Panics are rethrown.

Typical use:

	err := postgres.WithTx(ctx, pool, func(ctx context.Context, tx postgres.DBTX) error {
	    _, err := tx.Exec(ctx, "DELETE FROM core.articletag WHERE articleid = $1", id)
	    return err
	})
*/
func WithTx(ctx context.Context, db TxBeginner, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("postgres: begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if commitErr := tx.Commit(ctx); commitErr != nil {
			err = fmt.Errorf("postgres: commit transaction: %w", commitErr)
		}
	}()

	err = fn(ctx, tx)
	return err
}
