// Copyright (c) 2026 Scribe. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/scribe/internal/platform/postgres"
)

// fakeTx records the terminal call. Unused pgx.Tx methods panic via the nil embed.
type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
	commitErr  error
}

func (tx *fakeTx) Commit(context.Context) error {
	tx.committed = true
	return tx.commitErr
}

func (tx *fakeTx) Rollback(context.Context) error {
	tx.rolledBack = true
	return nil
}

type fakeBeginner struct {
	tx       *fakeTx
	beginErr error
}

func (beginner *fakeBeginner) Begin(context.Context) (pgx.Tx, error) {
	if beginner.beginErr != nil {
		return nil, beginner.beginErr
	}
	return beginner.tx, nil
}

/*
TestWithTx covers commit, rollback and panic propagation.
*/
func TestWithTx(t *testing.T) {
	ctx := context.Background()

	t.Run("commit_on_success", func(t *testing.T) {
		beginner := &fakeBeginner{tx: &fakeTx{}}
		err := postgres.WithTx(ctx, beginner, func(context.Context, postgres.DBTX) error { return nil })

		require.NoError(t, err)
		assert.True(t, beginner.tx.committed)
		assert.False(t, beginner.tx.rolledBack)
	})

	t.Run("rollback_on_error", func(t *testing.T) {
		beginner := &fakeBeginner{tx: &fakeTx{}}
		boom := errors.New("boom")
		err := postgres.WithTx(ctx, beginner, func(context.Context, postgres.DBTX) error { return boom })

		assert.ErrorIs(t, err, boom)
		assert.False(t, beginner.tx.committed)
		assert.True(t, beginner.tx.rolledBack)
	})

	t.Run("commit_failure_surfaces", func(t *testing.T) {
		commitErr := errors.New("serialization failure")
		beginner := &fakeBeginner{tx: &fakeTx{commitErr: commitErr}}
		err := postgres.WithTx(ctx, beginner, func(context.Context, postgres.DBTX) error { return nil })

		assert.ErrorIs(t, err, commitErr)
	})

	t.Run("rollback_and_rethrow_on_panic", func(t *testing.T) {
		beginner := &fakeBeginner{tx: &fakeTx{}}
		assert.PanicsWithValue(t, "kaboom", func() {
			_ = postgres.WithTx(ctx, beginner, func(context.Context, postgres.DBTX) error { panic("kaboom") })
		})
		assert.True(t, beginner.tx.rolledBack)
	})

	t.Run("begin_failure", func(t *testing.T) {
		beginner := &fakeBeginner{beginErr: errors.New("pool closed")}
		called := false
		err := postgres.WithTx(ctx, beginner, func(context.Context, postgres.DBTX) error {
			called = true
			return nil
		})

		assert.Error(t, err)
		assert.False(t, called)
	})
}
