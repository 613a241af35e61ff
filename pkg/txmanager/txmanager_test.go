package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type refusingDB struct {
	opts *sql.TxOptions
}

func (d *refusingDB) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (d *refusingDB) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (d *refusingDB) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func (d *refusingDB) BeginTx(_ context.Context, opts *sql.TxOptions) (*sql.Tx, error) {
	d.opts = opts
	return nil, errors.New("too many connections")
}

func TestDoSerializableBeginFailure(t *testing.T) {
	db := &refusingDB{}
	called := false

	err := NewTransactionManager(db).DoSerializable(context.Background(), func(context.Context) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, ErrBeginTx)
	assert.False(t, called)
	require.NotNil(t, db.opts)
	assert.Equal(t, sql.LevelSerializable, db.opts.Isolation)
}

func TestGetExecutorWithoutTransaction(t *testing.T) {
	db := &refusingDB{}
	ctx := context.Background()

	assert.False(t, IsInTransaction(ctx))
	assert.Same(t, db, GetExecutor(ctx, db))
}
