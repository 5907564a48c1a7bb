package dbmetrics

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExecutor struct {
	name string
}

func (f *fakeExecutor) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (f *fakeExecutor) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (f *fakeExecutor) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}

type fakeTx struct {
	fakeExecutor
}

func (f *fakeTx) Commit() error   { return nil }
func (f *fakeTx) Rollback() error { return nil }

func TestGetExecutor(t *testing.T) {
	db := &fakeExecutor{name: "db"}
	tx := &fakeTx{fakeExecutor{name: "tx"}}

	ctx := context.Background()
	assert.Same(t, db, GetExecutor(ctx, db))
	assert.False(t, IsInTransaction(ctx))

	txCtx := WithTx(ctx, tx)
	assert.Same(t, tx, GetExecutor(txCtx, db))
	assert.True(t, IsInTransaction(txCtx))
}

func TestOperation(t *testing.T) {
	assert.Equal(t, "select", operation("SELECT id FROM customers"))
	assert.Equal(t, "insert", operation("  insert into appointments"))
	assert.Equal(t, "commit", operation("COMMIT"))
	assert.Equal(t, "other", operation("WITH x AS (SELECT 1) SELECT * FROM x"))
	assert.Equal(t, "other", operation(""))
}
