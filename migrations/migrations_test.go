package migrations

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingExecutor struct {
	scripts []string
	err     error
}

func (r *recordingExecutor) ExecContext(_ context.Context, query string, _ ...interface{}) (sql.Result, error) {
	r.scripts = append(r.scripts, query)
	return nil, r.err
}

func (r *recordingExecutor) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, errors.New("not used")
}

func (r *recordingExecutor) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func TestApply_ExecutesEmbeddedSchema(t *testing.T) {
	exec := &recordingExecutor{}

	require.NoError(t, Apply(context.Background(), exec))
	require.Len(t, exec.scripts, 1)
	assert.Contains(t, exec.scripts[0], "CREATE TABLE IF NOT EXISTS appointments")
	assert.Contains(t, exec.scripts[0], "uq_appointments_active_start")
}

func TestApply_WrapsExecError(t *testing.T) {
	exec := &recordingExecutor{err: errors.New("connection refused")}

	err := Apply(context.Background(), exec)
	assert.ErrorIs(t, err, ErrApplyMigration)
	assert.Contains(t, err.Error(), "001_init.sql")
}
