package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeTx struct {
	commitErr  error
	committed  bool
	rolledBack bool
}

func (f *fakeTx) Commit(context.Context) error {
	f.committed = true
	return f.commitErr
}

func (f *fakeTx) Rollback(context.Context) error {
	f.rolledBack = true
	return nil
}

func TestCloseTxCommitErrorSurfaces(t *testing.T) {
	tx := &fakeTx{commitErr: errors.New("connection reset")}

	err := closeTx(context.Background(), tx, nil)

	assert.ErrorContains(t, err, "connection reset")
	assert.True(t, tx.committed)
	assert.False(t, tx.rolledBack)
}

func TestCloseTxRollsBackKeepingOperationError(t *testing.T) {
	opErr := errors.New("insert failed")
	tx := &fakeTx{commitErr: errors.New("must not be seen")}

	err := closeTx(context.Background(), tx, opErr)

	assert.Equal(t, opErr, err)
	assert.True(t, tx.rolledBack)
	assert.False(t, tx.committed)
}

func TestCloseTxCleanCommit(t *testing.T) {
	tx := &fakeTx{}

	assert.NoError(t, closeTx(context.Background(), tx, nil))
	assert.True(t, tx.committed)
}
