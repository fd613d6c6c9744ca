package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxManager_Commit(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTxManager(db)
	repo := NewThinkRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`SELECT pg_advisory_xact_lock`).WithArgs(int64(1)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		_, isTx := QuerierFromCtx(ctx, db).(*sqlx.Tx)
		assert.True(t, isTx)
		return repo.LockUser(ctx, 1)
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxManager_RollbackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTxManager(db)
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxManager_RollbackOnPanic(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTxManager(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = tm.RunInTx(context.Background(), func(ctx context.Context) error { panic("bad") })
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuerierFromCtx_OutsideTx(t *testing.T) {
	db, _ := newMockDB(t)
	assert.Equal(t, Querier(db), QuerierFromCtx(context.Background(), db))
}
