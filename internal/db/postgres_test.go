package db

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTx(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(mock pgxmock.PgxPoolIface)
		fn      TransactionFn
		wantErr error
	}{
		{
			name: "commit on success",
			mock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM questions").WithArgs(int64(1)).WillReturnResult(pgxmock.NewResult("DELETE", 2))
				mock.ExpectCommit()
			},
			fn: func(ctx context.Context, tx pgx.Tx) error {
				_, err := tx.Exec(ctx, "DELETE FROM questions WHERE test_id = $1", int64(1))
				return err
			},
		},
		{
			name: "rollback on error",
			mock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			fn: func(ctx context.Context, tx pgx.Tx) error {
				return errors.New("boom")
			},
			wantErr: errors.New("boom"),
		},
		{
			name: "begin fails",
			mock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin().WillReturnError(errors.New("no connection"))
			},
			fn: func(ctx context.Context, tx pgx.Tx) error {
				t.Fatal("fn must not run")
				return nil
			},
			wantErr: errors.New("failed to begin transaction: no connection"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()
			tc.mock(mock)

			err = WithTx(context.Background(), mock, tc.fn)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.Equal(t, tc.wantErr.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestWithTx_RollbackOnPanic(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = WithTx(context.Background(), mock, func(ctx context.Context, tx pgx.Tx) error {
			panic("unexpected")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
