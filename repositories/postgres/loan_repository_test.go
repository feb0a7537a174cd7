package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/HBortolim/btg-challenge/models"
	"github.com/HBortolim/btg-challenge/repositories"
)

func TestLoanRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLoanRepository(db, zap.NewNop())

	loanDate := time.Now().Truncate(24 * time.Hour)
	mock.ExpectQuery("INSERT INTO loans").
		WithArgs(int64(1), int64(2), loanDate, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(9)))

	loan := &models.Loan{FriendID: 1, GameID: 2, LoanDate: loanDate}
	require.NoError(t, repo.Create(context.Background(), loan))
	assert.Equal(t, int64(9), loan.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoanRepository_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("scans an open loan with a null return date", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewLoanRepository(db, zap.NewNop())

		mock.ExpectQuery("SELECT (.+) FROM loans").
			WithArgs(int64(9)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "friend_id", "game_id", "loan_date", "return_date"}).
				AddRow(int64(9), int64(1), int64(2), time.Now(), nil))

		loan, err := repo.FindByID(ctx, 9)

		require.NoError(t, err)
		assert.False(t, loan.Returned())
	})

	t.Run("scans a closed loan", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewLoanRepository(db, zap.NewNop())

		returned := time.Now()
		mock.ExpectQuery("SELECT (.+) FROM loans").
			WithArgs(int64(9)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "friend_id", "game_id", "loan_date", "return_date"}).
				AddRow(int64(9), int64(1), int64(2), time.Now().AddDate(0, 0, -7), returned))

		loan, err := repo.FindByID(ctx, 9)

		require.NoError(t, err)
		assert.True(t, loan.Returned())
	})

	t.Run("reports a missing row as not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewLoanRepository(db, zap.NewNop())

		mock.ExpectQuery("SELECT (.+) FROM loans").
			WithArgs(int64(404)).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.FindByID(ctx, 404)

		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})
}

func TestLoanRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("persists the return date", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewLoanRepository(db, zap.NewNop())

		returned := time.Now().Truncate(24 * time.Hour)
		loan := &models.Loan{ID: 9, FriendID: 1, GameID: 2, LoanDate: returned.AddDate(0, 0, -7), ReturnDate: &returned}

		mock.ExpectExec("UPDATE loans").
			WithArgs(int64(9), int64(1), int64(2), loan.LoanDate, returned).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Update(ctx, loan))
	})

	t.Run("reports zero affected rows as not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewLoanRepository(db, zap.NewNop())

		mock.ExpectExec("UPDATE loans").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(ctx, &models.Loan{ID: 404, FriendID: 1, GameID: 2, LoanDate: time.Now()})

		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})
}
