package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/HBortolim/btg-challenge/models"
)

func TestGameRepository_CreateBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("inserts all games in one transaction", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewGameRepository(db, zap.NewNop())

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO games").
			WithArgs("Bloodborne", "Action RPG", sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("INSERT INTO games").
			WithArgs("Journey", "Adventure, Indie", sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(2, 1))
		mock.ExpectCommit()

		err := repo.CreateBatch(ctx, []models.Game{
			{Name: "Bloodborne", Genre: "Action RPG"},
			{Name: "Journey", Genre: "Adventure, Indie"},
		})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when an insert fails", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewGameRepository(db, zap.NewNop())

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO games").
			WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		err := repo.CreateBatch(ctx, []models.Game{{Name: "Bloodborne", Genre: "Action RPG"}})

		require.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty batch touches nothing", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewGameRepository(db, zap.NewNop())

		require.NoError(t, repo.CreateBatch(ctx, nil))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGameRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGameRepository(db, zap.NewNop())

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM games`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))
	mock.ExpectQuery("SELECT (.+) FROM games").
		WithArgs(20, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "genre", "created_at", "updated_at"}).
			AddRow(int64(1), "Journey", "Adventure", time.Now(), time.Now()))

	games, total, err := repo.List(context.Background(), models.NewPageRequest(0, 20))

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, games, 1)
	assert.Equal(t, "Journey", games[0].Name)
}

func TestGameRepository_Count(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGameRepository(db, zap.NewNop())

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM games`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(42)))

	count, err := repo.Count(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(42), count)
}
