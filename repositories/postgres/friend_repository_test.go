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

func TestFriendRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFriendRepository(db, zap.NewNop())

	now := time.Now()
	mock.ExpectQuery("INSERT INTO friends").
		WithArgs("Rafael", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(7), now, now))

	friend := &models.Friend{Name: "Rafael"}
	require.NoError(t, repo.Create(context.Background(), friend))
	assert.Equal(t, int64(7), friend.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFriendRepository_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("scans the stored row", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewFriendRepository(db, zap.NewNop())

		mock.ExpectQuery("SELECT (.+) FROM friends").
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at", "updated_at"}).
				AddRow(int64(7), "Rafael", time.Now(), time.Now()))

		friend, err := repo.FindByID(ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, "Rafael", friend.Name)
	})

	t.Run("reports a missing row as not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewFriendRepository(db, zap.NewNop())

		mock.ExpectQuery("SELECT (.+) FROM friends").
			WithArgs(int64(404)).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.FindByID(ctx, 404)

		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})
}

func TestFriendRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFriendRepository(db, zap.NewNop())

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM friends`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(12)))
	mock.ExpectQuery("SELECT (.+) FROM friends").
		WithArgs(5, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at", "updated_at"}).
			AddRow(int64(11), "Ana", time.Now(), time.Now()).
			AddRow(int64(12), "Bruno", time.Now(), time.Now()))

	friends, total, err := repo.List(context.Background(), models.NewPageRequest(2, 5))

	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	require.Len(t, friends, 2)
	assert.Equal(t, "Ana", friends[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFriendRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("updates the row", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewFriendRepository(db, zap.NewNop())

		mock.ExpectExec("UPDATE friends").
			WithArgs(int64(7), "Ana Clara", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(ctx, &models.Friend{ID: 7, Name: "Ana Clara"})

		assert.NoError(t, err)
	})

	t.Run("reports zero affected rows as not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewFriendRepository(db, zap.NewNop())

		mock.ExpectExec("UPDATE friends").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(ctx, &models.Friend{ID: 404, Name: "Nobody"})

		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})
}

func TestFriendRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes the row", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewFriendRepository(db, zap.NewNop())

		mock.ExpectExec("DELETE FROM friends").
			WithArgs(int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, 7))
	})

	t.Run("reports zero affected rows as not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewFriendRepository(db, zap.NewNop())

		mock.ExpectExec("DELETE FROM friends").
			WithArgs(int64(404)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, 404), repositories.ErrNotFound)
	})
}
