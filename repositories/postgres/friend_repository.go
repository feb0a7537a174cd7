package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/HBortolim/btg-challenge/models"
	"github.com/HBortolim/btg-challenge/repositories"
	"go.uber.org/zap"
)

// FriendRepository implements the repositories.FriendRepository interface
type FriendRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewFriendRepository creates a new friend repository
func NewFriendRepository(db *DB, logger *zap.Logger) repositories.FriendRepository {
	return &FriendRepository{
		db:     db,
		logger: logger,
	}
}

// Create creates a new friend and fills in its generated id
func (r *FriendRepository) Create(ctx context.Context, friend *models.Friend) error {
	query := `
		INSERT INTO friends (name, created_at, updated_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	now := time.Now()
	err := r.db.QueryRowContext(ctx, query, friend.Name, now, now).Scan(
		&friend.ID,
		&friend.CreatedAt,
		&friend.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create friend: %w", err)
	}

	r.logger.Debug("friend created", zap.Int64("id", friend.ID))
	return nil
}

// FindByID retrieves a friend by id
func (r *FriendRepository) FindByID(ctx context.Context, id int64) (*models.Friend, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM friends
		WHERE id = $1
	`

	friend := &models.Friend{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&friend.ID,
		&friend.Name,
		&friend.CreatedAt,
		&friend.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get friend: %w", err)
	}

	return friend, nil
}

// List retrieves one page of friends ordered by id, plus the total count
func (r *FriendRepository) List(ctx context.Context, req models.PageRequest) ([]models.Friend, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM friends`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count friends: %w", err)
	}

	query := `
		SELECT id, name, created_at, updated_at
		FROM friends
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, query, req.Limit(), req.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query friends: %w", err)
	}
	defer rows.Close()

	var friends []models.Friend
	for rows.Next() {
		var friend models.Friend
		if err := rows.Scan(&friend.ID, &friend.Name, &friend.CreatedAt, &friend.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan friend: %w", err)
		}
		friends = append(friends, friend)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating friend rows: %w", err)
	}

	return friends, total, nil
}

// Update updates a friend
func (r *FriendRepository) Update(ctx context.Context, friend *models.Friend) error {
	query := `
		UPDATE friends
		SET name = $2,
		    updated_at = $3
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, friend.ID, friend.Name, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update friend: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repositories.ErrNotFound
	}

	r.logger.Debug("friend updated", zap.Int64("id", friend.ID))
	return nil
}

// Delete deletes a friend
func (r *FriendRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM friends WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete friend: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repositories.ErrNotFound
	}

	r.logger.Debug("friend deleted", zap.Int64("id", id))
	return nil
}
