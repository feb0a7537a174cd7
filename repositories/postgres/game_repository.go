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

// GameRepository implements the repositories.GameRepository interface
type GameRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *DB, logger *zap.Logger) repositories.GameRepository {
	return &GameRepository{
		db:     db,
		logger: logger,
	}
}

// Create creates a new game and fills in its generated id
func (r *GameRepository) Create(ctx context.Context, game *models.Game) error {
	query := `
		INSERT INTO games (name, genre, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	now := time.Now()
	err := r.db.QueryRowContext(ctx, query, game.Name, game.Genre, now, now).Scan(
		&game.ID,
		&game.CreatedAt,
		&game.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	r.logger.Debug("game created", zap.Int64("id", game.ID))
	return nil
}

// CreateBatch inserts games in a single transaction
func (r *GameRepository) CreateBatch(ctx context.Context, games []models.Game) error {
	if len(games) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO games (name, genre, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`
	now := time.Now()
	for _, game := range games {
		if _, err := tx.ExecContext(ctx, query, game.Name, game.Genre, now, now); err != nil {
			return fmt.Errorf("failed to insert game %q: %w", game.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit games: %w", err)
	}

	r.logger.Debug("games batch inserted", zap.Int("count", len(games)))
	return nil
}

// FindByID retrieves a game by id
func (r *GameRepository) FindByID(ctx context.Context, id int64) (*models.Game, error) {
	query := `
		SELECT id, name, genre, created_at, updated_at
		FROM games
		WHERE id = $1
	`

	game := &models.Game{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&game.ID,
		&game.Name,
		&game.Genre,
		&game.CreatedAt,
		&game.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// List retrieves one page of games ordered by id, plus the total count
func (r *GameRepository) List(ctx context.Context, req models.PageRequest) ([]models.Game, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM games`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count games: %w", err)
	}

	query := `
		SELECT id, name, genre, created_at, updated_at
		FROM games
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, query, req.Limit(), req.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query games: %w", err)
	}
	defer rows.Close()

	var games []models.Game
	for rows.Next() {
		var game models.Game
		if err := rows.Scan(&game.ID, &game.Name, &game.Genre, &game.CreatedAt, &game.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan game: %w", err)
		}
		games = append(games, game)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating game rows: %w", err)
	}

	return games, total, nil
}

// Update updates a game
func (r *GameRepository) Update(ctx context.Context, game *models.Game) error {
	query := `
		UPDATE games
		SET name = $2,
		    genre = $3,
		    updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, game.ID, game.Name, game.Genre, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repositories.ErrNotFound
	}

	r.logger.Debug("game updated", zap.Int64("id", game.ID))
	return nil
}

// Delete deletes a game
func (r *GameRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM games WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repositories.ErrNotFound
	}

	r.logger.Debug("game deleted", zap.Int64("id", id))
	return nil
}

// Count returns the number of games in the catalog
func (r *GameRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM games`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count games: %w", err)
	}
	return count, nil
}
