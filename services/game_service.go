package services

import (
	"context"
	"errors"

	"github.com/HBortolim/btg-challenge/models"
	"github.com/HBortolim/btg-challenge/repositories"
	"go.uber.org/zap"
)

// GameService manages the game catalog
type GameService struct {
	games  repositories.GameRepository
	logger *zap.Logger
}

// NewGameService creates a new GameService
func NewGameService(games repositories.GameRepository, logger *zap.Logger) *GameService {
	return &GameService{games: games, logger: logger}
}

// Create persists a new game
func (s *GameService) Create(ctx context.Context, name, genre string) (*models.Game, error) {
	game := &models.Game{Name: name, Genre: genre}
	if err := s.games.Create(ctx, game); err != nil {
		return nil, WrapInternal("game persistence failed", err)
	}
	return game, nil
}

// List returns a page of games
func (s *GameService) List(ctx context.Context, req models.PageRequest) (models.Page[models.Game], error) {
	games, total, err := s.games.List(ctx, req)
	if err != nil {
		return models.Page[models.Game]{}, WrapInternal("game listing failed", err)
	}
	return models.NewPage(games, req, total), nil
}

// Get returns the game with the given id
func (s *GameService) Get(ctx context.Context, id int64) (*models.Game, error) {
	game, err := s.games.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrGameNotFound.WithDetail("id", id)
		}
		return nil, WrapInternal("game lookup failed", err)
	}
	return game, nil
}

// Update replaces the name and genre of an existing game
func (s *GameService) Update(ctx context.Context, id int64, name, genre string) (*models.Game, error) {
	game, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	game.Name = name
	game.Genre = genre
	if err := s.games.Update(ctx, game); err != nil {
		return nil, WrapInternal("game update failed", err)
	}
	return game, nil
}

// Delete removes the game with the given id
func (s *GameService) Delete(ctx context.Context, id int64) error {
	if err := s.games.Delete(ctx, id); err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return WrapInternal("game deletion failed", err)
	}
	return nil
}
