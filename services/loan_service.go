package services

import (
	"context"
	"errors"
	"time"

	"github.com/HBortolim/btg-challenge/models"
	"github.com/HBortolim/btg-challenge/repositories"
	"go.uber.org/zap"
)

// LoanService manages loans of games to friends
type LoanService struct {
	loans   repositories.LoanRepository
	friends repositories.FriendRepository
	games   repositories.GameRepository
	logger  *zap.Logger
}

// NewLoanService creates a new LoanService
func NewLoanService(
	loans repositories.LoanRepository,
	friends repositories.FriendRepository,
	games repositories.GameRepository,
	logger *zap.Logger,
) *LoanService {
	return &LoanService{
		loans:   loans,
		friends: friends,
		games:   games,
		logger:  logger,
	}
}

// Create opens a loan of a game to a friend, dated today. Both
// referenced records must exist.
func (s *LoanService) Create(ctx context.Context, friendID, gameID int64) (*models.Loan, error) {
	friend, err := s.friends.FindByID(ctx, friendID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrFriendNotFound.WithDetail("id", friendID)
		}
		return nil, WrapInternal("friend lookup failed", err)
	}

	game, err := s.games.FindByID(ctx, gameID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrGameNotFound.WithDetail("id", gameID)
		}
		return nil, WrapInternal("game lookup failed", err)
	}

	loan := &models.Loan{
		FriendID: friend.ID,
		GameID:   game.ID,
		LoanDate: time.Now().Truncate(24 * time.Hour),
	}
	if err := s.loans.Create(ctx, loan); err != nil {
		return nil, WrapInternal("loan persistence failed", err)
	}

	s.logger.Info("loan created",
		zap.Int64("loan_id", loan.ID),
		zap.Int64("friend_id", friend.ID),
		zap.Int64("game_id", game.ID))
	return loan, nil
}

// List returns a page of loans
func (s *LoanService) List(ctx context.Context, req models.PageRequest) (models.Page[models.Loan], error) {
	loans, total, err := s.loans.List(ctx, req)
	if err != nil {
		return models.Page[models.Loan]{}, WrapInternal("loan listing failed", err)
	}
	return models.NewPage(loans, req, total), nil
}

// Return closes the loan with the given id, dating the return today
func (s *LoanService) Return(ctx context.Context, id int64) (*models.Loan, error) {
	loan, err := s.loans.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrLoanNotFound.WithDetail("id", id)
		}
		return nil, WrapInternal("loan lookup failed", err)
	}

	returned := time.Now().Truncate(24 * time.Hour)
	loan.ReturnDate = &returned
	if err := s.loans.Update(ctx, loan); err != nil {
		return nil, WrapInternal("loan update failed", err)
	}

	s.logger.Info("loan returned", zap.Int64("loan_id", loan.ID))
	return loan, nil
}
