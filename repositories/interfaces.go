package repositories

import (
	"context"
	"errors"

	"github.com/HBortolim/btg-challenge/models"
)

// Sentinel errors returned by repository implementations. Services map
// these onto their own error taxonomy.
var (
	// ErrNotFound indicates the requested record does not exist
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate indicates a unique constraint was violated
	ErrDuplicate = errors.New("duplicate record")
)

// UserRepository manages principal records
type UserRepository interface {
	// Create persists a new user. Returns ErrDuplicate when the
	// username is already taken.
	Create(ctx context.Context, user *models.User) error

	// FindByUsername returns the user with the given username, or
	// ErrNotFound.
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

// FriendRepository manages friend records
type FriendRepository interface {
	Create(ctx context.Context, friend *models.Friend) error
	FindByID(ctx context.Context, id int64) (*models.Friend, error)
	List(ctx context.Context, req models.PageRequest) ([]models.Friend, int64, error)
	Update(ctx context.Context, friend *models.Friend) error
	Delete(ctx context.Context, id int64) error
}

// GameRepository manages game records
type GameRepository interface {
	Create(ctx context.Context, game *models.Game) error
	CreateBatch(ctx context.Context, games []models.Game) error
	FindByID(ctx context.Context, id int64) (*models.Game, error)
	List(ctx context.Context, req models.PageRequest) ([]models.Game, int64, error)
	Update(ctx context.Context, game *models.Game) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// LoanRepository manages loan records
type LoanRepository interface {
	Create(ctx context.Context, loan *models.Loan) error
	FindByID(ctx context.Context, id int64) (*models.Loan, error)
	List(ctx context.Context, req models.PageRequest) ([]models.Loan, int64, error)
	Update(ctx context.Context, loan *models.Loan) error
}
