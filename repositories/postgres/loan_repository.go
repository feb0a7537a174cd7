package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/HBortolim/btg-challenge/models"
	"github.com/HBortolim/btg-challenge/repositories"
	"go.uber.org/zap"
)

// LoanRepository implements the repositories.LoanRepository interface
type LoanRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewLoanRepository creates a new loan repository
func NewLoanRepository(db *DB, logger *zap.Logger) repositories.LoanRepository {
	return &LoanRepository{
		db:     db,
		logger: logger,
	}
}

// Create creates a new loan and fills in its generated id
func (r *LoanRepository) Create(ctx context.Context, loan *models.Loan) error {
	query := `
		INSERT INTO loans (friend_id, game_id, loan_date, return_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		loan.FriendID,
		loan.GameID,
		loan.LoanDate,
		loan.ReturnDate,
	).Scan(&loan.ID)
	if err != nil {
		return fmt.Errorf("failed to create loan: %w", err)
	}

	r.logger.Debug("loan created", zap.Int64("id", loan.ID))
	return nil
}

// FindByID retrieves a loan by id
func (r *LoanRepository) FindByID(ctx context.Context, id int64) (*models.Loan, error) {
	query := `
		SELECT id, friend_id, game_id, loan_date, return_date
		FROM loans
		WHERE id = $1
	`

	loan := &models.Loan{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&loan.ID,
		&loan.FriendID,
		&loan.GameID,
		&loan.LoanDate,
		&loan.ReturnDate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get loan: %w", err)
	}

	return loan, nil
}

// List retrieves one page of loans ordered by id, plus the total count
func (r *LoanRepository) List(ctx context.Context, req models.PageRequest) ([]models.Loan, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM loans`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count loans: %w", err)
	}

	query := `
		SELECT id, friend_id, game_id, loan_date, return_date
		FROM loans
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, query, req.Limit(), req.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query loans: %w", err)
	}
	defer rows.Close()

	var loans []models.Loan
	for rows.Next() {
		var loan models.Loan
		if err := rows.Scan(&loan.ID, &loan.FriendID, &loan.GameID, &loan.LoanDate, &loan.ReturnDate); err != nil {
			return nil, 0, fmt.Errorf("failed to scan loan: %w", err)
		}
		loans = append(loans, loan)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating loan rows: %w", err)
	}

	return loans, total, nil
}

// Update updates a loan
func (r *LoanRepository) Update(ctx context.Context, loan *models.Loan) error {
	query := `
		UPDATE loans
		SET friend_id = $2,
		    game_id = $3,
		    loan_date = $4,
		    return_date = $5
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		loan.ID,
		loan.FriendID,
		loan.GameID,
		loan.LoanDate,
		loan.ReturnDate,
	)
	if err != nil {
		return fmt.Errorf("failed to update loan: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repositories.ErrNotFound
	}

	r.logger.Debug("loan updated", zap.Int64("id", loan.ID))
	return nil
}
