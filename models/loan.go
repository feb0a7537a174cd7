package models

import "time"

// Loan records a game lent to a friend. ReturnDate is nil while the
// loan is still open.
type Loan struct {
	ID         int64      `json:"id" db:"id"`
	FriendID   int64      `json:"friendId" db:"friend_id"`
	GameID     int64      `json:"gameId" db:"game_id"`
	LoanDate   time.Time  `json:"loanDate" db:"loan_date"`
	ReturnDate *time.Time `json:"returnDate,omitempty" db:"return_date"`
}

// TableName returns the table name for the Loan model
func (Loan) TableName() string {
	return "loans"
}

// Returned reports whether the loan has been closed
func (l *Loan) Returned() bool {
	return l.ReturnDate != nil
}
