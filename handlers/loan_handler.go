package handlers

import (
	"context"
	"net/http"

	"github.com/HBortolim/btg-challenge/models"
	"github.com/HBortolim/btg-challenge/utils"
	"go.uber.org/zap"
)

// LoanService is the lending boundary consumed by the /loans endpoints
type LoanService interface {
	Create(ctx context.Context, friendID, gameID int64) (*models.Loan, error)
	List(ctx context.Context, req models.PageRequest) (models.Page[models.Loan], error)
	Return(ctx context.Context, id int64) (*models.Loan, error)
}

// LoanRequest is the request body for opening a loan
type LoanRequest struct {
	FriendID int64 `json:"friendId" validate:"required,gt=0"`
	GameID   int64 `json:"gameId" validate:"required,gt=0"`
}

// LoanHandler serves the /loans endpoints
type LoanHandler struct {
	loans  LoanService
	logger *zap.Logger
}

// NewLoanHandler creates a new LoanHandler
func NewLoanHandler(loans LoanService, logger *zap.Logger) *LoanHandler {
	return &LoanHandler{loans: loans, logger: logger}
}

// Create handles POST /loans
func (h *LoanHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req LoanRequest
	if err := decodeAndValidate(r, &req); err != nil {
		HandleValidationError(w, err, h.logger)
		return
	}

	loan, err := h.loans.Create(r.Context(), req.FriendID, req.GameID)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	_ = utils.WriteCreated(w, loan)
}

// List handles GET /loans
func (h *LoanHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.loans.List(r.Context(), pageRequest(r))
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	_ = utils.WriteOK(w, page)
}

// Return handles PUT /loans/{id}/return
func (h *LoanHandler) Return(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		HandleValidationError(w, err, h.logger)
		return
	}

	loan, err := h.loans.Return(r.Context(), id)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	_ = utils.WriteOK(w, loan)
}
