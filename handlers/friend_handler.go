package handlers

import (
	"context"
	"net/http"

	"github.com/HBortolim/btg-challenge/models"
	"github.com/HBortolim/btg-challenge/utils"
	"go.uber.org/zap"
)

// FriendService is the friend management boundary consumed by the
// /friends endpoints
type FriendService interface {
	Create(ctx context.Context, name string) (*models.Friend, error)
	List(ctx context.Context, req models.PageRequest) (models.Page[models.Friend], error)
	Get(ctx context.Context, id int64) (*models.Friend, error)
	Update(ctx context.Context, id int64, name string) (*models.Friend, error)
	Delete(ctx context.Context, id int64) error
}

// FriendRequest is the request body for creating and updating friends
type FriendRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// FriendHandler serves the /friends endpoints
type FriendHandler struct {
	friends FriendService
	logger  *zap.Logger
}

// NewFriendHandler creates a new FriendHandler
func NewFriendHandler(friends FriendService, logger *zap.Logger) *FriendHandler {
	return &FriendHandler{friends: friends, logger: logger}
}

// Create handles POST /friends
func (h *FriendHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req FriendRequest
	if err := decodeAndValidate(r, &req); err != nil {
		HandleValidationError(w, err, h.logger)
		return
	}

	friend, err := h.friends.Create(r.Context(), req.Name)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	_ = utils.WriteCreated(w, friend)
}

// List handles GET /friends
func (h *FriendHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.friends.List(r.Context(), pageRequest(r))
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	_ = utils.WriteOK(w, page)
}

// Get handles GET /friends/{id}
func (h *FriendHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		HandleValidationError(w, err, h.logger)
		return
	}

	friend, err := h.friends.Get(r.Context(), id)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	_ = utils.WriteOK(w, friend)
}

// Update handles PUT /friends/{id}
func (h *FriendHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		HandleValidationError(w, err, h.logger)
		return
	}

	var req FriendRequest
	if err := decodeAndValidate(r, &req); err != nil {
		HandleValidationError(w, err, h.logger)
		return
	}

	friend, err := h.friends.Update(r.Context(), id, req.Name)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	_ = utils.WriteOK(w, friend)
}

// Delete handles DELETE /friends/{id}
func (h *FriendHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		HandleValidationError(w, err, h.logger)
		return
	}

	if err := h.friends.Delete(r.Context(), id); err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	utils.WriteNoContent(w)
}
