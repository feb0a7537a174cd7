package handlers

import (
	"context"
	"net/http"

	"github.com/HBortolim/btg-challenge/models"
	"github.com/HBortolim/btg-challenge/utils"
	"go.uber.org/zap"
)

// GameService is the catalog boundary consumed by the /games endpoints
type GameService interface {
	Create(ctx context.Context, name, genre string) (*models.Game, error)
	List(ctx context.Context, req models.PageRequest) (models.Page[models.Game], error)
	Get(ctx context.Context, id int64) (*models.Game, error)
	Update(ctx context.Context, id int64, name, genre string) (*models.Game, error)
	Delete(ctx context.Context, id int64) error
}

// GameRequest is the request body for creating and updating games
type GameRequest struct {
	Name  string `json:"name" validate:"required,max=255"`
	Genre string `json:"genre" validate:"required,max=255"`
}

// GameHandler serves the /games endpoints
type GameHandler struct {
	games  GameService
	logger *zap.Logger
}

// NewGameHandler creates a new GameHandler
func NewGameHandler(games GameService, logger *zap.Logger) *GameHandler {
	return &GameHandler{games: games, logger: logger}
}

// Create handles POST /games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if err := decodeAndValidate(r, &req); err != nil {
		HandleValidationError(w, err, h.logger)
		return
	}

	game, err := h.games.Create(r.Context(), req.Name, req.Genre)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	_ = utils.WriteCreated(w, game)
}

// List handles GET /games
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.games.List(r.Context(), pageRequest(r))
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	_ = utils.WriteOK(w, page)
}

// Get handles GET /games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		HandleValidationError(w, err, h.logger)
		return
	}

	game, err := h.games.Get(r.Context(), id)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	_ = utils.WriteOK(w, game)
}

// Update handles PUT /games/{id}
func (h *GameHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		HandleValidationError(w, err, h.logger)
		return
	}

	var req GameRequest
	if err := decodeAndValidate(r, &req); err != nil {
		HandleValidationError(w, err, h.logger)
		return
	}

	game, err := h.games.Update(r.Context(), id, req.Name, req.Genre)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	_ = utils.WriteOK(w, game)
}

// Delete handles DELETE /games/{id}
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		HandleValidationError(w, err, h.logger)
		return
	}

	if err := h.games.Delete(r.Context(), id); err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	utils.WriteNoContent(w)
}
