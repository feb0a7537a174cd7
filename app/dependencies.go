// Package app wires the application dependencies together.
package app

import (
	"context"
	"fmt"

	"github.com/HBortolim/btg-challenge/config"
	"github.com/HBortolim/btg-challenge/handlers"
	"github.com/HBortolim/btg-challenge/middleware"
	"github.com/HBortolim/btg-challenge/repositories"
	"github.com/HBortolim/btg-challenge/repositories/postgres"
	"github.com/HBortolim/btg-challenge/security"
	"github.com/HBortolim/btg-challenge/services"
	"github.com/HBortolim/btg-challenge/token"
	"go.uber.org/zap"
)

// Dependencies holds all application dependencies. This is the
// central wiring point for dependency injection.
type Dependencies struct {
	// Infrastructure
	Config *config.Config
	DB     *postgres.DB
	Logger *zap.Logger

	// Repositories
	Users   repositories.UserRepository
	Friends repositories.FriendRepository
	Games   repositories.GameRepository
	Loans   repositories.LoanRepository

	// Auth
	Tokens         *token.Provider
	AuthMiddleware *middleware.AuthMiddleware

	// Services
	Auth            *services.AuthService
	FriendService   *services.FriendService
	GameService     *services.GameService
	LoanService     *services.LoanService
	CatalogImporter *services.CatalogImporter

	// Handlers
	AuthHandler   *handlers.AuthHandler
	FriendHandler *handlers.FriendHandler
	GameHandler   *handlers.GameHandler
	LoanHandler   *handlers.LoanHandler
}

// NewDependencies creates and wires up all application dependencies
func NewDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	db, err := postgres.NewDB(cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	deps.DB = db

	if err := db.InitSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	deps.Users = postgres.NewUserRepository(db, logger)
	deps.Friends = postgres.NewFriendRepository(db, logger)
	deps.Games = postgres.NewGameRepository(db, logger)
	deps.Loans = postgres.NewLoanRepository(db, logger)

	deps.Tokens = token.NewProvider([]byte(cfg.JWT.Secret), cfg.JWT.Expiration)
	deps.AuthMiddleware = middleware.NewAuthMiddleware(deps.Tokens, deps.Users, logger)

	hasher := security.NewBcryptHasher()
	authenticator := services.NewLocalAuthenticator(deps.Users, hasher, logger)
	deps.Auth = services.NewAuthService(deps.Users, hasher, authenticator, deps.Tokens, logger)
	deps.FriendService = services.NewFriendService(deps.Friends, logger)
	deps.GameService = services.NewGameService(deps.Games, logger)
	deps.LoanService = services.NewLoanService(deps.Loans, deps.Friends, deps.Games, logger)
	deps.CatalogImporter = services.NewCatalogImporter(deps.Games, cfg.GameAPI.URL, cfg.GameAPI.Timeout, logger)

	deps.AuthHandler = handlers.NewAuthHandler(deps.Auth, logger)
	deps.FriendHandler = handlers.NewFriendHandler(deps.FriendService, logger)
	deps.GameHandler = handlers.NewGameHandler(deps.GameService, logger)
	deps.LoanHandler = handlers.NewLoanHandler(deps.LoanService, logger)

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

// Close releases infrastructure resources
func (d *Dependencies) Close() error {
	if d.DB != nil {
		return d.DB.Close()
	}
	return nil
}
