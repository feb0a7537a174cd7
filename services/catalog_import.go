package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/HBortolim/btg-challenge/models"
	"github.com/HBortolim/btg-challenge/repositories"
	"go.uber.org/zap"
)

// maxImportedGames caps how many catalog entries are taken per import
const maxImportedGames = 20

// catalogGame is the shape of one entry in the external PlayStation
// catalog feed
type catalogGame struct {
	ID    int      `json:"id"`
	Name  string   `json:"name"`
	Genre []string `json:"genre"`
}

// CatalogImporter seeds the games table from an external catalog feed
// on startup. Import is best effort: failures are logged, never fatal.
type CatalogImporter struct {
	games      repositories.GameRepository
	url        string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewCatalogImporter creates a new importer for the given feed URL
func NewCatalogImporter(games repositories.GameRepository, url string, timeout time.Duration, logger *zap.Logger) *CatalogImporter {
	return &CatalogImporter{
		games:      games,
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Populate fetches the catalog and batch-inserts up to
// maxImportedGames entries. It is a no-op when the games table
// already has rows or no feed URL is configured.
func (s *CatalogImporter) Populate(ctx context.Context) error {
	if s.url == "" {
		s.logger.Info("no game catalog URL configured, skipping population")
		return nil
	}

	count, err := s.games.Count(ctx)
	if err != nil {
		return WrapInternal("game count failed", err)
	}
	if count > 0 {
		s.logger.Info("games already exist in the database, skipping population",
			zap.Int64("count", count))
		return nil
	}

	entries, err := s.fetch(ctx)
	if err != nil {
		return err
	}

	games := make([]models.Game, 0, maxImportedGames)
	for _, entry := range entries {
		if len(games) == maxImportedGames {
			break
		}
		if strings.TrimSpace(entry.Name) == "" || len(entry.Genre) == 0 {
			continue
		}
		games = append(games, models.Game{
			Name:  entry.Name,
			Genre: strings.Join(entry.Genre, ", "),
		})
	}

	if len(games) == 0 {
		s.logger.Info("game catalog returned no usable entries")
		return nil
	}

	if err := s.games.CreateBatch(ctx, games); err != nil {
		return WrapInternal("game batch insert failed", err)
	}

	s.logger.Info("populated games from external catalog", zap.Int("count", len(games)))
	return nil
}

func (s *CatalogImporter) fetch(ctx context.Context) ([]catalogGame, error) {
	s.logger.Info("fetching games from external catalog", zap.String("url", s.url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, NewDomainError(ErrorTypeExternal, "create catalog request", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, ErrCatalogUnavailable.WithDetail("cause", err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewDomainError(ErrorTypeExternal, "read catalog response", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, NewDomainError(ErrorTypeExternal,
			fmt.Sprintf("catalog fetch failed: status %d", resp.StatusCode), nil)
	}

	var entries []catalogGame
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, NewDomainError(ErrorTypeExternal, "parse catalog response", err)
	}

	return entries, nil
}
