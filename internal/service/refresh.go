package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/omarshaarawi/repowatch/internal/models"
	"github.com/omarshaarawi/repowatch/internal/repository/memory"
)

type Searcher interface {
	SearchRepositories(ctx context.Context) ([]models.Repository, error)
}

// RefreshService pulls the current result set and installs it as the live
// snapshot. A failed refresh leaves the previous snapshot in place.
type RefreshService struct {
	api   Searcher
	repo  *memory.Repository
	clock clockwork.Clock
}

func NewRefreshService(api Searcher, repo *memory.Repository, clock clockwork.Clock) *RefreshService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &RefreshService{api: api, repo: repo, clock: clock}
}

func (s *RefreshService) Refresh(ctx context.Context) (*models.Snapshot, error) {
	runID := uuid.NewString()
	slog.Info("Fetching fresh data from GitHub", "run", runID)

	repositories, err := s.api.SearchRepositories(ctx)
	if err != nil {
		return nil, fmt.Errorf("refresh %s: %w", runID, err)
	}

	snapshot := models.NewSnapshot(s.clock.Now().UTC(), repositories)
	s.repo.SaveSnapshot(snapshot)

	slog.Info("Cache updated",
		"run", runID,
		"count", snapshot.Count(),
		"lastUpdated", snapshot.CapturedAt.Format(models.TimestampFormat),
	)
	return snapshot, nil
}
