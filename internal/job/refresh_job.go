package job

import (
	"context"

	"go.uber.org/zap"

	"taskboard-client/internal/metrics"
	"taskboard-client/internal/service"
)

// RefreshJob re-fetches the board and favorite lists on a schedule.
// Deletes cascaded on the server are not mirrored locally, so caches go
// stale until the next fetch; this job bounds how long that lasts.
type RefreshJob struct {
	services *service.Services
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewRefreshJob creates a new RefreshJob instance
func NewRefreshJob(services *service.Services, m *metrics.Metrics, logger *zap.Logger) *RefreshJob {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RefreshJob{
		services: services,
		metrics:  m,
		logger:   logger,
	}
}

// Run executes one refresh pass. Failures are logged and do not stop
// the schedule; each pass is a fresh pair of bulk fetches.
func (j *RefreshJob) Run() {
	ctx := context.Background()

	j.logger.Info("Starting background refresh")
	if j.metrics != nil {
		j.metrics.RefreshRunsTotal.Inc()
	}

	if res := j.services.Boards.FetchBoards(ctx); res.IsOk() {
		j.logger.Info("Refreshed boards", zap.Int("count", len(res.Value())))
	} else {
		j.logger.Warn("Board refresh failed", zap.String("message", res.Err().Message))
	}

	if res := j.services.Favorites.FetchFavorites(ctx); res.IsOk() {
		j.logger.Info("Refreshed favorites", zap.Int("count", len(res.Value())))
	} else {
		j.logger.Warn("Favorite refresh failed", zap.String("message", res.Err().Message))
	}
}
