package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/wordle-teams/internal/domain/scoring"
	"github.com/riskibarqy/wordle-teams/internal/domain/team"
	"github.com/riskibarqy/wordle-teams/internal/platform/logging"
)

const defaultWarmWorkers = 4

// WarmService precomputes current-month board projections for every team
// so the first read after a cache expiry hits the memo instead of the
// repositories.
type WarmService struct {
	teamRepo team.Repository
	boards   *BoardService
	workers  int
	interval time.Duration
	now      func() time.Time
	logger   *logging.Logger
}

func NewWarmService(
	teamRepo team.Repository,
	boards *BoardService,
	workers int,
	interval time.Duration,
	logger *logging.Logger,
) *WarmService {
	if logger == nil {
		logger = logging.Default()
	}
	if workers < 1 {
		workers = defaultWarmWorkers
	}

	return &WarmService{
		teamRepo: teamRepo,
		boards:   boards,
		workers:  workers,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

// RunOnce warms every team's current-month projection through a bounded
// worker pool and returns the number of teams warmed.
func (s *WarmService) RunOnce(ctx context.Context) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WarmService.RunOnce")
	defer span.End()

	teams, err := s.teamRepo.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("list teams for warmup: %w", err)
	}
	if len(teams) == 0 {
		return 0, nil
	}

	workerPool, err := ants.NewPool(s.workers)
	if err != nil {
		return 0, fmt.Errorf("create warm worker pool: %w", err)
	}
	defer workerPool.Release()

	month := scoring.MonthOf(s.now().UTC())

	var wg sync.WaitGroup
	warmed := 0
	var mu sync.Mutex
	for _, item := range teams {
		teamID := item.ID
		wg.Add(1)
		submitErr := workerPool.Submit(func() {
			defer wg.Done()
			if _, err := s.boards.Projection(ctx, teamID, month); err != nil {
				s.logger.WarnContext(ctx, "board warmup failed", "team_id", teamID, "error", err)
				return
			}
			mu.Lock()
			warmed++
			mu.Unlock()
		})
		if submitErr != nil {
			wg.Done()
			s.logger.WarnContext(ctx, "board warmup submit failed", "team_id", teamID, "error", submitErr)
		}
	}
	wg.Wait()

	return warmed, nil
}

// Start runs RunOnce on a fixed interval until the context is cancelled.
func (s *WarmService) Start(ctx context.Context) {
	if s.interval <= 0 {
		return
	}

	ticker := time.NewTicker(s.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				warmed, err := s.RunOnce(ctx)
				if err != nil {
					s.logger.WarnContext(ctx, "board warmup run failed", "error", err)
					continue
				}
				s.logger.DebugContext(ctx, "board warmup run finished", "teams_warmed", warmed)
			}
		}
	}()
}
