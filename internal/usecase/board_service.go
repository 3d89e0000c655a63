package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/wordle-teams/internal/domain/board"
	"github.com/riskibarqy/wordle-teams/internal/domain/player"
	"github.com/riskibarqy/wordle-teams/internal/domain/score"
	"github.com/riskibarqy/wordle-teams/internal/domain/scoring"
	"github.com/riskibarqy/wordle-teams/internal/domain/team"
	"github.com/riskibarqy/wordle-teams/internal/platform/cache"
	"github.com/riskibarqy/wordle-teams/internal/platform/logging"
)

// BoardInvalidator drops memoized board projections for one team.
type BoardInvalidator interface {
	InvalidateTeam(ctx context.Context, teamID string)
}

// BoardService builds monthly board projections and owns the interactive
// table state over the most recent selection. Selection changes carry a
// generation counter: when two selections race, only the newest one may
// install its projection and results of superseded fetches are silently
// discarded (last-selection-wins).
type BoardService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
	scoreRepo  score.Repository
	memo       *cache.Store
	maxGuesses int
	logger     *logging.Logger

	generation atomic.Uint64

	mu    sync.Mutex
	table *board.Table
}

func NewBoardService(
	teamRepo team.Repository,
	playerRepo player.Repository,
	scoreRepo score.Repository,
	memo *cache.Store,
	maxGuesses int,
	logger *logging.Logger,
) *BoardService {
	if logger == nil {
		logger = logging.Default()
	}
	if maxGuesses <= 0 {
		maxGuesses = scoring.DefaultMaxGuesses
	}

	return &BoardService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		scoreRepo:  scoreRepo,
		memo:       memo,
		maxGuesses: maxGuesses,
		logger:     logger,
		table:      board.NewTable(),
	}
}

// Select switches the table to a new team/month selection. It returns the
// snapshot current after the call: the new projection when this selection
// is still the latest, or the newer selection's state when this one was
// superseded while its data was loading.
func (s *BoardService) Select(ctx context.Context, teamID string, month scoring.Month) (board.Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BoardService.Select")
	defer span.End()

	generation := s.generation.Add(1)

	projection, err := s.loadProjection(ctx, teamID, month)
	if err != nil {
		return board.Snapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if generation == s.generation.Load() {
		s.table.Apply(projection)
	} else {
		s.logger.DebugContext(ctx, "stale board selection discarded",
			"team_id", teamID,
			"month", month.String(),
		)
	}

	return s.table.Snapshot(), nil
}

// Projection builds (or returns the memoized) projection without touching
// the interactive table. Used by read-only consumers and the warmer.
func (s *BoardService) Projection(ctx context.Context, teamID string, month scoring.Month) (board.Projection, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BoardService.Projection")
	defer span.End()

	return s.loadProjection(ctx, teamID, month)
}

func (s *BoardService) Sort(column board.ColumnID, direction board.SortDirection) board.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table.Sort(column, direction)
	return s.table.Snapshot()
}

func (s *BoardService) SetFilter(column board.ColumnID, predicate board.Predicate) board.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table.SetFilter(column, predicate)
	return s.table.Snapshot()
}

func (s *BoardService) ClearFilter(column board.ColumnID) board.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table.ClearFilter(column)
	return s.table.Snapshot()
}

func (s *BoardService) TogglePin(column board.ColumnID, side board.PinSide) board.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table.TogglePin(column, side)
	return s.table.Snapshot()
}

func (s *BoardService) SetColumnVisible(column board.ColumnID, visible bool) board.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table.SetColumnVisible(column, visible)
	return s.table.Snapshot()
}

func (s *BoardService) SelectRows(playerIDs ...string) board.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table.SelectRows(playerIDs...)
	return s.table.Snapshot()
}

func (s *BoardService) Snapshot() board.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table.Snapshot()
}

// InvalidateTeam drops every memoized month for one team, forcing the
// next selection to rebuild from repositories.
func (s *BoardService) InvalidateTeam(ctx context.Context, teamID string) {
	if s.memo == nil {
		return
	}
	s.memo.DeletePrefix(ctx, boardMemoPrefix(teamID))
}

func (s *BoardService) loadProjection(ctx context.Context, teamID string, month scoring.Month) (board.Projection, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return board.Projection{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if err := month.Validate(); err != nil {
		return board.Projection{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return board.Projection{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return board.Projection{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	key := boardMemoKey(item, month)
	if s.memo == nil {
		return s.buildProjection(ctx, item, month)
	}

	value, err := s.memo.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return s.buildProjection(ctx, item, month)
	})
	if err != nil {
		return board.Projection{}, err
	}

	projection, ok := value.(board.Projection)
	if !ok {
		return board.Projection{}, fmt.Errorf("unexpected memo value type %T for key %s", value, key)
	}

	return projection, nil
}

func (s *BoardService) buildProjection(ctx context.Context, item team.Team, month scoring.Month) (board.Projection, error) {
	var players []player.Player
	var histories map[string][]score.Entry

	group := pool.New().WithErrors().WithContext(ctx)
	group.Go(func(ctx context.Context) error {
		loaded, err := s.playerRepo.GetByIDs(ctx, item.PlayerIDs)
		if err != nil {
			return fmt.Errorf("get team players: %w", err)
		}
		players = loaded
		return nil
	})
	group.Go(func(ctx context.Context) error {
		loaded, err := s.scoreRepo.ListByPlayers(ctx, item.PlayerIDs)
		if err != nil {
			return fmt.Errorf("list score histories: %w", err)
		}
		histories = loaded
		return nil
	})
	if err := group.Wait(); err != nil {
		return board.Projection{}, err
	}

	playerByID := make(map[string]player.Player, len(players))
	for _, member := range players {
		playerByID[member.ID] = member
	}

	// Rows follow the stored membership order.
	playerHistories := make([]board.PlayerHistory, 0, len(item.PlayerIDs))
	for _, playerID := range item.PlayerIDs {
		member, ok := playerByID[playerID]
		if !ok {
			continue
		}
		playerHistories = append(playerHistories, board.PlayerHistory{
			Player:  member,
			Entries: histories[playerID],
		})
	}

	projection, err := board.Project(item, playerHistories, month, s.maxGuesses)
	if err != nil {
		return board.Projection{}, fmt.Errorf("project board: %w", err)
	}

	return projection, nil
}

func boardMemoKey(item team.Team, month scoring.Month) string {
	return fmt.Sprintf("%s%s:%t:%s", boardMemoPrefix(item.ID), month.String(), item.PlayWeekends, item.ScoringSystem)
}

func boardMemoPrefix(teamID string) string {
	return "board:" + teamID + ":"
}
