package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/wordle-teams/internal/domain/score"
	"github.com/riskibarqy/wordle-teams/internal/domain/team"
	"github.com/riskibarqy/wordle-teams/internal/domain/user"
	idgen "github.com/riskibarqy/wordle-teams/internal/platform/id"
	"github.com/riskibarqy/wordle-teams/internal/platform/logging"
)

type ScoreService struct {
	scoreRepo   score.Repository
	teamRepo    team.Repository
	idGenerator idgen.Generator
	invalidator BoardInvalidator
	maxGuesses  int
	now         func() time.Time
	logger      *logging.Logger
}

func NewScoreService(
	scoreRepo score.Repository,
	teamRepo team.Repository,
	idGenerator idgen.Generator,
	invalidator BoardInvalidator,
	maxGuesses int,
	logger *logging.Logger,
) *ScoreService {
	if logger == nil {
		logger = logging.Default()
	}

	return &ScoreService{
		scoreRepo:   scoreRepo,
		teamRepo:    teamRepo,
		idGenerator: idGenerator,
		invalidator: invalidator,
		maxGuesses:  maxGuesses,
		now:         time.Now,
		logger:      logger,
	}
}

type SubmitScoreInput struct {
	Date    time.Time
	Answer  string
	Guesses []string
}

// Submit records the caller's entry for one date. Entries are immutable:
// a second submission for the same date is rejected.
func (s *ScoreService) Submit(ctx context.Context, principal user.Principal, input SubmitScoreInput) (score.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoreService.Submit")
	defer span.End()

	if principal.UserID == "" {
		return score.Entry{}, fmt.Errorf("%w: missing principal", ErrUnauthorized)
	}

	entryID, err := s.idGenerator.NewID()
	if err != nil {
		return score.Entry{}, fmt.Errorf("generate entry id: %w", err)
	}

	entry := score.Entry{
		ID:        entryID,
		PlayerID:  principal.UserID,
		Date:      input.Date,
		Answer:    strings.TrimSpace(input.Answer),
		Guesses:   input.Guesses,
		CreatedAt: s.now().UTC(),
	}
	if err := entry.Validate(s.maxGuesses); err != nil {
		return score.Entry{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.scoreRepo.Insert(ctx, entry); err != nil {
		if errors.Is(err, score.ErrDuplicateEntry) {
			return score.Entry{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return score.Entry{}, fmt.Errorf("insert daily score: %w", err)
	}

	s.invalidateBoards(ctx, principal.UserID)

	s.logger.InfoContext(ctx, "daily score submitted",
		"player_id", entry.PlayerID,
		"date", entry.Day().Format("2006-01-02"),
		"guesses", len(entry.Guesses),
		"solved", entry.Solved(),
	)

	return entry, nil
}

func (s *ScoreService) ListMine(ctx context.Context, principal user.Principal) ([]score.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoreService.ListMine")
	defer span.End()

	if principal.UserID == "" {
		return nil, fmt.Errorf("%w: missing principal", ErrUnauthorized)
	}

	items, err := s.scoreRepo.ListByPlayer(ctx, principal.UserID)
	if err != nil {
		return nil, fmt.Errorf("list daily scores: %w", err)
	}

	return items, nil
}

// invalidateBoards drops memoized projections for every team the player
// belongs to. Invalidation failure only degrades freshness, so it is
// logged and not returned.
func (s *ScoreService) invalidateBoards(ctx context.Context, playerID string) {
	if s.invalidator == nil || s.teamRepo == nil {
		return
	}

	teams, err := s.teamRepo.ListByPlayer(ctx, playerID)
	if err != nil {
		s.logger.WarnContext(ctx, "list teams for board invalidation failed", "error", err, "player_id", playerID)
		return
	}
	for _, item := range teams {
		s.invalidator.InvalidateTeam(ctx, item.ID)
	}
}
