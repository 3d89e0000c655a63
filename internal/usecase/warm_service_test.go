package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/wordle-teams/internal/domain/player"
	"github.com/riskibarqy/wordle-teams/internal/domain/scoring"
	"github.com/riskibarqy/wordle-teams/internal/domain/team"
	"github.com/riskibarqy/wordle-teams/internal/platform/cache"
)

func TestWarmServiceRunOnce(t *testing.T) {
	t.Parallel()

	second := team.Team{
		ID:            "team-2",
		Name:          "Everyday Guessers",
		PlayWeekends:  true,
		ScoringSystem: scoring.SystemBinary,
		CreatorID:     "player-1",
		PlayerIDs:     []string{"player-1"},
	}
	teamRepo := newStubTeamRepo(boardTestTeam(), second)
	playerRepo := newStubPlayerRepo(player.Player{ID: "player-1", FullName: "Ada Lovelace"})
	scoreRepo := newGatedScoreRepo()
	close(scoreRepo.firstRelease)
	scoreRepo.calls = 1

	memo := cache.NewStore(time.Minute)
	boards := NewBoardService(teamRepo, playerRepo, scoreRepo, memo, scoring.DefaultMaxGuesses, nil)
	warm := NewWarmService(teamRepo, boards, 2, 0, nil)

	warmed, err := warm.RunOnce(context.Background())
	if err != nil {
		t.Fatalf("run once: %v", err)
	}
	if warmed != 2 {
		t.Fatalf("unexpected warmed count: got=%d want=2", warmed)
	}

	// Reads after warmup hit the memo, not the repositories.
	loadsAfterWarm := scoreRepo.loadCalls
	month := scoring.MonthOf(time.Now().UTC())
	if _, err := boards.Projection(context.Background(), "team-1", month); err != nil {
		t.Fatalf("projection after warmup: %v", err)
	}
	if scoreRepo.loadCalls != loadsAfterWarm {
		t.Fatalf("warmed projection must not reload: before=%d after=%d", loadsAfterWarm, scoreRepo.loadCalls)
	}
}

func TestWarmServiceRunOnceEmpty(t *testing.T) {
	t.Parallel()

	boards := NewBoardService(newStubTeamRepo(), newStubPlayerRepo(), newGatedScoreRepo(), nil, scoring.DefaultMaxGuesses, nil)
	warm := NewWarmService(newStubTeamRepo(), boards, 2, 0, nil)

	warmed, err := warm.RunOnce(context.Background())
	if err != nil {
		t.Fatalf("run once: %v", err)
	}
	if warmed != 0 {
		t.Fatalf("unexpected warmed count: got=%d want=0", warmed)
	}
}
