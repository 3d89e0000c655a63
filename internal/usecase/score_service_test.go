package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/wordle-teams/internal/domain/user"
	"github.com/riskibarqy/wordle-teams/internal/infrastructure/repository/memory"
	idgen "github.com/riskibarqy/wordle-teams/internal/platform/id"
)

func TestScoreServiceSubmit(t *testing.T) {
	t.Parallel()

	scoreRepo := memory.NewScoreRepository(nil)
	teamRepo := newStubTeamRepo(boardTestTeam())
	invalidator := &countingInvalidator{}
	service := NewScoreService(scoreRepo, teamRepo, idgen.NewRandomGenerator(), invalidator, 6, nil)

	entry, err := service.Submit(context.Background(), adaPrincipal(), SubmitScoreInput{
		Date:    time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC),
		Answer:  "crane",
		Guesses: []string{"slate", "crane"},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if entry.ID == "" {
		t.Fatal("entry must have an id")
	}
	if !entry.Solved() {
		t.Fatal("entry must read as solved")
	}
	if len(invalidator.teams) != 1 || invalidator.teams[0] != "team-1" {
		t.Fatalf("submission must invalidate the player's team boards: %v", invalidator.teams)
	}
}

func TestScoreServiceSubmitDuplicateRejected(t *testing.T) {
	t.Parallel()

	scoreRepo := memory.NewScoreRepository(nil)
	service := NewScoreService(scoreRepo, newStubTeamRepo(), idgen.NewRandomGenerator(), nil, 6, nil)

	input := SubmitScoreInput{
		Date:    time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC),
		Answer:  "crane",
		Guesses: []string{"crane"},
	}

	if _, err := service.Submit(context.Background(), adaPrincipal(), input); err != nil {
		t.Fatalf("first submit: %v", err)
	}

	// Same date with a different time of day still collides.
	input.Date = time.Date(2024, time.March, 4, 21, 15, 0, 0, time.UTC)
	_, err := service.Submit(context.Background(), adaPrincipal(), input)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("duplicate submit: expected ErrInvalidInput, got %v", err)
	}
}

func TestScoreServiceSubmitValidation(t *testing.T) {
	t.Parallel()

	service := NewScoreService(memory.NewScoreRepository(nil), newStubTeamRepo(), idgen.NewRandomGenerator(), nil, 6, nil)
	ctx := context.Background()

	_, err := service.Submit(ctx, user.Principal{}, SubmitScoreInput{
		Date:    time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC),
		Answer:  "crane",
		Guesses: []string{"crane"},
	})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("missing principal: expected ErrUnauthorized, got %v", err)
	}

	_, err = service.Submit(ctx, adaPrincipal(), SubmitScoreInput{
		Date:    time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC),
		Answer:  "crane",
		Guesses: []string{"a", "b", "c", "d", "e", "f", "g"},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("too many guesses: expected ErrInvalidInput, got %v", err)
	}
}

func TestScoreServiceListMine(t *testing.T) {
	t.Parallel()

	scoreRepo := memory.NewScoreRepository(memory.SeedScores())
	service := NewScoreService(scoreRepo, newStubTeamRepo(), idgen.NewRandomGenerator(), nil, 6, nil)

	entries, err := service.ListMine(context.Background(), user.Principal{UserID: "player-alan"})
	if err != nil {
		t.Fatalf("list mine: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("unexpected entry count: got=%d want=2", len(entries))
	}

	if _, err := service.ListMine(context.Background(), user.Principal{}); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("missing principal: expected ErrUnauthorized, got %v", err)
	}
}
