package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/wordle-teams/internal/domain/player"
	"github.com/riskibarqy/wordle-teams/internal/domain/score"
	"github.com/riskibarqy/wordle-teams/internal/domain/scoring"
	"github.com/riskibarqy/wordle-teams/internal/domain/team"
)

func TestTeamRepository_CreateAndGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewTeamRepository(nil)

	item := team.Team{
		ID:            "team-1",
		Name:          "Weekday Crew",
		ScoringSystem: scoring.SystemGuessCount,
		CreatorID:     "player-ada",
		PlayerIDs:     []string{"player-ada"},
	}
	require.NoError(t, repo.Create(ctx, item))

	got, ok, err := repo.GetByID(ctx, "team-1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, item, got)

	require.Error(t, repo.Create(ctx, item), "duplicate team id must be rejected")

	_, ok, err = repo.GetByID(ctx, "team-missing")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestTeamRepository_MembershipIsolation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewTeamRepository(SeedTeams())

	got, ok, err := repo.GetByID(ctx, SeedTeamIDWeekdayCrew)
	require.NoError(t, err)
	require.True(t, ok)

	// Mutating a returned copy must not leak into the stored team.
	got.PlayerIDs[0] = "player-mallory"

	again, _, err := repo.GetByID(ctx, SeedTeamIDWeekdayCrew)
	require.NoError(t, err)
	require.Equal(t, "player-ada", again.PlayerIDs[0])
}

func TestTeamRepository_AddPlayer(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewTeamRepository(SeedTeams())

	require.NoError(t, repo.AddPlayer(ctx, SeedTeamIDWeekdayCrew, "player-edsger"))

	got, _, err := repo.GetByID(ctx, SeedTeamIDWeekdayCrew)
	require.NoError(t, err)
	require.True(t, got.HasPlayer("player-edsger"))

	before := len(got.PlayerIDs)
	require.NoError(t, repo.AddPlayer(ctx, SeedTeamIDWeekdayCrew, "player-edsger"))
	after, _, err := repo.GetByID(ctx, SeedTeamIDWeekdayCrew)
	require.NoError(t, err)
	require.Len(t, after.PlayerIDs, before, "repeated add must be idempotent")

	require.Error(t, repo.AddPlayer(ctx, "team-missing", "player-edsger"))
}

func TestTeamRepository_ListByPlayer(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewTeamRepository(SeedTeams())

	teams, err := repo.ListByPlayer(ctx, "player-grace")
	require.NoError(t, err)
	require.Len(t, teams, 2)
	require.Equal(t, SeedTeamIDWeekdayCrew, teams[0].ID)
	require.Equal(t, SeedTeamIDEveryday, teams[1].ID)

	none, err := repo.ListByPlayer(ctx, "player-unknown")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestScoreRepository_InsertRejectsSameDay(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewScoreRepository(nil)

	entry := score.Entry{
		ID:       "entry-1",
		PlayerID: "player-ada",
		Date:     time.Date(2024, time.March, 4, 9, 30, 0, 0, time.UTC),
		Answer:   "crane",
		Guesses:  []string{"slate", "crane"},
	}
	require.NoError(t, repo.Insert(ctx, entry))

	dup := entry
	dup.ID = "entry-2"
	dup.Date = time.Date(2024, time.March, 4, 21, 0, 0, 0, time.UTC)
	err := repo.Insert(ctx, dup)
	require.ErrorIs(t, err, score.ErrDuplicateEntry)

	entries, err := repo.ListByPlayer(ctx, "player-ada")
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestScoreRepository_ListByPlayersReturnsOnlyKnown(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewScoreRepository(SeedScores())

	byPlayer, err := repo.ListByPlayers(ctx, []string{"player-ada", "player-alan", "player-unknown"})
	require.NoError(t, err)
	require.Len(t, byPlayer, 2)
	require.NotEmpty(t, byPlayer["player-ada"])
	require.Len(t, byPlayer["player-alan"], 2)
	require.NotContains(t, byPlayer, "player-unknown")
}

func TestScoreRepository_GetByPlayerAndDate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewScoreRepository(SeedScores())

	// Any time of day resolves to the same entry.
	got, ok, err := repo.GetByPlayerAndDate(ctx, "player-alan", time.Date(2024, time.March, 4, 23, 59, 0, 0, time.UTC))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "seed-alan-2024-03-04", got.ID)

	_, ok, err = repo.GetByPlayerAndDate(ctx, "player-alan", time.Date(2024, time.March, 6, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPlayerRepository_Upsert(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewPlayerRepository(SeedPlayers())

	require.NoError(t, repo.Upsert(ctx, player.Player{ID: "player-ada", FullName: "Ada King", Email: "ada@example.com"}))

	got, ok, err := repo.GetByID(ctx, "player-ada")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Ada King", got.FullName)

	players, err := repo.GetByIDs(ctx, []string{"player-ada", "player-unknown", "player-alan"})
	require.NoError(t, err)
	require.Len(t, players, 2)
}
