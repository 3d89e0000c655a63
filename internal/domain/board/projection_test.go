package board

import (
	"reflect"
	"testing"
	"time"

	"github.com/riskibarqy/wordle-teams/internal/domain/player"
	"github.com/riskibarqy/wordle-teams/internal/domain/score"
	"github.com/riskibarqy/wordle-teams/internal/domain/scoring"
	"github.com/riskibarqy/wordle-teams/internal/domain/team"
)

func weekdayTeam() team.Team {
	return team.Team{
		ID:            "team-1",
		Name:          "Weekday Crew",
		PlayWeekends:  false,
		ScoringSystem: scoring.SystemGuessCount,
		CreatorID:     "player-1",
		PlayerIDs:     []string{"player-1", "player-2"},
	}
}

func march2024() scoring.Month {
	return scoring.Month{Year: 2024, Month: time.March}
}

func solveEntries(month scoring.Month, playerID string, days ...int) []score.Entry {
	entries := make([]score.Entry, 0, len(days))
	for _, day := range days {
		entries = append(entries, score.Entry{
			ID:       "entry",
			PlayerID: playerID,
			Date:     month.Date(day),
			Answer:   "crane",
			Guesses:  []string{"slate", "brine", "crane"},
		})
	}
	return entries
}

func TestProjectColumnLayout(t *testing.T) {
	t.Parallel()

	month := march2024()
	projection, err := Project(weekdayTeam(), nil, month, scoring.DefaultMaxGuesses)
	if err != nil {
		t.Fatalf("project: %v", err)
	}

	if len(projection.Columns) != month.Days()+2 {
		t.Fatalf("unexpected column count: got=%d want=%d", len(projection.Columns), month.Days()+2)
	}

	first := projection.Columns[0]
	if first.ID != ColumnPlayerName || first.Pin != PinLeft || !first.Permanent || !first.Visible {
		t.Fatalf("unexpected leading column: %+v", first)
	}

	last := projection.Columns[len(projection.Columns)-1]
	if last.ID != ColumnMonthTotal || last.Pin != PinRight || !last.Permanent || !last.Visible {
		t.Fatalf("unexpected trailing column: %+v", last)
	}

	for i := 1; i <= month.Days(); i++ {
		column := projection.Columns[i]
		if column.Day != i {
			t.Fatalf("day columns must be in day order: index %d has day %d", i, column.Day)
		}
	}
}

func TestProjectWeekendVisibility(t *testing.T) {
	t.Parallel()

	month := march2024()
	projection, err := Project(weekdayTeam(), nil, month, scoring.DefaultMaxGuesses)
	if err != nil {
		t.Fatalf("project: %v", err)
	}

	for _, column := range projection.Columns {
		if column.Day == 0 {
			continue
		}
		wantVisible := !month.IsWeekend(column.Day)
		if column.Visible != wantVisible {
			t.Fatalf("day %d visibility: got=%t want=%t", column.Day, column.Visible, wantVisible)
		}
	}
}

func TestProjectWeekendColumnsVisibleWhenTeamPlaysWeekends(t *testing.T) {
	t.Parallel()

	item := weekdayTeam()
	item.PlayWeekends = true
	projection, err := Project(item, nil, march2024(), scoring.DefaultMaxGuesses)
	if err != nil {
		t.Fatalf("project: %v", err)
	}

	for _, column := range projection.Columns {
		if !column.Visible {
			t.Fatalf("column %s must be visible for weekend teams", column.ID)
		}
	}
}

func TestProjectRows(t *testing.T) {
	t.Parallel()

	month := march2024()
	histories := []PlayerHistory{
		{
			Player:  player.Player{ID: "player-1", FullName: "Ada Lovelace"},
			Entries: solveEntries(month, "player-1", 4, 5, 6),
		},
		{
			Player: player.Player{ID: "player-2", FullName: "Alan Turing"},
		},
	}

	projection, err := Project(weekdayTeam(), histories, month, scoring.DefaultMaxGuesses)
	if err != nil {
		t.Fatalf("project: %v", err)
	}

	if len(projection.Rows) != 2 {
		t.Fatalf("unexpected row count: got=%d want=2", len(projection.Rows))
	}

	ada := projection.Rows[0]
	if ada.PlayerName != "Ada Lovelace" || ada.Total != 9 {
		t.Fatalf("unexpected first row: %+v", ada)
	}
	if ada.TotalScore() != scoring.Points(9) {
		t.Fatalf("unexpected total score: %+v", ada.TotalScore())
	}

	alan := projection.Rows[1]
	if alan.Total != 0 {
		t.Fatalf("no-entry total: got=%d want=0", alan.Total)
	}
	if alan.TotalScore() != scoring.Absent() {
		t.Fatalf("no-entry player must read absent, got %+v", alan.TotalScore())
	}
}

func TestProjectIdempotent(t *testing.T) {
	t.Parallel()

	month := march2024()
	histories := []PlayerHistory{
		{
			Player:  player.Player{ID: "player-1", FullName: "Ada Lovelace"},
			Entries: solveEntries(month, "player-1", 4, 5),
		},
	}

	first, err := Project(weekdayTeam(), histories, month, scoring.DefaultMaxGuesses)
	if err != nil {
		t.Fatalf("first project: %v", err)
	}
	second, err := Project(weekdayTeam(), histories, month, scoring.DefaultMaxGuesses)
	if err != nil {
		t.Fatalf("second project: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical inputs must project structurally equal tables")
	}
}

func TestProjectRejectsInvalidInputs(t *testing.T) {
	t.Parallel()

	if _, err := Project(weekdayTeam(), nil, scoring.Month{}, scoring.DefaultMaxGuesses); err == nil {
		t.Fatal("expected invalid month error")
	}

	item := weekdayTeam()
	item.ScoringSystem = scoring.System("golf")
	if _, err := Project(item, nil, march2024(), scoring.DefaultMaxGuesses); err == nil {
		t.Fatal("expected invalid system error")
	}
}
