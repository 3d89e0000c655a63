package board

import (
	"fmt"
	"strconv"

	"github.com/riskibarqy/wordle-teams/internal/domain/player"
	"github.com/riskibarqy/wordle-teams/internal/domain/score"
	"github.com/riskibarqy/wordle-teams/internal/domain/scoring"
	"github.com/riskibarqy/wordle-teams/internal/domain/team"
)

type PinSide string

const (
	PinNone  PinSide = ""
	PinLeft  PinSide = "left"
	PinRight PinSide = "right"
)

type ColumnID string

const (
	ColumnPlayerName ColumnID = "playerName"
	ColumnMonthTotal ColumnID = "monthTotal"
)

func DayColumnID(day int) ColumnID {
	return ColumnID("day" + strconv.Itoa(day))
}

// ColumnSpec describes one table column. Permanent columns carry a fixed
// pin side and are always visible.
type ColumnSpec struct {
	ID        ColumnID
	Title     string
	Day       int
	Visible   bool
	Pin       PinSide
	Permanent bool
}

// Row is one player's month line: identity, per-day scores and the total.
type Row struct {
	PlayerID   string
	PlayerName string
	Days       map[int]scoring.Score
	Total      int
}

// TotalScore exposes the month total as a sortable cell value. A player
// with no recorded score for any playable day reads as absent, not zero.
func (r Row) TotalScore() scoring.Score {
	for _, value := range r.Days {
		if value.Valid {
			return scoring.Points(r.Total)
		}
	}
	return scoring.Absent()
}

// PlayerHistory pairs a team member with their full score history.
type PlayerHistory struct {
	Player  player.Player
	Entries []score.Entry
}

// Projection is the derived {columns, rows} table for one team and month,
// rebuilt fresh on every team or month change.
type Projection struct {
	Month   scoring.Month
	Columns []ColumnSpec
	Rows    []Row
}

// Project builds the monthly table: a leading pinned player-name column,
// one column per calendar day in day order, and a trailing pinned
// month-total column. Day columns stay in the set even when hidden by the
// weekend rule so visibility can be toggled without rebuilding.
func Project(t team.Team, histories []PlayerHistory, month scoring.Month, maxGuesses int) (Projection, error) {
	if err := month.Validate(); err != nil {
		return Projection{}, err
	}
	if !t.ScoringSystem.Valid() {
		return Projection{}, fmt.Errorf("%w: %q", scoring.ErrInvalidSystem, t.ScoringSystem)
	}

	columns := make([]ColumnSpec, 0, month.Days()+2)
	columns = append(columns, ColumnSpec{
		ID:        ColumnPlayerName,
		Title:     "Player",
		Visible:   true,
		Pin:       PinLeft,
		Permanent: true,
	})
	for day := 1; day <= month.Days(); day++ {
		columns = append(columns, ColumnSpec{
			ID:      DayColumnID(day),
			Title:   strconv.Itoa(day),
			Day:     day,
			Visible: t.PlayWeekends || !month.IsWeekend(day),
		})
	}
	columns = append(columns, ColumnSpec{
		ID:        ColumnMonthTotal,
		Title:     "Total",
		Visible:   true,
		Pin:       PinRight,
		Permanent: true,
	})

	rows := make([]Row, 0, len(histories))
	for _, history := range histories {
		aggregate, err := scoring.AggregateMonth(history.Entries, month, t.PlayWeekends, t.ScoringSystem, maxGuesses)
		if err != nil {
			return Projection{}, fmt.Errorf("aggregate month for player %s: %w", history.Player.ID, err)
		}

		rows = append(rows, Row{
			PlayerID:   history.Player.ID,
			PlayerName: history.Player.FullName,
			Days:       aggregate.PerDay,
			Total:      aggregate.Total,
		})
	}

	return Projection{Month: month, Columns: columns, Rows: rows}, nil
}

func (p Projection) hasColumn(id ColumnID) bool {
	for _, column := range p.Columns {
		if column.ID == id {
			return true
		}
	}
	return false
}

func (p Projection) column(id ColumnID) (ColumnSpec, bool) {
	for _, column := range p.Columns {
		if column.ID == id {
			return column, true
		}
	}
	return ColumnSpec{}, false
}
