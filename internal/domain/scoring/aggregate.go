package scoring

import (
	"fmt"

	"github.com/riskibarqy/wordle-teams/internal/domain/score"
)

// MonthAggregate is one player's evaluated month: a per-day score for every
// playable day plus the month total. Days excluded by the weekend rule do
// not appear in PerDay at all.
type MonthAggregate struct {
	PerDay map[int]Score
	Total  int
}

// AggregateMonth evaluates a player's full history against one calendar
// month. It is a pure function of its arguments: identical inputs always
// produce identical output.
//
// Absent days contribute nothing to the total but remain present in PerDay
// as absent values, so callers can render "no entry" distinct from zero.
func AggregateMonth(entries []score.Entry, month Month, includeWeekends bool, system System, maxGuesses int) (MonthAggregate, error) {
	if err := month.Validate(); err != nil {
		return MonthAggregate{}, err
	}
	if !system.Valid() {
		return MonthAggregate{}, fmt.Errorf("%w: %q", ErrInvalidSystem, system)
	}

	byDay := make(map[int]*score.Entry, len(entries))
	for i := range entries {
		day := entries[i].Day()
		if day.Year() != month.Year || day.Month() != month.Month {
			continue
		}
		byDay[day.Day()] = &entries[i]
	}

	out := MonthAggregate{PerDay: make(map[int]Score, month.Days())}
	for day := 1; day <= month.Days(); day++ {
		if !includeWeekends && month.IsWeekend(day) {
			continue
		}

		value, err := Evaluate(byDay[day], system, maxGuesses)
		if err != nil {
			return MonthAggregate{}, fmt.Errorf("evaluate day %d: %w", day, err)
		}

		out.PerDay[day] = value
		if value.Valid {
			out.Total += value.Points
		}
	}

	return out, nil
}
