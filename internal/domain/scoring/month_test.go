package scoring

import (
	"errors"
	"testing"
	"time"
)

func TestParseMonth(t *testing.T) {
	t.Parallel()

	got, err := ParseMonth("2024-03")
	if err != nil {
		t.Fatalf("parse month: %v", err)
	}
	if got.Year != 2024 || got.Month != time.March {
		t.Fatalf("unexpected month: %+v", got)
	}

	for _, raw := range []string{"", "2024", "2024-13", "march"} {
		if _, err := ParseMonth(raw); !errors.Is(err, ErrInvalidMonth) {
			t.Fatalf("ParseMonth(%q): expected ErrInvalidMonth, got %v", raw, err)
		}
	}
}

func TestMonthDays(t *testing.T) {
	t.Parallel()

	tests := []struct {
		month Month
		want  int
	}{
		{Month{Year: 2024, Month: time.February}, 29},
		{Month{Year: 2023, Month: time.February}, 28},
		{Month{Year: 2024, Month: time.March}, 31},
		{Month{Year: 2024, Month: time.April}, 30},
	}

	for _, tt := range tests {
		if got := tt.month.Days(); got != tt.want {
			t.Fatalf("%s days: got=%d want=%d", tt.month, got, tt.want)
		}
	}
}

func TestMonthIsWeekend(t *testing.T) {
	t.Parallel()

	month := Month{Year: 2024, Month: time.March}
	// March 1, 2024 is a Friday.
	if month.IsWeekend(1) {
		t.Fatal("March 1, 2024 is a weekday")
	}
	if !month.IsWeekend(2) || !month.IsWeekend(3) {
		t.Fatal("March 2-3, 2024 is a weekend")
	}
}

func TestMonthString(t *testing.T) {
	t.Parallel()

	month := Month{Year: 2024, Month: time.March}
	if got := month.String(); got != "2024-03" {
		t.Fatalf("unexpected string: %q", got)
	}
}
