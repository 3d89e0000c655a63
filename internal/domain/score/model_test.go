package score

import (
	"testing"
	"time"
)

func TestEntrySolved(t *testing.T) {
	t.Parallel()

	entry := Entry{Answer: "crane", Guesses: []string{"slate", "crane"}}
	if !entry.Solved() {
		t.Fatal("matching final guess must read as solved")
	}

	entry.Guesses = []string{"slate", "CRANE"}
	if !entry.Solved() {
		t.Fatal("answer match is case-insensitive")
	}

	entry.Guesses = []string{"crane", "slate"}
	if entry.Solved() {
		t.Fatal("only the final guess decides")
	}

	entry.Guesses = nil
	if entry.Solved() {
		t.Fatal("no guesses cannot be solved")
	}
}

func TestEntryDay(t *testing.T) {
	t.Parallel()

	entry := Entry{Date: time.Date(2024, time.March, 4, 18, 30, 12, 0, time.FixedZone("UTC+7", 7*3600))}
	got := entry.Day()
	want := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("unexpected day: got=%s want=%s", got, want)
	}
}

func TestEntryValidate(t *testing.T) {
	t.Parallel()

	valid := Entry{
		PlayerID: "player-1",
		Date:     time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC),
		Answer:   "crane",
		Guesses:  []string{"slate", "crane"},
	}
	if err := valid.Validate(6); err != nil {
		t.Fatalf("valid entry rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Entry)
	}{
		{"missing player", func(e *Entry) { e.PlayerID = "" }},
		{"missing date", func(e *Entry) { e.Date = time.Time{} }},
		{"missing answer", func(e *Entry) { e.Answer = "  " }},
		{"too many guesses", func(e *Entry) {
			e.Guesses = []string{"a", "b", "c", "d", "e", "f", "g"}
		}},
		{"blank guess", func(e *Entry) { e.Guesses = []string{"slate", " "} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := valid
			entry.Guesses = append([]string(nil), valid.Guesses...)
			tt.mutate(&entry)
			if err := entry.Validate(6); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
