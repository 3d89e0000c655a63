package scoring

import (
	"errors"
	"testing"

	"github.com/riskibarqy/wordle-teams/internal/domain/score"
)

func entryWithGuesses(answer string, guesses ...string) *score.Entry {
	return &score.Entry{
		ID:       "entry-1",
		PlayerID: "player-1",
		Answer:   answer,
		Guesses:  guesses,
	}
}

func TestParseSystem(t *testing.T) {
	t.Parallel()

	if _, err := ParseSystem("guessCount"); err != nil {
		t.Fatalf("parse guessCount: %v", err)
	}
	if _, err := ParseSystem("binary"); err != nil {
		t.Fatalf("parse binary: %v", err)
	}

	_, err := ParseSystem("golf")
	if !errors.Is(err, ErrInvalidSystem) {
		t.Fatalf("expected ErrInvalidSystem, got %v", err)
	}
}

func TestEvaluateGuessCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		entry *score.Entry
		want  Score
	}{
		{
			name:  "solved on first guess",
			entry: entryWithGuesses("crane", "crane"),
			want:  Points(1),
		},
		{
			name:  "solved on third guess",
			entry: entryWithGuesses("crane", "slate", "brine", "crane"),
			want:  Points(3),
		},
		{
			name:  "solved on final guess",
			entry: entryWithGuesses("crane", "slate", "brine", "crate", "crave", "craze", "crane"),
			want:  Points(6),
		},
		{
			name:  "exhausted unsolved gets penalty",
			entry: entryWithGuesses("spore", "slate", "store", "shore", "snore", "swore", "quote"),
			want:  Points(7),
		},
		{
			name:  "unsolved with attempts left is still in progress",
			entry: entryWithGuesses("crane", "slate", "brine"),
			want:  Absent(),
		},
		{
			name:  "no entry recorded",
			entry: nil,
			want:  Absent(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.entry, SystemGuessCount, DefaultMaxGuesses)
			if err != nil {
				t.Fatalf("evaluate: %v", err)
			}
			if got != tt.want {
				t.Fatalf("unexpected score: got=%+v want=%+v", got, tt.want)
			}
		})
	}
}

func TestEvaluateGuessCountRoundTrip(t *testing.T) {
	t.Parallel()

	// A solve on attempt k scores exactly k for every 1 <= k <= maxGuesses.
	for k := 1; k <= DefaultMaxGuesses; k++ {
		guesses := make([]string, 0, k)
		for i := 1; i < k; i++ {
			guesses = append(guesses, "slate")
		}
		guesses = append(guesses, "crane")

		got, err := Evaluate(entryWithGuesses("crane", guesses...), SystemGuessCount, DefaultMaxGuesses)
		if err != nil {
			t.Fatalf("evaluate k=%d: %v", k, err)
		}
		if got != Points(k) {
			t.Fatalf("solve on attempt %d: got=%+v want=%+v", k, got, Points(k))
		}
	}
}

func TestEvaluateBinary(t *testing.T) {
	t.Parallel()

	solved, err := Evaluate(entryWithGuesses("crane", "slate", "crane"), SystemBinary, DefaultMaxGuesses)
	if err != nil {
		t.Fatalf("evaluate solved: %v", err)
	}
	if solved != Points(1) {
		t.Fatalf("solved binary: got=%+v want=%+v", solved, Points(1))
	}

	unsolved, err := Evaluate(entryWithGuesses("spore", "slate", "store"), SystemBinary, DefaultMaxGuesses)
	if err != nil {
		t.Fatalf("evaluate unsolved: %v", err)
	}
	if unsolved != Points(0) {
		t.Fatalf("unsolved binary: got=%+v want=%+v", unsolved, Points(0))
	}
}

func TestEvaluateRejectsUnknownSystem(t *testing.T) {
	t.Parallel()

	_, err := Evaluate(entryWithGuesses("crane", "crane"), System("golf"), DefaultMaxGuesses)
	if !errors.Is(err, ErrInvalidSystem) {
		t.Fatalf("expected ErrInvalidSystem, got %v", err)
	}
}
