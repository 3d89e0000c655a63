package score

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrDuplicateEntry = errors.New("daily score entry already exists for this date")

// Entry is one player's submission for one calendar date. Entries are
// immutable once recorded; there is no update path.
type Entry struct {
	ID        string
	PlayerID  string
	Date      time.Time
	Answer    string
	Guesses   []string
	CreatedAt time.Time
}

func (e Entry) Validate(maxGuesses int) error {
	if e.PlayerID == "" {
		return fmt.Errorf("entry player id is required")
	}
	if e.Date.IsZero() {
		return fmt.Errorf("entry date is required")
	}
	if strings.TrimSpace(e.Answer) == "" {
		return fmt.Errorf("entry answer is required")
	}
	if len(e.Guesses) > maxGuesses {
		return fmt.Errorf("entry has %d guesses, max is %d", len(e.Guesses), maxGuesses)
	}
	for i, guess := range e.Guesses {
		if strings.TrimSpace(guess) == "" {
			return fmt.Errorf("guess %d is empty", i+1)
		}
	}

	return nil
}

// Solved reports whether the final guess matched the answer.
func (e Entry) Solved() bool {
	if len(e.Guesses) == 0 {
		return false
	}
	return strings.EqualFold(e.Guesses[len(e.Guesses)-1], e.Answer)
}

// Day truncates the entry date to day granularity in UTC.
func (e Entry) Day() time.Time {
	return time.Date(e.Date.Year(), e.Date.Month(), e.Date.Day(), 0, 0, 0, 0, time.UTC)
}
