package scoring

import (
	"errors"
	"fmt"

	"github.com/riskibarqy/wordle-teams/internal/domain/score"
)

var ErrInvalidSystem = errors.New("unrecognized scoring system")

// DefaultMaxGuesses is the standard attempt limit for one daily puzzle.
const DefaultMaxGuesses = 6

// System selects how a guess sequence maps to a point value. The set is
// closed: Evaluate dispatches exhaustively and rejects unknown tags.
type System string

const (
	// SystemGuessCount scores the number of guesses used to solve, with a
	// fixed maxGuesses+1 penalty for an exhausted unsolved puzzle. Lower
	// is better.
	SystemGuessCount System = "guessCount"
	// SystemBinary scores 1 for a solve within the limit, 0 otherwise.
	SystemBinary System = "binary"
)

func (s System) Valid() bool {
	switch s {
	case SystemGuessCount, SystemBinary:
		return true
	default:
		return false
	}
}

func ParseSystem(raw string) (System, error) {
	s := System(raw)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidSystem, raw)
	}
	return s, nil
}

// Score is a tri-state cell value: absent (no recorded data) or a number.
// Absent is never conflated with a scored zero.
type Score struct {
	Points int
	Valid  bool
}

func Absent() Score {
	return Score{}
}

func Points(points int) Score {
	return Score{Points: points, Valid: true}
}

// Evaluate converts one daily entry into a point value under the given
// system. A nil entry means no data was recorded and evaluates to absent.
//
// Under guessCount an unsolved entry with attempts remaining is still in
// progress and also evaluates to absent rather than a provisional number.
func Evaluate(entry *score.Entry, system System, maxGuesses int) (Score, error) {
	if !system.Valid() {
		return Score{}, fmt.Errorf("%w: %q", ErrInvalidSystem, system)
	}
	if maxGuesses <= 0 {
		maxGuesses = DefaultMaxGuesses
	}
	if entry == nil {
		return Absent(), nil
	}

	switch system {
	case SystemGuessCount:
		if entry.Solved() {
			return Points(len(entry.Guesses)), nil
		}
		if len(entry.Guesses) >= maxGuesses {
			return Points(maxGuesses + 1), nil
		}
		return Absent(), nil
	case SystemBinary:
		if entry.Solved() && len(entry.Guesses) <= maxGuesses {
			return Points(1), nil
		}
		return Points(0), nil
	default:
		return Score{}, fmt.Errorf("%w: %q", ErrInvalidSystem, system)
	}
}
