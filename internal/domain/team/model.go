package team

import (
	"errors"
	"fmt"

	"github.com/riskibarqy/wordle-teams/internal/domain/scoring"
)

var ErrCreatorNotMember = errors.New("team creator must be a member")

// Team groups players under one shared rule set.
type Team struct {
	ID            string
	Name          string
	PlayWeekends  bool
	ScoringSystem scoring.System
	CreatorID     string
	PlayerIDs     []string
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if t.CreatorID == "" {
		return fmt.Errorf("team creator id is required")
	}
	if !t.ScoringSystem.Valid() {
		return fmt.Errorf("invalid scoring system: %s", t.ScoringSystem)
	}
	if !t.HasPlayer(t.CreatorID) {
		return fmt.Errorf("%w: creator=%s", ErrCreatorNotMember, t.CreatorID)
	}

	return nil
}

func (t Team) HasPlayer(playerID string) bool {
	for _, id := range t.PlayerIDs {
		if id == playerID {
			return true
		}
	}
	return false
}
