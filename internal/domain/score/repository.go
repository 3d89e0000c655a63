package score

import (
	"context"
	"time"
)

// Repository describes daily score persistence needs from use cases.
type Repository interface {
	// Insert records a new entry. Implementations return ErrDuplicateEntry
	// when an entry already exists for (player, date).
	Insert(ctx context.Context, item Entry) error
	ListByPlayer(ctx context.Context, playerID string) ([]Entry, error)
	// ListByPlayers returns full histories keyed by player id.
	ListByPlayers(ctx context.Context, playerIDs []string) (map[string][]Entry, error)
	GetByPlayerAndDate(ctx context.Context, playerID string, date time.Time) (Entry, bool, error)
}
