package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, item Team) error
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
	ListByPlayer(ctx context.Context, playerID string) ([]Team, error)
	ListAll(ctx context.Context) ([]Team, error)
	AddPlayer(ctx context.Context, teamID, playerID string) error
}
