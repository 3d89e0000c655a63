package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/wordle-teams/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	teams map[string]team.Team
	order []string
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	repo := &TeamRepository{teams: make(map[string]team.Team, len(teams))}
	for _, item := range teams {
		if _, ok := repo.teams[item.ID]; !ok {
			repo.order = append(repo.order, item.ID)
		}
		repo.teams[item.ID] = cloneTeam(item)
	}

	return repo
}

func (r *TeamRepository) Create(_ context.Context, item team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.teams[item.ID]; ok {
		return fmt.Errorf("team %s already exists", item.ID)
	}
	r.teams[item.ID] = cloneTeam(item)
	r.order = append(r.order, item.ID)

	return nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.teams[teamID]
	if !ok {
		return team.Team{}, false, nil
	}

	return cloneTeam(item), true, nil
}

func (r *TeamRepository) ListByPlayer(_ context.Context, playerID string) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0)
	for _, id := range r.order {
		item := r.teams[id]
		if item.HasPlayer(playerID) {
			out = append(out, cloneTeam(item))
		}
	}

	return out, nil
}

func (r *TeamRepository) ListAll(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneTeam(r.teams[id]))
	}

	return out, nil
}

func (r *TeamRepository) AddPlayer(_ context.Context, teamID, playerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.teams[teamID]
	if !ok {
		return fmt.Errorf("team %s does not exist", teamID)
	}
	if item.HasPlayer(playerID) {
		return nil
	}
	item.PlayerIDs = append(item.PlayerIDs, playerID)
	r.teams[teamID] = item

	return nil
}

func cloneTeam(item team.Team) team.Team {
	item.PlayerIDs = append([]string(nil), item.PlayerIDs...)
	return item
}
