package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/wordle-teams/internal/domain/score"
)

type ScoreRepository struct {
	mu      sync.RWMutex
	entries map[string][]score.Entry
}

func NewScoreRepository(entries []score.Entry) *ScoreRepository {
	repo := &ScoreRepository{entries: make(map[string][]score.Entry)}
	for _, item := range entries {
		repo.entries[item.PlayerID] = append(repo.entries[item.PlayerID], item)
	}
	for playerID := range repo.entries {
		sortEntriesByDate(repo.entries[playerID])
	}

	return repo
}

func (r *ScoreRepository) Insert(_ context.Context, item score.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	day := item.Day()
	for _, existing := range r.entries[item.PlayerID] {
		if existing.Day().Equal(day) {
			return fmt.Errorf("%w: player=%s date=%s", score.ErrDuplicateEntry, item.PlayerID, day.Format("2006-01-02"))
		}
	}

	r.entries[item.PlayerID] = append(r.entries[item.PlayerID], item)
	sortEntriesByDate(r.entries[item.PlayerID])

	return nil
}

func (r *ScoreRepository) ListByPlayer(_ context.Context, playerID string) ([]score.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]score.Entry(nil), r.entries[playerID]...), nil
}

func (r *ScoreRepository) ListByPlayers(_ context.Context, playerIDs []string) (map[string][]score.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string][]score.Entry, len(playerIDs))
	for _, id := range playerIDs {
		if entries, ok := r.entries[id]; ok {
			out[id] = append([]score.Entry(nil), entries...)
		}
	}

	return out, nil
}

func (r *ScoreRepository) GetByPlayerAndDate(_ context.Context, playerID string, date time.Time) (score.Entry, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	for _, item := range r.entries[playerID] {
		if item.Day().Equal(day) {
			return item, true, nil
		}
	}

	return score.Entry{}, false, nil
}

func sortEntriesByDate(entries []score.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Day().Before(entries[j].Day())
	})
}
