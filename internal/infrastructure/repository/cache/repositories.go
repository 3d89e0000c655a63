package cache

import (
	"context"
	"strings"
	"time"

	"github.com/riskibarqy/wordle-teams/internal/domain/player"
	"github.com/riskibarqy/wordle-teams/internal/domain/score"
	"github.com/riskibarqy/wordle-teams/internal/domain/team"
	basecache "github.com/riskibarqy/wordle-teams/internal/platform/cache"
)

// TeamRepository caches team reads and invalidates on writes.
type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) error {
	if err := r.next.Create(ctx, item); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "team:")
	return nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	key := "team:id:" + teamID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, teamID)
		if err != nil {
			return nil, err
		}
		return cachedTeamByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	cached, _ := v.(cachedTeamByID)
	return cached.value, cached.exists, nil
}

func (r *TeamRepository) ListByPlayer(ctx context.Context, playerID string) ([]team.Team, error) {
	key := "team:by-player:" + playerID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByPlayer(ctx, playerID)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return append([]team.Team(nil), items...), nil
}

func (r *TeamRepository) ListAll(ctx context.Context) ([]team.Team, error) {
	v, err := r.cache.GetOrLoad(ctx, "team:list", func(ctx context.Context) (any, error) {
		items, err := r.next.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return append([]team.Team(nil), items...), nil
}

func (r *TeamRepository) AddPlayer(ctx context.Context, teamID, playerID string) error {
	if err := r.next.AddPlayer(ctx, teamID, playerID); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "team:")
	return nil
}

type cachedTeamByID struct {
	value  team.Team
	exists bool
}

// PlayerRepository caches player reads and invalidates on upserts.
type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	key := "player:id:" + playerID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, playerID)
		if err != nil {
			return nil, err
		}
		return cachedPlayerByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return player.Player{}, false, err
	}

	cached, _ := v.(cachedPlayerByID)
	return cached.value, cached.exists, nil
}

func (r *PlayerRepository) GetByIDs(ctx context.Context, playerIDs []string) ([]player.Player, error) {
	key := "player:ids:" + strings.Join(playerIDs, ",")
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.GetByIDs(ctx, playerIDs)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]player.Player)
	return append([]player.Player(nil), items...), nil
}

func (r *PlayerRepository) Upsert(ctx context.Context, item player.Player) error {
	if err := r.next.Upsert(ctx, item); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "player:")
	return nil
}

type cachedPlayerByID struct {
	value  player.Player
	exists bool
}

// ScoreRepository caches score history reads and invalidates the written
// player's keys on insert.
type ScoreRepository struct {
	next  score.Repository
	cache *basecache.Store
}

func NewScoreRepository(next score.Repository, cache *basecache.Store) *ScoreRepository {
	return &ScoreRepository{next: next, cache: cache}
}

func (r *ScoreRepository) Insert(ctx context.Context, item score.Entry) error {
	if err := r.next.Insert(ctx, item); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "score:")
	return nil
}

func (r *ScoreRepository) ListByPlayer(ctx context.Context, playerID string) ([]score.Entry, error) {
	key := "score:by-player:" + playerID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByPlayer(ctx, playerID)
		if err != nil {
			return nil, err
		}
		return append([]score.Entry(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]score.Entry)
	return append([]score.Entry(nil), items...), nil
}

func (r *ScoreRepository) ListByPlayers(ctx context.Context, playerIDs []string) (map[string][]score.Entry, error) {
	key := "score:by-players:" + strings.Join(playerIDs, ",")
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		histories, err := r.next.ListByPlayers(ctx, playerIDs)
		if err != nil {
			return nil, err
		}
		return cloneHistories(histories), nil
	})
	if err != nil {
		return nil, err
	}

	histories, _ := v.(map[string][]score.Entry)
	return cloneHistories(histories), nil
}

func (r *ScoreRepository) GetByPlayerAndDate(ctx context.Context, playerID string, date time.Time) (score.Entry, bool, error) {
	key := "score:by-date:" + playerID + ":" + date.UTC().Format("2006-01-02")
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByPlayerAndDate(ctx, playerID, date)
		if err != nil {
			return nil, err
		}
		return cachedScoreByDate{value: item, exists: exists}, nil
	})
	if err != nil {
		return score.Entry{}, false, err
	}

	cached, _ := v.(cachedScoreByDate)
	return cached.value, cached.exists, nil
}

type cachedScoreByDate struct {
	value  score.Entry
	exists bool
}

func cloneHistories(histories map[string][]score.Entry) map[string][]score.Entry {
	out := make(map[string][]score.Entry, len(histories))
	for playerID, entries := range histories {
		out[playerID] = append([]score.Entry(nil), entries...)
	}
	return out
}
