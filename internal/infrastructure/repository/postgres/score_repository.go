package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/wordle-teams/internal/domain/score"
	qb "github.com/riskibarqy/wordle-teams/internal/platform/querybuilder"
)

type ScoreRepository struct {
	db *sqlx.DB
}

func NewScoreRepository(db *sqlx.DB) *ScoreRepository {
	return &ScoreRepository{db: db}
}

func (r *ScoreRepository) Insert(ctx context.Context, item score.Entry) error {
	query, args, err := qb.InsertModel("daily_scores", scoreInsertModel{
		ID:        item.ID,
		PlayerID:  item.PlayerID,
		EntryDate: item.Day(),
		Answer:    item.Answer,
		Guesses:   item.Guesses,
	}, "")
	if err != nil {
		return fmt.Errorf("build insert daily score query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: player=%s date=%s", score.ErrDuplicateEntry, item.PlayerID, item.Day().Format("2006-01-02"))
		}
		return fmt.Errorf("insert daily score: %w", err)
	}

	return nil
}

func (r *ScoreRepository) ListByPlayer(ctx context.Context, playerID string) ([]score.Entry, error) {
	query, args, err := qb.Select("*").From("daily_scores").
		Where(qb.Eq("player_id", playerID)).
		OrderBy("entry_date").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select daily scores query: %w", err)
	}

	var rows []scoreTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select daily scores: %w", err)
	}

	out := make([]score.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *ScoreRepository) ListByPlayers(ctx context.Context, playerIDs []string) (map[string][]score.Entry, error) {
	out := make(map[string][]score.Entry, len(playerIDs))
	if len(playerIDs) == 0 {
		return out, nil
	}

	values := make([]any, 0, len(playerIDs))
	for _, id := range playerIDs {
		values = append(values, id)
	}

	query, args, err := qb.Select("*").From("daily_scores").
		Where(qb.In("player_id", values)).
		OrderBy("player_id", "entry_date").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select daily scores by players query: %w", err)
	}

	var rows []scoreTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select daily scores by players: %w", err)
	}

	for _, row := range rows {
		out[row.PlayerID] = append(out[row.PlayerID], row.toDomain())
	}

	return out, nil
}

func (r *ScoreRepository) GetByPlayerAndDate(ctx context.Context, playerID string, date time.Time) (score.Entry, bool, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	query, args, err := qb.Select("*").From("daily_scores").
		Where(
			qb.Eq("player_id", playerID),
			qb.Eq("entry_date", day),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return score.Entry{}, false, fmt.Errorf("build select daily score query: %w", err)
	}

	var row scoreTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return score.Entry{}, false, nil
		}
		return score.Entry{}, false, fmt.Errorf("get daily score: %w", err)
	}

	return row.toDomain(), true, nil
}
