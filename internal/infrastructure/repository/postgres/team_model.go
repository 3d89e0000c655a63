package postgres

import (
	"time"

	"github.com/lib/pq"

	"github.com/riskibarqy/wordle-teams/internal/domain/scoring"
	"github.com/riskibarqy/wordle-teams/internal/domain/team"
)

type teamTableModel struct {
	ID            string         `db:"id"`
	Name          string         `db:"name"`
	PlayWeekends  bool           `db:"play_weekends"`
	ScoringSystem string         `db:"scoring_system"`
	CreatorID     string         `db:"creator_id"`
	PlayerIDs     pq.StringArray `db:"player_ids"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:            m.ID,
		Name:          m.Name,
		PlayWeekends:  m.PlayWeekends,
		ScoringSystem: scoring.System(m.ScoringSystem),
		CreatorID:     m.CreatorID,
		PlayerIDs:     append([]string(nil), m.PlayerIDs...),
	}
}

type teamInsertModel struct {
	ID            string         `db:"id"`
	Name          string         `db:"name"`
	PlayWeekends  bool           `db:"play_weekends"`
	ScoringSystem string         `db:"scoring_system"`
	CreatorID     string         `db:"creator_id"`
	PlayerIDs     pq.StringArray `db:"player_ids"`
}
