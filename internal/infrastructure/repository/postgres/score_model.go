package postgres

import (
	"time"

	"github.com/lib/pq"

	"github.com/riskibarqy/wordle-teams/internal/domain/score"
)

type scoreTableModel struct {
	ID        string         `db:"id"`
	PlayerID  string         `db:"player_id"`
	EntryDate time.Time      `db:"entry_date"`
	Answer    string         `db:"answer"`
	Guesses   pq.StringArray `db:"guesses"`
	CreatedAt time.Time      `db:"created_at"`
}

func (m scoreTableModel) toDomain() score.Entry {
	return score.Entry{
		ID:        m.ID,
		PlayerID:  m.PlayerID,
		Date:      m.EntryDate.UTC(),
		Answer:    m.Answer,
		Guesses:   append([]string(nil), m.Guesses...),
		CreatedAt: m.CreatedAt.UTC(),
	}
}

type scoreInsertModel struct {
	ID        string         `db:"id"`
	PlayerID  string         `db:"player_id"`
	EntryDate time.Time      `db:"entry_date"`
	Answer    string         `db:"answer"`
	Guesses   pq.StringArray `db:"guesses"`
}
