package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/wordle-teams/internal/domain/player"
)

type playerTableModel struct {
	ID        string         `db:"id"`
	FullName  string         `db:"full_name"`
	Email     string         `db:"email"`
	AvatarURL sql.NullString `db:"avatar_url"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:        m.ID,
		FullName:  m.FullName,
		Email:     m.Email,
		AvatarURL: m.AvatarURL.String,
	}
}

type playerInsertModel struct {
	ID        string `db:"id"`
	FullName  string `db:"full_name"`
	Email     string `db:"email"`
	AvatarURL string `db:"avatar_url"`
}
