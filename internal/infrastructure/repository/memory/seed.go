package memory

import (
	"strconv"
	"time"

	"github.com/riskibarqy/wordle-teams/internal/domain/player"
	"github.com/riskibarqy/wordle-teams/internal/domain/score"
	"github.com/riskibarqy/wordle-teams/internal/domain/scoring"
	"github.com/riskibarqy/wordle-teams/internal/domain/team"
)

const (
	SeedTeamIDWeekdayCrew = "team-weekday-crew"
	SeedTeamIDEveryday    = "team-everyday"
)

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "player-ada", FullName: "Ada Lovelace", Email: "ada@example.com"},
		{ID: "player-alan", FullName: "Alan Turing", Email: "alan@example.com"},
		{ID: "player-grace", FullName: "Grace Hopper", Email: "grace@example.com"},
		{ID: "player-edsger", FullName: "Edsger Dijkstra", Email: "edsger@example.com"},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{
			ID:            SeedTeamIDWeekdayCrew,
			Name:          "Weekday Crew",
			PlayWeekends:  false,
			ScoringSystem: scoring.SystemGuessCount,
			CreatorID:     "player-ada",
			PlayerIDs:     []string{"player-ada", "player-alan", "player-grace"},
		},
		{
			ID:            SeedTeamIDEveryday,
			Name:          "Everyday Guessers",
			PlayWeekends:  true,
			ScoringSystem: scoring.SystemBinary,
			CreatorID:     "player-grace",
			PlayerIDs:     []string{"player-grace", "player-edsger"},
		},
	}
}

// SeedScores gives the first player a three-guess solve on every weekday
// of March 2024 and leaves the other players sparse.
func SeedScores() []score.Entry {
	month := scoring.Month{Year: 2024, Month: time.March}
	entries := make([]score.Entry, 0, month.Days())
	for day := 1; day <= month.Days(); day++ {
		if month.IsWeekend(day) {
			continue
		}
		entries = append(entries, score.Entry{
			ID:       "seed-ada-2024-03-" + strconv.Itoa(day),
			PlayerID: "player-ada",
			Date:     month.Date(day),
			Answer:   "crane",
			Guesses:  []string{"slate", "brine", "crane"},
		})
	}

	entries = append(entries,
		score.Entry{
			ID:       "seed-alan-2024-03-04",
			PlayerID: "player-alan",
			Date:     month.Date(4),
			Answer:   "crane",
			Guesses:  []string{"crane"},
		},
		score.Entry{
			ID:       "seed-alan-2024-03-05",
			PlayerID: "player-alan",
			Date:     month.Date(5),
			Answer:   "spore",
			Guesses:  []string{"slate", "store", "shore", "snore", "swore", "quote"},
		},
	)

	return entries
}
