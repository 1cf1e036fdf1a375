package file

import "github.com/riskibarqy/hockey-roster/internal/domain/player"

// playerRecord is the on-disk form of a player. TotalPoints is written for
// readers of the file and ignored on load.
type playerRecord struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Number         int      `json:"number"`
	Position       string   `json:"position"`
	Team           string   `json:"team"`
	Age            int      `json:"age"`
	Height         float64  `json:"height"`
	Weight         int      `json:"weight"`
	Nationality    string   `json:"nationality"`
	GamesPlayed    int      `json:"games_played"`
	Goals          int      `json:"goals"`
	Assists        int      `json:"assists"`
	PenaltyMinutes int      `json:"penalty_minutes"`
	TotalPoints    int      `json:"total_points"`
	Photos         []string `json:"photos,omitempty"`
}

func recordFromPlayer(p player.Player) playerRecord {
	return playerRecord{
		ID:             p.ID,
		Name:           p.Name,
		Number:         p.Number,
		Position:       p.Position,
		Team:           p.Team,
		Age:            p.Age,
		Height:         p.Height,
		Weight:         p.Weight,
		Nationality:    p.Nationality,
		GamesPlayed:    p.GamesPlayed,
		Goals:          p.Goals,
		Assists:        p.Assists,
		PenaltyMinutes: p.PenaltyMinutes,
		TotalPoints:    p.TotalPoints(),
		Photos:         append([]string(nil), p.Photos...),
	}
}

func (r playerRecord) toPlayer() player.Player {
	var photos []string
	if len(r.Photos) > 0 {
		photos = append(photos, r.Photos...)
	}
	return player.Player{
		ID:             r.ID,
		Name:           r.Name,
		Number:         r.Number,
		Position:       r.Position,
		Team:           r.Team,
		Age:            r.Age,
		Height:         r.Height,
		Weight:         r.Weight,
		Nationality:    r.Nationality,
		GamesPlayed:    r.GamesPlayed,
		Goals:          r.Goals,
		Assists:        r.Assists,
		PenaltyMinutes: r.PenaltyMinutes,
		Photos:         photos,
	}
}
