package httpapi

import (
	"github.com/riskibarqy/hockey-roster/internal/domain/player"
	"github.com/riskibarqy/hockey-roster/internal/infrastructure/repository/mirror"
)

type playerDTO struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Number         int      `json:"number"`
	Position       string   `json:"position"`
	Team           string   `json:"team"`
	Age            int      `json:"age"`
	Height         float64  `json:"height"`
	Weight         int      `json:"weight"`
	Nationality    string   `json:"nationality"`
	GamesPlayed    int      `json:"gamesPlayed"`
	Goals          int      `json:"goals"`
	Assists        int      `json:"assists"`
	TotalPoints    int      `json:"totalPoints"`
	PenaltyMinutes int      `json:"penaltyMinutes"`
	IsVeteran      bool     `json:"isVeteran"`
	Photos         []string `json:"photos"`
}

type playerListDTO struct {
	Items []playerDTO `json:"items"`
	Count int         `json:"count"`
}

type storeHealthDTO struct {
	Status string               `json:"status"`
	Stores []mirror.StoreStatus `json:"stores,omitempty"`
}

// playerRequest is one roster entry in a replace request. Derived fields are
// not accepted.
type playerRequest struct {
	ID             int      `json:"id" validate:"required,gt=0"`
	Name           string   `json:"name" validate:"required,max=100"`
	Number         int      `json:"number" validate:"gte=0"`
	Position       string   `json:"position" validate:"max=32"`
	Team           string   `json:"team" validate:"max=100"`
	Age            int      `json:"age" validate:"gte=0,lte=100"`
	Height         float64  `json:"height" validate:"gt=0"`
	Weight         int      `json:"weight" validate:"gte=0"`
	Nationality    string   `json:"nationality" validate:"max=64"`
	GamesPlayed    int      `json:"gamesPlayed" validate:"gte=0"`
	Goals          int      `json:"goals" validate:"gte=0"`
	Assists        int      `json:"assists" validate:"gte=0"`
	PenaltyMinutes int      `json:"penaltyMinutes" validate:"gte=0"`
	Photos         []string `json:"photos" validate:"omitempty,dive,required"`
}

type replaceRosterRequest struct {
	Players []playerRequest `json:"players" validate:"required,dive"`
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
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
		TotalPoints:    p.TotalPoints(),
		PenaltyMinutes: p.PenaltyMinutes,
		IsVeteran:      p.IsVeteran(),
		Photos:         p.PhotoRefs(),
	}
}

func rosterToListDTO(roster player.Roster) playerListDTO {
	items := make([]playerDTO, 0, len(roster))
	for _, p := range roster {
		items = append(items, playerToDTO(p))
	}
	return playerListDTO{Items: items, Count: len(items)}
}

func (r replaceRosterRequest) toRoster() player.Roster {
	out := make(player.Roster, 0, len(r.Players))
	for _, p := range r.Players {
		var photos []string
		if len(p.Photos) > 0 {
			photos = append(photos, p.Photos...)
		}
		out = append(out, player.Player{
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
			Photos:         photos,
		})
	}
	return out
}
