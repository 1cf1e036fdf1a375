package sqlrepo

import "github.com/riskibarqy/hockey-roster/internal/domain/player"

var playerColumns = []string{
	"roster",
	"roster_index",
	"id",
	"name",
	"number",
	"position",
	"team",
	"age",
	"height",
	"weight",
	"nationality",
	"games_played",
	"goals",
	"assists",
	"penalty_minutes",
}

var photoColumns = []string{"roster", "player_id", "ordinal", "ref"}

type playerTableModel struct {
	Roster         string  `db:"roster"`
	RosterIndex    int     `db:"roster_index"`
	ID             int     `db:"id"`
	Name           string  `db:"name"`
	Number         int     `db:"number"`
	Position       string  `db:"position"`
	Team           string  `db:"team"`
	Age            int     `db:"age"`
	Height         float64 `db:"height"`
	Weight         int     `db:"weight"`
	Nationality    string  `db:"nationality"`
	GamesPlayed    int     `db:"games_played"`
	Goals          int     `db:"goals"`
	Assists        int     `db:"assists"`
	PenaltyMinutes int     `db:"penalty_minutes"`
}

type photoTableModel struct {
	Roster   string `db:"roster"`
	PlayerID int    `db:"player_id"`
	Ordinal  int    `db:"ordinal"`
	Ref      string `db:"ref"`
}

func (m playerTableModel) values() []any {
	return []any{
		m.Roster,
		m.RosterIndex,
		m.ID,
		m.Name,
		m.Number,
		m.Position,
		m.Team,
		m.Age,
		m.Height,
		m.Weight,
		m.Nationality,
		m.GamesPlayed,
		m.Goals,
		m.Assists,
		m.PenaltyMinutes,
	}
}

func playerRow(roster string, index int, p player.Player) playerTableModel {
	return playerTableModel{
		Roster:         roster,
		RosterIndex:    index,
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
	}
}

func (m playerTableModel) toPlayer(photos []string) player.Player {
	return player.Player{
		ID:             m.ID,
		Name:           m.Name,
		Number:         m.Number,
		Position:       m.Position,
		Team:           m.Team,
		Age:            m.Age,
		Height:         m.Height,
		Weight:         m.Weight,
		Nationality:    m.Nationality,
		GamesPlayed:    m.GamesPlayed,
		Goals:          m.Goals,
		Assists:        m.Assists,
		PenaltyMinutes: m.PenaltyMinutes,
		Photos:         photos,
	}
}
