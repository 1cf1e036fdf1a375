package player

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultPhoto is shown for players without their own photos.
const DefaultPhoto = "nhl_logo"

// VeteranGamesThreshold is the games-played count a veteran must exceed.
const VeteranGamesThreshold = 1000

var (
	ErrInvalidPlayer = errors.New("invalid player")
	ErrDuplicateID   = errors.New("duplicate player id")
)

// Player is one hockey player's metadata and career statistics.
type Player struct {
	ID             int
	Name           string
	Number         int
	Position       string
	Team           string
	Age            int
	Height         float64 // meters
	Weight         int     // kilograms
	Nationality    string
	GamesPlayed    int
	Goals          int
	Assists        int
	PenaltyMinutes int
	Photos         []string
}

// TotalPoints is always derived from goals and assists.
func (p Player) TotalPoints() int {
	return p.Goals + p.Assists
}

func (p Player) IsVeteran() bool {
	return p.GamesPlayed > VeteranGamesThreshold
}

// PhotoRefs returns the carousel photos, falling back to DefaultPhoto.
func (p Player) PhotoRefs() []string {
	if len(p.Photos) == 0 {
		return []string{DefaultPhoto}
	}
	return append([]string(nil), p.Photos...)
}

// Clone returns a copy that shares no slice storage with p.
func (p Player) Clone() Player {
	if p.Photos != nil {
		p.Photos = append([]string(nil), p.Photos...)
	}
	return p
}

func (p Player) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("%w: id must be greater than zero", ErrInvalidPlayer)
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: player %d name is required", ErrInvalidPlayer, p.ID)
	}
	if p.Number < 0 {
		return fmt.Errorf("%w: player %d number must be >= 0", ErrInvalidPlayer, p.ID)
	}
	if p.Age < 0 {
		return fmt.Errorf("%w: player %d age must be >= 0", ErrInvalidPlayer, p.ID)
	}
	if p.Height <= 0 {
		return fmt.Errorf("%w: player %d height must be greater than zero", ErrInvalidPlayer, p.ID)
	}
	if p.Weight < 0 {
		return fmt.Errorf("%w: player %d weight must be >= 0", ErrInvalidPlayer, p.ID)
	}
	if p.GamesPlayed < 0 || p.Goals < 0 || p.Assists < 0 || p.PenaltyMinutes < 0 {
		return fmt.Errorf("%w: player %d statistics must be >= 0", ErrInvalidPlayer, p.ID)
	}
	for i, photo := range p.Photos {
		if strings.TrimSpace(photo) == "" {
			return fmt.Errorf("%w: player %d photo %d is empty", ErrInvalidPlayer, p.ID, i)
		}
	}

	return nil
}
