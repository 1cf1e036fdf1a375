package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/hockey-roster/internal/domain/player"
)

// RosterRepository keeps one roster in process memory.
type RosterRepository struct {
	mu     sync.RWMutex
	roster player.Roster
}

// NewRosterRepository starts with a copy of initial. A nil roster means an empty store.
func NewRosterRepository(initial player.Roster) *RosterRepository {
	return &RosterRepository{roster: initial.Clone()}
}

func (r *RosterRepository) Load(ctx context.Context) (player.Roster, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := r.roster.Clone()
	if out == nil {
		out = player.Roster{}
	}
	return out, nil
}

func (r *RosterRepository) Save(ctx context.Context, roster player.Roster) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	next := roster.Clone()

	r.mu.Lock()
	r.roster = next
	r.mu.Unlock()

	return nil
}
