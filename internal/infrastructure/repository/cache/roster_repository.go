package cache

import (
	"context"

	"github.com/riskibarqy/hockey-roster/internal/domain/player"
	basecache "github.com/riskibarqy/hockey-roster/internal/platform/cache"
)

const rosterKey = "roster"

// RosterRepository is a read-through cache in front of another roster store.
type RosterRepository struct {
	next  player.Repository
	cache *basecache.Store[player.Roster]
}

func NewRosterRepository(next player.Repository, cache *basecache.Store[player.Roster]) *RosterRepository {
	return &RosterRepository{next: next, cache: cache}
}

func (r *RosterRepository) Load(ctx context.Context) (player.Roster, error) {
	v, err := r.cache.GetOrLoad(ctx, rosterKey, func(ctx context.Context) (player.Roster, error) {
		items, err := r.next.Load(ctx)
		if err != nil {
			return nil, err
		}
		return items.Clone(), nil
	})
	if err != nil {
		return nil, err
	}

	out := v.Clone()
	if out == nil {
		out = player.Roster{}
	}
	return out, nil
}

// Save writes through and drops the cached copy, also when the write fails.
func (r *RosterRepository) Save(ctx context.Context, roster player.Roster) error {
	defer r.cache.Delete(ctx, rosterKey)
	return r.next.Save(ctx, roster)
}
