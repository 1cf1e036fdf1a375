package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/hockey-roster/internal/domain/player"
	"github.com/riskibarqy/hockey-roster/internal/infrastructure/repository/memory"
	basecache "github.com/riskibarqy/hockey-roster/internal/platform/cache"
)

type countingRepository struct {
	player.Repository
	loads   int
	saveErr error
}

func (r *countingRepository) Load(ctx context.Context) (player.Roster, error) {
	r.loads++
	return r.Repository.Load(ctx)
}

func (r *countingRepository) Save(ctx context.Context, roster player.Roster) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	return r.Repository.Save(ctx, roster)
}

func TestRosterRepository_CachesLoads(t *testing.T) {
	ctx := context.Background()
	next := &countingRepository{Repository: memory.NewRosterRepository(player.SamplePlayers())}
	repo := NewRosterRepository(next, basecache.NewStore[player.Roster](time.Minute))

	for i := 0; i < 3; i++ {
		got, err := repo.Load(ctx)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if len(got) != 16 {
			t.Fatalf("expected 16 players, got %d", len(got))
		}
	}
	if next.loads != 1 {
		t.Fatalf("expected one backend load, got %d", next.loads)
	}
}

func TestRosterRepository_SaveInvalidates(t *testing.T) {
	ctx := context.Background()
	next := &countingRepository{Repository: memory.NewRosterRepository(player.SamplePlayers())}
	repo := NewRosterRepository(next, basecache.NewStore[player.Roster](time.Minute))

	if _, err := repo.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := repo.Save(ctx, player.SamplePlayers()[:1]); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load after save: %v", err)
	}
	if len(got) != 1 || next.loads != 2 {
		t.Fatalf("expected fresh load of 1 player, got %d players after %d loads", len(got), next.loads)
	}
}

func TestRosterRepository_FailedSaveStillInvalidates(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk full")
	next := &countingRepository{Repository: memory.NewRosterRepository(player.SamplePlayers())}
	repo := NewRosterRepository(next, basecache.NewStore[player.Roster](time.Minute))

	if _, err := repo.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	next.saveErr = boom
	if err := repo.Save(ctx, nil); !errors.Is(err, boom) {
		t.Fatalf("expected save error, got %v", err)
	}
	if _, err := repo.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if next.loads != 2 {
		t.Fatalf("expected reload after failed save, got %d loads", next.loads)
	}
}

func TestRosterRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewRosterRepository(memory.NewRosterRepository(player.SamplePlayers()), basecache.NewStore[player.Roster](0))

	first, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	first[0].Name = "mutated"
	first[0].Photos[0] = "mutated"

	second, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if second[0].Name != "Wayne Gretzky" || second[0].Photos[0] != "gretzky_photo" {
		t.Fatalf("cached roster was mutated by caller: %+v", second[0])
	}
}
