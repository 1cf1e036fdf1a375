package mirror

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/hockey-roster/internal/domain/player"
	"github.com/riskibarqy/hockey-roster/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/hockey-roster/internal/platform/resilience"
	"github.com/stretchr/testify/require"
)

type failingRepository struct {
	saves atomic.Int32
	err   error
}

func (r *failingRepository) Load(context.Context) (player.Roster, error) {
	return nil, r.err
}

func (r *failingRepository) Save(context.Context, player.Roster) error {
	r.saves.Add(1)
	return r.err
}

func TestRosterRepository_SaveCopiesToReplicas(t *testing.T) {
	ctx := context.Background()
	primary := memory.NewRosterRepository(nil)
	first := memory.NewRosterRepository(nil)
	second := memory.NewRosterRepository(nil)

	repo := NewRosterRepository("memory", primary, []Replica{
		{Name: "first", Repo: first},
		{Name: "second", Repo: second},
	}, Options{Concurrency: 2}, nil)

	want := player.SamplePlayers()
	require.NoError(t, repo.Save(ctx, want))

	for _, r := range []player.Repository{repo, first, second} {
		got, err := r.Load(ctx)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestRosterRepository_PrimaryFailureSkipsReplicas(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("primary down")
	replica := &failingRepository{}

	repo := NewRosterRepository("broken", &failingRepository{err: boom}, []Replica{{Name: "replica", Repo: replica}}, Options{}, nil)

	err := repo.Save(ctx, player.SamplePlayers())
	require.ErrorIs(t, err, boom)
	require.Zero(t, replica.saves.Load())
}

func TestRosterRepository_ReplicaFailureDoesNotFailSave(t *testing.T) {
	ctx := context.Background()
	primary := memory.NewRosterRepository(nil)
	broken := &failingRepository{err: errors.New("replica down")}

	repo := NewRosterRepository("memory", primary, []Replica{{Name: "broken", Repo: broken}}, Options{
		Concurrency: 1,
		Breaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			OpenTimeout:      time.Hour,
			HalfOpenMaxReq:   1,
		},
	}, nil)

	for i := 0; i < 4; i++ {
		require.NoError(t, repo.Save(ctx, player.SamplePlayers()))
	}

	// the breaker opens after two failures and stops further attempts
	require.EqualValues(t, 2, broken.saves.Load())

	got, err := primary.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 16)
}

func TestRosterRepository_Check(t *testing.T) {
	ctx := context.Background()
	primary := memory.NewRosterRepository(player.SamplePlayers())
	inSync := memory.NewRosterRepository(player.SamplePlayers())
	stale := memory.NewRosterRepository(player.SamplePlayers()[:3])
	broken := &failingRepository{err: errors.New("unreachable")}

	repo := NewRosterRepository("file", primary, []Replica{
		{Name: "sqlite", Repo: inSync},
		{Name: "postgres", Repo: stale},
		{Name: "memory", Repo: broken},
	}, Options{Concurrency: 3, Breaker: resilience.DefaultCircuitBreakerConfig()}, nil)

	statuses := repo.Check(ctx)
	require.Len(t, statuses, 4)

	require.Equal(t, StoreStatus{Name: "file", Role: "primary", Healthy: true, Players: 16, InSync: true}, statuses[0])
	require.Equal(t, "sqlite", statuses[1].Name)
	require.True(t, statuses[1].InSync)
	require.Equal(t, "closed", statuses[1].Circuit)
	require.Equal(t, "postgres", statuses[2].Name)
	require.False(t, statuses[2].InSync)
	require.Equal(t, 3, statuses[2].Players)
	require.Equal(t, "memory", statuses[3].Name)
	require.False(t, statuses[3].Healthy)
	require.Equal(t, "unreachable", statuses[3].Error)
}
