package mirror

import (
	"context"
	"errors"
	"reflect"
	"slices"
	"sync"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/hockey-roster/internal/domain/player"
	"github.com/riskibarqy/hockey-roster/internal/platform/logging"
	"github.com/riskibarqy/hockey-roster/internal/platform/resilience"
	"github.com/sourcegraph/conc/pool"
)

// Replica is a named secondary store that receives copies of every save.
type Replica struct {
	Name string
	Repo player.Repository
}

type replica struct {
	Replica
	breaker *resilience.CircuitBreaker
}

type Options struct {
	// Concurrency bounds replica writes and health checks.
	Concurrency int
	Breaker     resilience.CircuitBreakerConfig
}

// RosterRepository reads from a primary store and copies saves to replicas.
// Replica failures are logged and never fail a save.
type RosterRepository struct {
	primaryName string
	primary     player.Repository
	replicas    []replica
	concurrency int
	logger      *logging.Logger
}

func NewRosterRepository(primaryName string, primary player.Repository, replicas []Replica, opts Options, logger *logging.Logger) *RosterRepository {
	if logger == nil {
		logger = logging.Default()
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(opts.Breaker)

	out := make([]replica, 0, len(replicas))
	for _, r := range replicas {
		item := replica{Replica: r}
		if breakerCfg.Enabled {
			item.breaker = resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq)
		}
		out = append(out, item)
	}

	return &RosterRepository{
		primaryName: primaryName,
		primary:     primary,
		replicas:    out,
		concurrency: opts.Concurrency,
		logger:      logger.Named("store.mirror"),
	}
}

func (r *RosterRepository) Load(ctx context.Context) (player.Roster, error) {
	return r.primary.Load(ctx)
}

func (r *RosterRepository) Save(ctx context.Context, roster player.Roster) error {
	if err := r.primary.Save(ctx, roster); err != nil {
		return crerr.Wrapf(err, "save primary store %q", r.primaryName)
	}
	if len(r.replicas) == 0 {
		return nil
	}

	workers, err := ants.NewPool(min(r.concurrency, len(r.replicas)))
	if err != nil {
		r.logger.ErrorContext(ctx, "create replica worker pool failed", "error", err)
		return nil
	}
	defer workers.Release()

	var wg sync.WaitGroup
	for _, rep := range r.replicas {
		wg.Add(1)
		if err := workers.Submit(func() {
			defer wg.Done()
			r.saveReplica(ctx, rep, roster)
		}); err != nil {
			wg.Done()
			r.logger.ErrorContext(ctx, "submit replica save failed", "replica", rep.Name, "error", err)
		}
	}
	wg.Wait()

	return nil
}

func (r *RosterRepository) saveReplica(ctx context.Context, rep replica, roster player.Roster) {
	start := time.Now()
	save := func() error {
		return rep.Repo.Save(ctx, roster.Clone())
	}

	var err error
	if rep.breaker != nil {
		err = rep.breaker.Execute(save)
	} else {
		err = save()
	}

	switch {
	case errors.Is(err, resilience.ErrCircuitOpen):
		r.logger.WarnContext(ctx, "replica skipped", "replica", rep.Name, "state", rep.breaker.State())
	case err != nil:
		r.logger.WarnContext(ctx, "replica save failed", "replica", rep.Name, "error", err)
	default:
		r.logger.DebugContext(ctx, "replica saved", "replica", rep.Name, "players", len(roster), "duration", time.Since(start))
	}
}

// StoreStatus describes one backing store at the time of a health check.
type StoreStatus struct {
	Name    string `json:"name"`
	Role    string `json:"role"`
	Healthy bool   `json:"healthy"`
	Players int    `json:"players"`
	InSync  bool   `json:"inSync"`
	Circuit string `json:"circuit,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Check loads every store concurrently and reports whether replicas hold the
// same roster as the primary.
func (r *RosterRepository) Check(ctx context.Context) []StoreStatus {
	type loaded struct {
		status StoreStatus
		roster player.Roster
	}

	p := pool.NewWithResults[loaded]().WithMaxGoroutines(r.concurrency + 1)
	load := func(name, role string, repo player.Repository, breaker *resilience.CircuitBreaker) {
		p.Go(func() loaded {
			status := StoreStatus{Name: name, Role: role}
			if breaker != nil {
				status.Circuit = string(breaker.State())
			}
			roster, err := repo.Load(ctx)
			if err != nil {
				status.Error = err.Error()
				return loaded{status: status}
			}
			status.Healthy = true
			status.Players = len(roster)
			return loaded{status: status, roster: roster}
		})
	}

	load(r.primaryName, "primary", r.primary, nil)
	for _, rep := range r.replicas {
		load(rep.Name, "replica", rep.Repo, rep.breaker)
	}
	results := p.Wait()

	var primary *loaded
	for i := range results {
		if results[i].status.Role == "primary" {
			primary = &results[i]
			break
		}
	}

	out := make([]StoreStatus, 0, len(results))
	for _, res := range results {
		status := res.status
		switch {
		case status.Role == "primary":
			status.InSync = status.Healthy
		case primary != nil && primary.status.Healthy && status.Healthy:
			status.InSync = sameRoster(primary.roster, res.roster)
		}
		out = append(out, status)
	}
	sortStatuses(out, r.primaryName, r.replicas)
	return out
}

func sameRoster(a, b player.Roster) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !samePlayer(a[i], b[i]) {
			return false
		}
	}
	return true
}

func samePlayer(a, b player.Player) bool {
	if !slices.Equal(a.Photos, b.Photos) {
		return false
	}
	a.Photos, b.Photos = nil, nil
	return reflect.DeepEqual(a, b)
}

// sortStatuses restores configuration order; pool results arrive in completion order.
func sortStatuses(statuses []StoreStatus, primaryName string, replicas []replica) {
	rank := make(map[string]int, len(replicas)+1)
	rank[primaryName] = 0
	for i, rep := range replicas {
		rank[rep.Name] = i + 1
	}
	slices.SortStableFunc(statuses, func(a, b StoreStatus) int {
		return rank[a.Name] - rank[b.Name]
	})
}
