package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/hockey-roster/internal/domain/player"
	"github.com/riskibarqy/hockey-roster/internal/infrastructure/repository/memory"
)

func TestRosterService_LoadPersistsSeed(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRosterRepository(nil)
	service := NewRosterService(repo, nil)

	if _, err := service.Load(ctx); err != nil {
		t.Fatalf("load roster: %v", err)
	}

	stored, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load stored roster: %v", err)
	}
	if len(stored) != 16 {
		t.Fatalf("expected seed to be persisted, got %d players", len(stored))
	}
}

func TestRosterService_Search(t *testing.T) {
	ctx := context.Background()
	service := NewRosterService(memory.NewRosterRepository(player.SamplePlayers()), nil)

	cases := []struct {
		name    string
		terms   player.SearchTerms
		wantIDs []int
	}{
		{name: "name fragment", terms: player.NewSearchTerms("cros", nil), wantIDs: []int{2}},
		{name: "case insensitive", terms: player.NewSearchTerms("GRETZ", nil), wantIDs: []int{1}},
		{name: "number", terms: player.NewSearchTerms("", intPtr(99)), wantIDs: []int{1}},
		{name: "no match", terms: player.NewSearchTerms("zzz", nil), wantIDs: []int{}},
		{name: "name and number must both match", terms: player.NewSearchTerms("crosby", intPtr(99)), wantIDs: []int{}},
		{
			name:    "malformed number keeps previous",
			terms:   player.NewSearchTerms("", nil).WithNumberInput("87").WithNumberInput("8x"),
			wantIDs: []int{2},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := service.Search(ctx, tc.terms)
			if err != nil {
				t.Fatalf("search: %v", err)
			}
			if len(got) != len(tc.wantIDs) {
				t.Fatalf("unexpected match count: got=%d want=%d", len(got), len(tc.wantIDs))
			}
			for i, id := range tc.wantIDs {
				if got[i].ID != id {
					t.Fatalf("unexpected player at %d: got=%d want=%d", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestRosterService_GetPlayer(t *testing.T) {
	ctx := context.Background()
	service := NewRosterService(memory.NewRosterRepository(player.SamplePlayers()), nil)

	p, err := service.GetPlayer(ctx, 3)
	if err != nil {
		t.Fatalf("get player: %v", err)
	}
	if p.Name != "Connor McDavid" {
		t.Fatalf("unexpected player: %s", p.Name)
	}

	if _, err := service.GetPlayer(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := service.GetPlayer(ctx, 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRosterService_SaveAndReset(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRosterRepository(nil)
	service := NewRosterService(repo, nil)

	custom := player.Roster{{
		ID:     42,
		Name:   "Test Skater",
		Number: 42,
		Height: 1.8,
	}}
	if err := service.Save(ctx, custom); err != nil {
		t.Fatalf("save roster: %v", err)
	}
	got, err := service.Load(ctx)
	if err != nil {
		t.Fatalf("load roster: %v", err)
	}
	if len(got) != 1 || got[0].ID != 42 {
		t.Fatalf("expected custom roster, got %+v", got)
	}

	reset, err := service.Reset(ctx)
	if err != nil {
		t.Fatalf("reset roster: %v", err)
	}
	if len(reset) != 16 {
		t.Fatalf("expected sample roster after reset, got %d", len(reset))
	}
	stored, _ := repo.Load(ctx)
	if len(stored) != 16 {
		t.Fatalf("expected reset to persist, got %d", len(stored))
	}
}

func intPtr(v int) *int {
	return &v
}
