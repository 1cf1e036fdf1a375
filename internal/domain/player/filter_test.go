package player

import (
	"reflect"
	"strings"
	"testing"
)

func gretzkyAndCrosby() Roster {
	sample := SamplePlayers()
	return Roster{sample[0], sample[1]}
}

func intPtr(v int) *int {
	return &v
}

func TestFilter_Scenario(t *testing.T) {
	roster := gretzkyAndCrosby()

	tests := []struct {
		name    string
		search  string
		number  *int
		wantIDs []int
	}{
		{name: "name fragment", search: "cros", wantIDs: []int{2}},
		{name: "name is case insensitive", search: "GRETZ", wantIDs: []int{1}},
		{name: "exact number", number: intPtr(99), wantIDs: []int{1}},
		{name: "no match", search: "x", wantIDs: []int{}},
		{name: "both criteria must hold", search: "cros", number: intPtr(99), wantIDs: []int{}},
		{name: "blank name is ignored", search: "   ", wantIDs: []int{1, 2}},
		{name: "padded fragment is matched as typed", search: "gretzky ", wantIDs: []int{}},
		{name: "inner space is part of the fragment", search: "wayne g", wantIDs: []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterPlayers(roster, tt.search, tt.number)
			ids := make([]int, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			if !reflect.DeepEqual(ids, tt.wantIDs) {
				t.Fatalf("unexpected ids: got=%v want=%v", ids, tt.wantIDs)
			}
		})
	}
}

func TestFilter_NoCriteriaIsIdentity(t *testing.T) {
	roster := SamplePlayers()

	got := Filter(roster, Criteria{Name: "  "})
	if !reflect.DeepEqual(got, roster) {
		t.Fatalf("expected identity without criteria")
	}

	got[0].Photos[0] = "changed"
	if roster[0].Photos[0] != "gretzky_photo" {
		t.Fatalf("unfiltered result aliases input photos")
	}

	if got := Filter(nil, Criteria{}); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil result for nil roster, got %#v", got)
	}
}

func TestFilter_NumberIsSoundAndComplete(t *testing.T) {
	roster := SamplePlayers()

	for _, n := range []int{29, 88, 99, 1000} {
		got := Filter(roster, Criteria{Number: intPtr(n)})

		var want Roster
		for _, p := range roster {
			if p.Number == n {
				want = append(want, p)
			}
		}
		if len(got) != len(want) {
			t.Fatalf("number %d: got %d players, want %d", n, len(got), len(want))
		}
		for i := range got {
			if got[i].Number != n {
				t.Fatalf("number %d: player %d has number %d", n, got[i].ID, got[i].Number)
			}
			if got[i].ID != want[i].ID {
				t.Fatalf("number %d: order changed at %d: got=%d want=%d", n, i, got[i].ID, want[i].ID)
			}
		}
	}
}

func TestFilter_NameMembershipMatchesSubstring(t *testing.T) {
	roster := SamplePlayers()

	for _, fragment := range []string{"joseph", "David", "an", "ZZZ", "gretzky ", " joseph", "david s"} {
		want := []int{}
		for _, p := range roster {
			if strings.Contains(strings.ToLower(p.Name), strings.ToLower(fragment)) {
				want = append(want, p.ID)
			}
		}

		got := []int{}
		for _, p := range Filter(roster, Criteria{Name: fragment}) {
			got = append(got, p.ID)
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("fragment %q: got=%v want=%v", fragment, got, want)
		}
	}
}

func TestFilter_DoesNotShareStorageWithInput(t *testing.T) {
	roster := gretzkyAndCrosby()

	got := Filter(roster, Criteria{Name: "crosby"})
	got[0].Photos[0] = "changed"

	if roster[1].Photos[0] != "crosby_photo" {
		t.Fatalf("filter result aliases input photos")
	}
}
