package player

import "strings"

// Criteria narrows a roster. Zero values mean "no filter".
type Criteria struct {
	Name   string
	Number *int
}

func (c Criteria) IsEmpty() bool {
	return strings.TrimSpace(c.Name) == "" && c.Number == nil
}

// Filter returns the players matching every set criterion, keeping roster order.
// The input roster is never modified.
// A blank name is absent; any other fragment is matched as typed, spaces included.
func Filter(roster Roster, c Criteria) Roster {
	if c.IsEmpty() {
		return append(Roster{}, roster.Clone()...)
	}
	hasName := strings.TrimSpace(c.Name) != ""
	name := strings.ToLower(c.Name)

	out := make(Roster, 0, len(roster))
	for _, p := range roster {
		if hasName && !strings.Contains(strings.ToLower(p.Name), name) {
			continue
		}
		if c.Number != nil && p.Number != *c.Number {
			continue
		}
		out = append(out, p.Clone())
	}

	return out
}

func FilterPlayers(roster Roster, name string, number *int) Roster {
	return Filter(roster, Criteria{Name: name, Number: number})
}
