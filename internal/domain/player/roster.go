package player

import "fmt"

// Roster is an ordered list of players; order is display order.
type Roster []Player

func (r Roster) Validate() error {
	seen := make(map[int]struct{}, len(r))
	for _, p := range r {
		if err := p.Validate(); err != nil {
			return err
		}
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateID, p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}

func (r Roster) Clone() Roster {
	if r == nil {
		return nil
	}
	out := make(Roster, 0, len(r))
	for _, p := range r {
		out = append(out, p.Clone())
	}
	return out
}

func (r Roster) FindByID(id int) (Player, bool) {
	for _, p := range r {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return Player{}, false
}
