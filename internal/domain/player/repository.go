package player

import "context"

// Repository is the external store a roster is loaded from and saved to.
// Load returns an empty roster, not an error, when nothing has been saved yet.
type Repository interface {
	Load(ctx context.Context) (Roster, error)
	Save(ctx context.Context, roster Roster) error
}
