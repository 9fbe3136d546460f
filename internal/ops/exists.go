package ops

import "github.com/hpungsan/roster/internal/store"

// ExistsInput contains parameters for the Exists operation.
type ExistsInput struct {
	ID int
}

// ExistsOutput contains the result of the Exists operation.
type ExistsOutput struct {
	ID     int  `json:"id"`
	Exists bool `json:"exists"`
}

// Exists reports whether a live student has the given id. Callers use it to
// pre-validate an id before Add.
func Exists(r *Roster, input ExistsInput) (*ExistsOutput, error) {
	var exists bool
	_ = r.locked(func(s *store.Store) error {
		exists = s.Exists(input.ID)
		return nil
	})
	return &ExistsOutput{ID: input.ID, Exists: exists}, nil
}
