package ops

import (
	"github.com/hpungsan/roster/internal/store"
	"github.com/hpungsan/roster/internal/student"
)

// SearchInput contains parameters for the Search operation.
type SearchInput struct {
	ID int
}

// SearchOutput contains the result of the Search operation.
// An empty result is not an error.
type SearchOutput struct {
	ID    int              `json:"id"`
	Items []student.Record `json:"items"`
	Found bool             `json:"found"`
}

// Search returns every live student with the given id.
func Search(r *Roster, input SearchInput) (*SearchOutput, error) {
	var items []student.Record
	_ = r.locked(func(s *store.Store) error {
		items = s.Search(input.ID)
		return nil
	})
	return &SearchOutput{ID: input.ID, Items: items, Found: len(items) > 0}, nil
}
