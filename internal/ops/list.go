package ops

import (
	"github.com/hpungsan/roster/internal/store"
	"github.com/hpungsan/roster/internal/student"
)

// ListOutput contains the result of the List operation.
type ListOutput struct {
	Items    []student.Record `json:"items"`
	Total    int              `json:"total"`
	Capacity int              `json:"capacity"`
}

// List returns a snapshot of the roster in its current order.
func List(r *Roster) (*ListOutput, error) {
	out := &ListOutput{}
	_ = r.locked(func(s *store.Store) error {
		out.Items = s.List()
		out.Capacity = s.Capacity()
		return nil
	})
	out.Total = len(out.Items)
	return out, nil
}
