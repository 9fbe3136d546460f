package ops

import (
	"github.com/hpungsan/roster/internal/store"
	"github.com/hpungsan/roster/internal/student"
)

// SortInput contains parameters for the Sort operation.
type SortInput struct {
	Key       string // required: id, name, or grade
	Ascending *bool  // default: true (nil means default)
}

// SortOutput contains the result of the Sort operation.
type SortOutput struct {
	Key       student.Key `json:"key"`
	Ascending bool        `json:"ascending"`
	Total     int         `json:"total"`
}

// Sort reorders the roster in place. Students with equal keys keep their
// relative order.
func Sort(r *Roster, input SortInput) (*SortOutput, error) {
	key, err := parseKey(input.Key)
	if err != nil {
		return nil, r.rejected("sort", err)
	}
	ascending := true
	if input.Ascending != nil {
		ascending = *input.Ascending
	}

	var total int
	_ = r.locked(func(s *store.Store) error {
		s.Sort(key, ascending)
		total = s.Len()
		return nil
	})

	r.logger.Info("roster sorted", "key", key, "ascending", ascending, "total", total)
	return &SortOutput{Key: key, Ascending: ascending, Total: total}, nil
}
