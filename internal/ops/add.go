package ops

import (
	"github.com/hpungsan/roster/internal/store"
	"github.com/hpungsan/roster/internal/student"
)

// AddInput contains parameters for the Add operation.
type AddInput struct {
	ID    int
	Name  string // required, trimmed, max student.MaxNameChars
	Grade float64
}

// AddOutput contains the result of the Add operation.
type AddOutput struct {
	Record student.Record `json:"record"`
}

// Add inserts a new student at the front of the roster.
func Add(r *Roster, input AddInput) (*AddOutput, error) {
	name, err := validateName(input.Name)
	if err != nil {
		return nil, r.rejected("add", err)
	}
	if err := validateGrade(input.Grade); err != nil {
		return nil, r.rejected("add", err)
	}

	var added student.Record
	err = r.locked(func(s *store.Store) error {
		var err error
		added, err = s.Add(input.ID, name, input.Grade)
		return err
	})
	if err != nil {
		return nil, r.rejected("add", err)
	}

	r.logger.Info("student added", "id", added.ID, "name", added.Name, "grade", added.Grade)
	return &AddOutput{Record: added}, nil
}
