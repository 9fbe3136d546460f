package ops

import (
	"github.com/hpungsan/roster/internal/errors"
	"github.com/hpungsan/roster/internal/store"
	"github.com/hpungsan/roster/internal/student"
)

// DeleteInput contains parameters for the Delete operation.
type DeleteInput struct {
	ID int
}

// DeleteOutput contains the result of the Delete operation.
type DeleteOutput struct {
	Deleted bool           `json:"deleted"`
	Record  student.Record `json:"record"`
	// Undoable is false when the undo stack was full and this deletion
	// cannot be restored. The delete itself still succeeded.
	Undoable  bool `json:"undoable"`
	UndoDepth int  `json:"undo_depth"`
}

// Delete removes a student and remembers it for Undo.
func Delete(r *Roster, input DeleteInput) (*DeleteOutput, error) {
	var (
		removed  student.Record
		undoable bool
		depth    int
		capacity int
	)
	err := r.locked(func(s *store.Store) error {
		var err error
		removed, undoable, err = s.Delete(input.ID)
		depth = s.UndoDepth()
		capacity = s.Capacity()
		return err
	})
	if err != nil {
		return nil, r.rejected("delete", err)
	}

	r.logger.Info("student deleted", "id", removed.ID, "name", removed.Name, "grade", removed.Grade, "undoable", undoable)
	if !undoable {
		lost := errors.NewCapacityExceeded(removed.ID, capacity)
		r.logger.Warn("undo stack full", "code", lost.Code, "error", lost.Message, "id", removed.ID)
	}

	return &DeleteOutput{
		Deleted:   true,
		Record:    removed,
		Undoable:  undoable,
		UndoDepth: depth,
	}, nil
}
