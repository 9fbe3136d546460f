package ops

import (
	"github.com/hpungsan/roster/internal/store"
	"github.com/hpungsan/roster/internal/student"
)

// UndoOutput contains the result of the Undo operation.
type UndoOutput struct {
	Restored  bool           `json:"restored"`
	Record    student.Record `json:"record"`
	UndoDepth int            `json:"undo_depth"`
}

// Undo restores the most recently deleted student at the front of the roster.
// The undo entry is consumed even when the restore fails.
func Undo(r *Roster) (*UndoOutput, error) {
	var (
		restored student.Record
		depth    int
	)
	err := r.locked(func(s *store.Store) error {
		var err error
		restored, err = s.Undo()
		depth = s.UndoDepth()
		return err
	})
	if err != nil {
		return nil, r.rejected("undo", err)
	}

	r.logger.Info("student restored", "id", restored.ID, "name", restored.Name, "grade", restored.Grade)
	return &UndoOutput{Restored: true, Record: restored, UndoDepth: depth}, nil
}
