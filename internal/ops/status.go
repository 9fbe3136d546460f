package ops

import "github.com/hpungsan/roster/internal/store"

// StatusOutput summarizes the roster.
type StatusOutput struct {
	SessionID string `json:"session_id"`
	Total     int    `json:"total"`
	Capacity  int    `json:"capacity"`
	UndoDepth int    `json:"undo_depth"`
}

// Status reports roster size and undo depth.
func Status(r *Roster) (*StatusOutput, error) {
	out := &StatusOutput{SessionID: r.sessionID}
	_ = r.locked(func(s *store.Store) error {
		out.Total = s.Len()
		out.Capacity = s.Capacity()
		out.UndoDepth = s.UndoDepth()
		return nil
	})
	return out, nil
}
