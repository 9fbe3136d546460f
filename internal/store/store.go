// Package store holds the live roster of student records and the undo stack
// of deleted ones.
//
// A Store is not safe for concurrent use. Callers that share one across
// goroutines must serialize every operation (see ops.Roster).
package store

import (
	"slices"

	"github.com/hpungsan/roster/internal/errors"
	"github.com/hpungsan/roster/internal/student"
	"github.com/hpungsan/roster/internal/undo"
)

// DefaultCapacity is the default maximum number of live records, which is also
// the undo stack depth.
const DefaultCapacity = 100

// Store is an ordered collection of live records, most recently inserted
// first, plus a bounded stack of deleted records.
//
// Invariant: no two live records share an ID.
type Store struct {
	records    []student.Record
	tombstones *undo.Stack[student.Record]
	capacity   int
}

// New creates an empty Store. capacity bounds both the live records and the
// undo stack; values below 1 fall back to DefaultCapacity.
func New(capacity int) *Store {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Store{
		records:    make([]student.Record, 0, capacity),
		tombstones: undo.New[student.Record](capacity),
		capacity:   capacity,
	}
}

// Add inserts a new record at the front of the roster.
// Fails with ErrDuplicateID if a live record already has id, or ErrRosterFull
// if the roster is at capacity. The roster is unchanged on failure.
func (s *Store) Add(id int, name string, grade float64) (student.Record, error) {
	r := student.Record{ID: id, Name: name, Grade: grade}
	if err := s.insert(r); err != nil {
		return student.Record{}, err
	}
	return r, nil
}

// Exists reports whether a live record has id.
func (s *Store) Exists(id int) bool {
	return s.indexOf(id) >= 0
}

// Delete unlinks the record with id, keeping the others in order, and pushes a
// copy onto the undo stack. undoable is false when the stack was full and the
// copy was dropped; the delete succeeds either way.
func (s *Store) Delete(id int) (removed student.Record, undoable bool, err error) {
	i := s.indexOf(id)
	if i < 0 {
		return student.Record{}, false, errors.NewNotFound(id)
	}

	removed = s.records[i]
	s.records = slices.Delete(s.records, i, i+1)
	undoable = s.tombstones.Push(removed)
	return removed, undoable, nil
}

// Undo restores the most recently deleted record at the front of the roster.
//
// The popped entry is consumed whatever the outcome: if a live record has
// reclaimed its ID (ErrDuplicateID) or the roster is full (ErrRosterFull), the
// entry is discarded, not pushed back.
func (s *Store) Undo() (student.Record, error) {
	r, ok := s.tombstones.Pop()
	if !ok {
		return student.Record{}, errors.NewStackEmpty()
	}
	if err := s.insert(r); err != nil {
		return student.Record{}, err
	}
	return r, nil
}

// Search returns every live record with id, in roster order. The result is
// empty, not nil, when nothing matches.
func (s *Store) Search(id int) []student.Record {
	snapshot := s.List()
	matches := make([]student.Record, 0, 1)
	for _, r := range snapshot {
		if r.ID == id {
			matches = append(matches, r)
		}
	}
	return matches
}

// List returns a copy of the roster in its current order.
func (s *Store) List() []student.Record {
	out := make([]student.Record, len(s.records))
	copy(out, s.records)
	return out
}

// Sort reorders the roster in place. Rosters of 0 or 1 records are untouched.
func (s *Store) Sort(key student.Key, ascending bool) {
	if len(s.records) < 2 {
		return
	}
	student.SortBy(s.records, key, ascending)
}

// Len returns the number of live records.
func (s *Store) Len() int {
	return len(s.records)
}

// Capacity returns the maximum number of live records and undo entries.
func (s *Store) Capacity() int {
	return s.capacity
}

// UndoDepth returns how many deletions can currently be undone.
func (s *Store) UndoDepth() int {
	return s.tombstones.Len()
}

// insert places r at the front after the uniqueness and capacity checks.
func (s *Store) insert(r student.Record) error {
	if s.Exists(r.ID) {
		return errors.NewDuplicateID(r.ID)
	}
	if len(s.records) >= s.capacity {
		return errors.NewRosterFull(s.capacity)
	}
	s.records = slices.Insert(s.records, 0, r)
	return nil
}

func (s *Store) indexOf(id int) int {
	return slices.IndexFunc(s.records, func(r student.Record) bool {
		return r.ID == id
	})
}
