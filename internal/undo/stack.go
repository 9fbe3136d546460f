// Package undo provides a bounded LIFO stack for remembering deletions.
package undo

// Stack is a fixed-capacity LIFO stack. Pushing onto a full stack is a no-op;
// the oldest entries are never evicted to make room.
type Stack[T any] struct {
	items    []T
	capacity int
}

// New creates a Stack holding at most capacity entries.
// A capacity below 1 yields a stack that drops every push.
func New[T any](capacity int) *Stack[T] {
	capacity = max(capacity, 0)
	return &Stack[T]{
		items:    make([]T, 0, capacity),
		capacity: capacity,
	}
}

// Push appends v to the top of the stack. It returns false, leaving the stack
// unchanged, when the stack is already at capacity.
func (s *Stack[T]) Push(v T) bool {
	if len(s.items) >= s.capacity {
		return false
	}
	s.items = append(s.items, v)
	return true
}

// Pop removes and returns the most recently pushed entry.
// Returns the zero value and false if the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	top := s.items[len(s.items)-1]
	s.items[len(s.items)-1] = zero
	s.items = s.items[:len(s.items)-1]
	return top, true
}

// IsEmpty returns true if there is nothing to pop.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Len returns the number of entries on the stack.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// Cap returns the maximum number of entries the stack holds.
func (s *Stack[T]) Cap() int {
	return s.capacity
}
