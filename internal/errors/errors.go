package errors

import "fmt"

// ErrorCode represents a roster error code.
type ErrorCode string

const (
	ErrInvalidRequest   ErrorCode = "INVALID_REQUEST"   // 400
	ErrNotFound         ErrorCode = "NOT_FOUND"         // 404
	ErrDuplicateID      ErrorCode = "DUPLICATE_ID"      // 409
	ErrStackEmpty       ErrorCode = "STACK_EMPTY"       // 409
	ErrRosterFull       ErrorCode = "ROSTER_FULL"       // 409
	ErrCapacityExceeded ErrorCode = "CAPACITY_EXCEEDED" // 507, logged only; delete still succeeds
	ErrInternal         ErrorCode = "INTERNAL"          // 500
)

// RosterError represents a structured error with code, status, and details.
type RosterError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *RosterError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *RosterError {
	return &RosterError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewNotFound creates a 404 error for a student id with no live record.
func NewNotFound(id int) *RosterError {
	return &RosterError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("student not found: %d", id),
		Details: map[string]any{"id": id},
	}
}

// NewDuplicateID creates a 409 error when a live record already uses id.
func NewDuplicateID(id int) *RosterError {
	return &RosterError{
		Code:    ErrDuplicateID,
		Status:  409,
		Message: fmt.Sprintf("student id %d already exists", id),
		Details: map[string]any{"id": id},
	}
}

// NewStackEmpty creates a 409 error for undo with nothing to restore.
func NewStackEmpty() *RosterError {
	return &RosterError{
		Code:    ErrStackEmpty,
		Status:  409,
		Message: "undo stack is empty",
	}
}

// NewRosterFull creates a 409 error when the roster already holds capacity records.
func NewRosterFull(capacity int) *RosterError {
	return &RosterError{
		Code:    ErrRosterFull,
		Status:  409,
		Message: fmt.Sprintf("roster is full (max %d students)", capacity),
		Details: map[string]any{"capacity": capacity},
	}
}

// NewCapacityExceeded describes an undo stack overflow. It is never returned
// from delete; callers log it so the lost undo is observable.
func NewCapacityExceeded(id, capacity int) *RosterError {
	return &RosterError{
		Code:    ErrCapacityExceeded,
		Status:  507,
		Message: fmt.Sprintf("undo stack full (max %d), deletion of %d cannot be undone", capacity, id),
		Details: map[string]any{"id": id, "capacity": capacity},
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *RosterError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &RosterError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if an error is a RosterError with the given code.
func Is(err error, code ErrorCode) bool {
	if rErr, ok := err.(*RosterError); ok {
		return rErr.Code == code
	}
	return false
}
