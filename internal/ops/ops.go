package ops

import (
	"crypto/rand"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/hpungsan/roster/internal/config"
	"github.com/hpungsan/roster/internal/errors"
	"github.com/hpungsan/roster/internal/store"
	"github.com/hpungsan/roster/internal/student"
)

// Roster wraps one store behind a mutex so the MCP and web surfaces can call
// operations concurrently. Each operation runs to completion under the lock.
type Roster struct {
	mu        sync.Mutex
	store     *store.Store
	logger    *slog.Logger
	sessionID string
}

// NewRoster creates an empty roster sized from cfg. A nil logger discards output.
func NewRoster(cfg *config.Config, logger *slog.Logger) *Roster {
	capacity := store.DefaultCapacity
	if cfg != nil && cfg.Capacity > 0 {
		capacity = cfg.Capacity
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	sessionID := newSessionID()
	return &Roster{
		store:     store.New(capacity),
		logger:    logger.With("session", sessionID),
		sessionID: sessionID,
	}
}

// SessionID returns the ULID identifying this roster in logs.
func (r *Roster) SessionID() string {
	return r.sessionID
}

// locked runs fn with exclusive access to the store.
func (r *Roster) locked(fn func(s *store.Store) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(r.store)
}

// rejected logs a failed operation at debug level and passes the error through.
func (r *Roster) rejected(op string, err error) error {
	r.logger.Debug("operation rejected", "op", op, "error", err)
	return err
}

// validateName normalizes a student name and enforces the length limits.
func validateName(name string) (string, error) {
	name = student.NormalizeName(name)
	if name == "" {
		return "", errors.NewInvalidRequest("name is required")
	}
	if n := student.CountChars(name); n > student.MaxNameChars {
		return "", errors.NewInvalidRequest(fmt.Sprintf("name exceeds maximum length of %d characters (got %d)", student.MaxNameChars, n))
	}
	return name, nil
}

// validateGrade rejects NaN and infinities, which have no place in an ordering.
func validateGrade(grade float64) error {
	if math.IsNaN(grade) || math.IsInf(grade, 0) {
		return errors.NewInvalidRequest("grade must be a finite number")
	}
	return nil
}

// parseKey resolves a sort key or returns ErrInvalidRequest.
func parseKey(s string) (student.Key, error) {
	key, ok := student.ParseKey(s)
	if !ok {
		return "", errors.NewInvalidRequest(fmt.Sprintf("sort key must be one of id, name, grade (got %q)", s))
	}
	return key, nil
}

func newSessionID() string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
