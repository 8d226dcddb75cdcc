package rounds

import (
	"errors"
	"sync"
)

// Repository defines the concurrency-safe contract for accessing and
// mutating in-memory match state.
type Repository interface {
	// RegisterReadings appends timer readings to the given match, creating
	// the match if it does not exist. Readings need not arrive sorted or
	// with unique timestamps; the detection sweep orders them itself.
	// If the match has been ended, an error is returned.
	RegisterReadings(matchID MatchID, readings []TimerReading) error

	// GetReadingsSnapshot returns a copy of all readings registered for the
	// given match, in registration order, along with the match's ended
	// flag. The ok return is false if the match does not exist.
	GetReadingsSnapshot(matchID MatchID) (readings []TimerReading, ended bool, ok bool)

	// EndMatch marks a match as ended. After this, new readings for the
	// match will be rejected.
	EndMatch(matchID MatchID) error

	// ActiveMatchCount returns the number of matches that are not ended.
	// Used for metrics.
	ActiveMatchCount() int
}

// ErrMatchEnded is returned when attempting to register readings on a
// match that has already been ended.
var ErrMatchEnded = errors.New("match has ended")

// InMemoryRepository is a concurrency-safe in-memory implementation of
// Repository. It uses a Store for persistence; by default that is an
// InMemoryStore.
type InMemoryRepository struct {
	mu    sync.RWMutex
	store Store
}

// NewInMemoryRepository constructs a new repository with a default in-memory store.
func NewInMemoryRepository() *InMemoryRepository {
	return NewInMemoryRepositoryWithStore(NewInMemoryStore())
}

// NewInMemoryRepositoryWithStore constructs a repository that uses the given Store.
// Useful for testing or for plugging in a different persistence backend.
func NewInMemoryRepositoryWithStore(store Store) *InMemoryRepository {
	return &InMemoryRepository{store: store}
}

// RegisterReadings implements Repository.RegisterReadings.
func (r *InMemoryRepository) RegisterReadings(matchID MatchID, readings []TimerReading) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	match := r.getOrCreateMatchLocked(matchID)
	if match.Ended {
		return ErrMatchEnded
	}

	match.Readings = append(match.Readings, readings...)
	return nil
}

// GetReadingsSnapshot implements Repository.GetReadingsSnapshot.
func (r *InMemoryRepository) GetReadingsSnapshot(matchID MatchID) (readings []TimerReading, ended bool, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	match, exists := r.store.GetMatch(matchID)
	if !exists {
		return nil, false, false
	}

	// Copy so callers never observe appends made after the snapshot.
	if len(match.Readings) > 0 {
		readings = make([]TimerReading, len(match.Readings))
		copy(readings, match.Readings)
	}

	return readings, match.Ended, true
}

// EndMatch implements Repository.EndMatch.
func (r *InMemoryRepository) EndMatch(matchID MatchID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	match, exists := r.store.GetMatch(matchID)
	if !exists {
		// Treat ending a non-existent match as a no-op for idempotency.
		return nil
	}

	match.Ended = true
	return nil
}

// ActiveMatchCount implements Repository.ActiveMatchCount.
func (r *InMemoryRepository) ActiveMatchCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, id := range r.store.ListMatchIDs() {
		if m, ok := r.store.GetMatch(id); ok && !m.Ended {
			n++
		}
	}
	return n
}

// getOrCreateMatchLocked returns an existing match or creates a new one.
// Caller must hold r.mu in write mode.
func (r *InMemoryRepository) getOrCreateMatchLocked(matchID MatchID) *MatchState {
	if match, ok := r.store.GetMatch(matchID); ok {
		return match
	}

	match := &MatchState{ID: matchID}
	r.store.SetMatch(match)
	return match
}
