package rounds

// Store is the persistence abstraction for match state.
// Implementations can be in-memory, file-based, or remote.
// The Repository uses Store for all reads and writes; callers of Repository
// do not need to know which Store is used.
type Store interface {
	GetMatch(id MatchID) (*MatchState, bool)
	SetMatch(m *MatchState)
	ListMatchIDs() []MatchID
}

// InMemoryStore is an in-memory implementation of Store.
type InMemoryStore struct {
	matches map[MatchID]*MatchState
}

// NewInMemoryStore returns a new empty in-memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		matches: make(map[MatchID]*MatchState),
	}
}

// GetMatch implements Store.GetMatch.
func (s *InMemoryStore) GetMatch(id MatchID) (*MatchState, bool) {
	m, ok := s.matches[id]
	return m, ok
}

// SetMatch implements Store.SetMatch.
func (s *InMemoryStore) SetMatch(m *MatchState) {
	s.matches[m.ID] = m
}

// ListMatchIDs implements Store.ListMatchIDs.
func (s *InMemoryStore) ListMatchIDs() []MatchID {
	ids := make([]MatchID, 0, len(s.matches))
	for id := range s.matches {
		ids = append(ids, id)
	}
	return ids
}
