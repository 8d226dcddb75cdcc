package rounds

// Service derives round boundaries from stored readings and delegates
// storage to Repository. Detection is a pure function of the reading set,
// so rounds are recomputed on every read rather than cached; registering
// more readings simply changes what the next read derives.
type Service struct {
	repo        Repository
	minReadings int
}

// NewService returns a Service that uses repo. Matches with fewer than
// minReadings registered readings yield empty results; a minReadings <= 0
// disables the guard.
func NewService(repo Repository, minReadings int) *Service {
	if minReadings < 0 {
		minReadings = 0
	}
	return &Service{repo: repo, minReadings: minReadings}
}

// RegisterReadings records timer readings for the given match.
func (s *Service) RegisterReadings(matchID MatchID, readings []TimerReading) error {
	return s.repo.RegisterReadings(matchID, readings)
}

// GetRounds runs boundary detection over the match's current reading set.
func (s *Service) GetRounds(matchID MatchID) (detected []Round, ok bool) {
	readings, _, ok := s.repo.GetReadingsSnapshot(matchID)
	if !ok {
		return nil, false
	}
	if len(readings) < s.minReadings {
		return nil, true
	}
	return DetectRounds(readings), true
}

// GetClips returns the clip cut list for the match's detected rounds.
func (s *Service) GetClips(matchID MatchID) (clips []RoundClip, ok bool) {
	detected, ok := s.GetRounds(matchID)
	if !ok {
		return nil, false
	}
	return BuildClips(detected), true
}

// GetSummary returns the operator-facing text report for the match.
func (s *Service) GetSummary(matchID MatchID) (summary string, ok bool) {
	detected, ok := s.GetRounds(matchID)
	if !ok {
		return "", false
	}
	return Summary(detected), true
}

// EndMatch marks the match as ended; new readings will be rejected.
func (s *Service) EndMatch(matchID MatchID) error {
	return s.repo.EndMatch(matchID)
}
