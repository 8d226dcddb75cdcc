package rounds

import "encoding/json"

// MatchID uniquely identifies one processed match VOD.
type MatchID string

// Token sentinels emitted by the upstream vision pipeline when a frame
// carries no readable timer, or when the spike-planted overlay replaces it.
const (
	TokenNothing      = "nothing"
	TokenSpikePlanted = "spike planted"
)

// TokenKind classifies a reading's token once, at ingest, so the sweep does
// not need to re-test raw strings at every step.
type TokenKind int

const (
	// TokenKindRaw is an unparseable token passed through for diagnostics.
	TokenKindRaw TokenKind = iota
	// TokenKindTimer is a canonical M:SS clock value.
	TokenKindTimer
	// TokenKindNothing means no timer UI was visible in the frame.
	TokenKindNothing
	// TokenKindSpike is the spike-planted sentinel.
	TokenKindSpike
)

// ClassifyToken returns the kind of a token and, for clock values, the
// parsed total seconds.
func ClassifyToken(token string) (kind TokenKind, seconds int) {
	switch token {
	case TokenNothing:
		return TokenKindNothing, 0
	case TokenSpikePlanted:
		return TokenKindSpike, 0
	}
	if secs, ok := ParseTimer(token); ok {
		return TokenKindTimer, secs
	}
	return TokenKindRaw, 0
}

// EndReason records why the engine closed a round.
type EndReason string

const (
	EndNextRoundStarted EndReason = "next_round_started"
	EndTimerDisappeared EndReason = "timer_disappeared"
	EndSpikeTimeout     EndReason = "spike_timeout"
	EndVODEnded         EndReason = "vod_ended"
)

// TimerReading is one timestamped observation of the on-screen round timer.
// Timestamp is seconds from the start of the video. Readings are not
// guaranteed to arrive sorted or with unique timestamps.
type TimerReading struct {
	Timestamp float64 `json:"timestamp"`
	Token     string  `json:"timer_value"`
	VisualCue bool    `json:"red_triangle,omitempty"`
}

// UnmarshalJSON accepts both wire shapes the vision pipeline produces:
// timer_value as a plain string, or as {"timer": ..., "red_triangle": ...}
// when the spike indicator was detected separately. A null timer_value is
// kept as an empty token, which falls through every detection branch.
func (r *TimerReading) UnmarshalJSON(data []byte) error {
	var raw struct {
		Timestamp  float64         `json:"timestamp"`
		TimerValue json.RawMessage `json:"timer_value"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.Timestamp = raw.Timestamp
	r.Token = ""
	r.VisualCue = false

	if len(raw.TimerValue) == 0 || string(raw.TimerValue) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(raw.TimerValue, &s); err == nil {
		r.Token = s
		return nil
	}

	var composite struct {
		Timer       string `json:"timer"`
		RedTriangle bool   `json:"red_triangle"`
	}
	if err := json.Unmarshal(raw.TimerValue, &composite); err != nil {
		return err
	}
	r.Token = composite.Timer
	r.VisualCue = composite.RedTriangle
	return nil
}

// Round is one detected round. The engine creates it when a round-start
// timer is observed, may mark the spike planted while it is open, and
// closes it exactly once; closed rounds are never mutated again.
type Round struct {
	RoundNumber            int       `json:"round_number"`
	StartTimestamp         float64   `json:"start_timestamp"`
	StartTimeFmt           string    `json:"start_time_fmt"`
	ObservedStartTimestamp float64   `json:"observed_start_timestamp"`
	StartTimer             string    `json:"start_timer"`
	EndTimestamp           *float64  `json:"end_timestamp"`
	EndTimeFmt             string    `json:"end_time_fmt"`
	EndReason              EndReason `json:"end_reason"`
	SpikePlanted           bool      `json:"spike_planted"`
	SpikePlantTimestamp    *float64  `json:"spike_plant_timestamp"`
	Duration               float64   `json:"duration"`
}

// RoundClip is the projection of a closed Round consumed by the clip
// generator: just the cut points and spike flag, with display copies.
type RoundClip struct {
	RoundNumber  int      `json:"round_number"`
	StartTime    float64  `json:"start_time"`
	StartTimeFmt string   `json:"start_time_fmt"`
	EndTime      *float64 `json:"end_time"`
	EndTimeFmt   string   `json:"end_time_fmt"`
	Duration     float64  `json:"duration"`
	SpikePlanted bool     `json:"spike_planted"`
}

// MatchState is the top-level in-memory representation of one match VOD's
// accumulated timer readings.
type MatchState struct {
	ID       MatchID
	Readings []TimerReading
	Ended    bool
}
