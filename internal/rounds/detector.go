package rounds

import (
	"math"
	"sort"
)

// Detection policy. These mirror the game clock, not tunables: a standard
// round's action phase starts at 1:40 and the spike detonates 35 seconds
// after plant.
const (
	// StandardRoundDurationSeconds is the clock value at round start (1:40).
	StandardRoundDurationSeconds = 100

	// SpikeTimeoutSeconds bounds a round's length after the spike is planted.
	SpikeTimeoutSeconds = 35.0

	// RoundEndBufferSeconds cuts the previous round this far before the next
	// round's refined start.
	RoundEndBufferSeconds = 10.0

	// RoundEndNothingThreshold is how many consecutive "nothing" readings
	// confirm that the round UI has really disappeared.
	RoundEndNothingThreshold = 2

	// Replay suppression window: a clock value in [0:31, 1:29] seen right
	// after the timer UI vanished is a broadcast instant replay showing a
	// stale mid-round time, not a live reading.
	replayWindowMinSeconds = 31
	replayWindowMaxSeconds = 89
)

// roundStartTimers are the clock values accepted as a round start. 1:40 is
// the exact start of a standard round; the rest tolerate a few seconds of
// sampling slack.
var roundStartTimers = map[string]struct{}{
	"1:40": {}, "1:39": {}, "1:38": {}, "1:37": {}, "1:36": {}, "1:35": {},
	"1:34": {}, "1:33": {}, "1:32": {}, "1:31": {}, "1:30": {},
}

// IsRoundStartTimer reports whether a token marks the beginning of a
// round's action phase.
func IsRoundStartTimer(token string) bool {
	_, ok := roundStartTimers[token]
	return ok
}

// refineStartTimestamp projects an observed round-start sample back to the
// moment the clock read 1:40. Sampling is coarse, so the first reading of a
// round may already be a few seconds in; e.g. seeing 1:35 at t means the
// round started at t-5. A clock above 1:40 clamps to zero elapsed.
func refineStartTimestamp(observed float64, token string) float64 {
	secs, ok := ParseTimer(token)
	if !ok {
		return observed
	}
	elapsed := float64(StandardRoundDurationSeconds - secs)
	if elapsed < 0 {
		elapsed = 0
	}
	return observed - elapsed
}

// sweepState is the accumulator threaded through the detection sweep.
type sweepState struct {
	open *Round // currently open round, nil between rounds

	spikePlantTime float64
	spikePlanted   bool

	nothingRun   int     // consecutive "nothing" readings seen
	nothingStart float64 // timestamp of the first reading in the run
}

// DetectRounds converts a set of timer readings into the ordered list of
// rounds they describe. The input order is irrelevant: readings are
// stable-sorted by timestamp before a single left-to-right sweep, so the
// same set always yields the same rounds. Unrecognized tokens fall through
// every branch; no input makes DetectRounds fail.
func DetectRounds(readings []TimerReading) []Round {
	if len(readings) == 0 {
		return nil
	}

	sorted := make([]TimerReading, len(readings))
	copy(sorted, readings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp < sorted[j].Timestamp
	})

	var rounds []Round
	var st sweepState

	for _, reading := range sorted {
		kind, secs := ClassifyToken(reading.Token)

		// A mid-round clock value appearing while a "nothing" run is in
		// progress is a replay artifact; treat it as "nothing" too. Values
		// outside the window, including the 1:30-1:40 start range, are
		// never reinterpreted.
		if st.nothingRun > 0 && kind == TokenKindTimer &&
			secs >= replayWindowMinSeconds && secs <= replayWindowMaxSeconds {
			kind = TokenKindNothing
		}

		if kind == TokenKindNothing {
			if st.nothingRun == 0 {
				st.nothingStart = reading.Timestamp
			}
			st.nothingRun++

			if st.open != nil && st.nothingRun >= RoundEndNothingThreshold {
				// The round ended when the UI first vanished, not when the
				// disappearance was confirmed.
				closeRound(st.open, st.nothingStart, EndTimerDisappeared)
				rounds = append(rounds, *st.open)
				st.open = nil
				st.spikePlanted = false
			}
			continue
		}

		st.nothingRun = 0
		st.nothingStart = 0

		if kind == TokenKindTimer && IsRoundStartTimer(reading.Token) {
			refined := refineStartTimestamp(reading.Timestamp, reading.Token)

			if st.open != nil {
				// A new round start is a hard boundary: cut the previous
				// round shortly before it, but never before its own start.
				end := math.Max(st.open.StartTimestamp, refined-RoundEndBufferSeconds)
				closeRound(st.open, end, EndNextRoundStarted)
				rounds = append(rounds, *st.open)
			}

			st.open = &Round{
				RoundNumber:            len(rounds) + 1,
				StartTimestamp:         refined,
				StartTimeFmt:           FormatSeconds(refined),
				ObservedStartTimestamp: reading.Timestamp,
				StartTimer:             reading.Token,
			}
			st.spikePlanted = false
		}

		if st.open != nil && !st.open.SpikePlanted &&
			(reading.VisualCue || kind == TokenKindSpike) {
			st.open.SpikePlanted = true
			plant := reading.Timestamp
			st.open.SpikePlantTimestamp = &plant
			st.spikePlantTime = plant
			st.spikePlanted = true
		}

		if st.open != nil && st.spikePlanted &&
			reading.Timestamp-st.spikePlantTime >= SpikeTimeoutSeconds {
			// The spike resolves 35s after plant even if the confirming
			// reading lands later.
			closeRound(st.open, st.spikePlantTime+SpikeTimeoutSeconds, EndSpikeTimeout)
			rounds = append(rounds, *st.open)
			st.open = nil
			st.spikePlanted = false
		}
	}

	if st.open != nil {
		closeRound(st.open, sorted[len(sorted)-1].Timestamp, EndVODEnded)
		rounds = append(rounds, *st.open)
	}

	for i := range rounds {
		if rounds[i].EndTimestamp != nil {
			rounds[i].Duration = *rounds[i].EndTimestamp - rounds[i].StartTimestamp
		}
	}

	return rounds
}

// closeRound stamps the end of an open round.
func closeRound(r *Round, end float64, reason EndReason) {
	r.EndTimestamp = &end
	r.EndTimeFmt = FormatSeconds(end)
	r.EndReason = reason
}
