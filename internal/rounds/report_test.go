package rounds

import (
	"strings"
	"testing"
)

func closedRound(n int, start, end float64, reason EndReason) Round {
	return Round{
		RoundNumber:    n,
		StartTimestamp: start,
		StartTimeFmt:   FormatSeconds(start),
		StartTimer:     "1:40",
		EndTimestamp:   &end,
		EndTimeFmt:     FormatSeconds(end),
		EndReason:      reason,
		Duration:       end - start,
	}
}

func TestBuildClips(t *testing.T) {
	plant := 150.0
	detected := []Round{
		closedRound(1, 0, 89, EndNextRoundStarted),
		{
			RoundNumber:         2,
			StartTimestamp:      99,
			StartTimeFmt:        "1:39",
			EndTimestamp:        floatPtr(185),
			EndTimeFmt:          "3:05",
			EndReason:           EndSpikeTimeout,
			SpikePlanted:        true,
			SpikePlantTimestamp: &plant,
			Duration:            86,
		},
	}

	clips := BuildClips(detected)
	if len(clips) != 2 {
		t.Fatalf("expected 2 clips, got %d", len(clips))
	}

	c := clips[0]
	if c.RoundNumber != 1 || c.StartTime != 0 || c.EndTime == nil || *c.EndTime != 89 {
		t.Errorf("clip 1 cut points: %+v", c)
	}
	if c.StartTimeFmt != "0:00" || c.EndTimeFmt != "1:29" {
		t.Errorf("clip 1 display times: start %q end %q", c.StartTimeFmt, c.EndTimeFmt)
	}
	if c.Duration != 89 {
		t.Errorf("clip 1 duration = %v, want 89", c.Duration)
	}
	if clips[1].SpikePlanted != true {
		t.Error("clip 2 should carry spike_planted")
	}
}

func TestBuildClips_empty(t *testing.T) {
	clips := BuildClips(nil)
	if clips == nil || len(clips) != 0 {
		t.Errorf("expected empty non-nil clip list, got %v", clips)
	}
}

func TestSummary(t *testing.T) {
	plant := 20.0
	detected := []Round{
		closedRound(1, 9, 110, EndTimerDisappeared),
		{
			RoundNumber:         2,
			StartTimestamp:      130,
			StartTimer:          "1:38",
			EndTimestamp:        floatPtr(165),
			EndReason:           EndSpikeTimeout,
			SpikePlanted:        true,
			SpikePlantTimestamp: &plant,
			Duration:            35,
		},
	}

	out := Summary(detected)
	if !strings.Contains(out, "ROUND DETECTION SUMMARY - 2 Rounds Detected") {
		t.Errorf("missing header: %s", out)
	}
	if !strings.Contains(out, "Round 1:") || !strings.Contains(out, "Round 2:") {
		t.Errorf("missing round sections: %s", out)
	}
	if !strings.Contains(out, "Start: 9.0s (Timer: 1:40)") {
		t.Errorf("missing start line: %s", out)
	}
	if !strings.Contains(out, "End:   110.0s (Reason: timer_disappeared)") {
		t.Errorf("missing end line: %s", out)
	}
	if !strings.Contains(out, "Duration: 101.0s") {
		t.Errorf("missing duration line: %s", out)
	}
	if !strings.Contains(out, "Spike: Not planted") {
		t.Errorf("missing spike line for round 1: %s", out)
	}
	if !strings.Contains(out, "Spike: Planted at 20.0s") {
		t.Errorf("missing spike line for round 2: %s", out)
	}
}

func TestSummary_tolerates_open_round(t *testing.T) {
	detected := []Round{{RoundNumber: 1, StartTimestamp: 5, StartTimer: "1:39"}}

	out := Summary(detected)
	if !strings.Contains(out, "still open") {
		t.Errorf("open round should be rendered, got: %s", out)
	}
}

func TestSummary_no_rounds(t *testing.T) {
	out := Summary(nil)
	if !strings.Contains(out, "0 Rounds Detected") {
		t.Errorf("expected zero-round header: %s", out)
	}
}

func floatPtr(f float64) *float64 { return &f }
