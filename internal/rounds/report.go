package rounds

import (
	"fmt"
	"strings"
)

// BuildClips projects closed rounds into the cut list consumed by the clip
// generator. Clips hold no state of their own; they are derived fresh on
// every export.
func BuildClips(detected []Round) []RoundClip {
	clips := make([]RoundClip, 0, len(detected))
	for _, r := range detected {
		clips = append(clips, RoundClip{
			RoundNumber:  r.RoundNumber,
			StartTime:    r.StartTimestamp,
			StartTimeFmt: r.StartTimeFmt,
			EndTime:      r.EndTimestamp,
			EndTimeFmt:   r.EndTimeFmt,
			Duration:     r.Duration,
			SpikePlanted: r.SpikePlanted,
		})
	}
	return clips
}

// Summary renders a round-by-round text report for operator inspection.
// It tolerates rounds that are still open (nil end fields), even though the
// engine only emits closed ones.
func Summary(detected []Round) string {
	var b strings.Builder

	rule := strings.Repeat("=", 80)
	b.WriteString("\n" + rule + "\n")
	fmt.Fprintf(&b, "ROUND DETECTION SUMMARY - %d Rounds Detected\n", len(detected))
	b.WriteString(rule + "\n\n")

	for _, r := range detected {
		fmt.Fprintf(&b, "Round %d:\n", r.RoundNumber)
		fmt.Fprintf(&b, "  Start: %.1fs (Timer: %s)\n", r.StartTimestamp, r.StartTimer)
		if r.EndTimestamp != nil {
			fmt.Fprintf(&b, "  End:   %.1fs (Reason: %s)\n", *r.EndTimestamp, r.EndReason)
		} else {
			b.WriteString("  End:   still open\n")
		}
		fmt.Fprintf(&b, "  Duration: %.1fs\n", r.Duration)
		if r.SpikePlanted && r.SpikePlantTimestamp != nil {
			fmt.Fprintf(&b, "  Spike: Planted at %.1fs\n", *r.SpikePlantTimestamp)
		} else {
			b.WriteString("  Spike: Not planted\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}
