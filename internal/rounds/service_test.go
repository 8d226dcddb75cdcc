package rounds

import (
	"errors"
	"strings"
	"testing"
)

func TestService_RegisterReadings(t *testing.T) {
	repo := NewInMemoryRepository()
	svc := NewService(repo, 0)

	err := svc.RegisterReadings("m1", []TimerReading{{Timestamp: 10, Token: "1:39"}})
	if err != nil {
		t.Fatalf("RegisterReadings: %v", err)
	}
	readings, _, ok := repo.GetReadingsSnapshot("m1")
	if !ok || len(readings) != 1 {
		t.Errorf("expected 1 reading, got ok=%v len=%d", ok, len(readings))
	}
}

func TestService_RegisterReadings_after_end(t *testing.T) {
	repo := NewInMemoryRepository()
	svc := NewService(repo, 0)
	_ = svc.RegisterReadings("m1", []TimerReading{{Timestamp: 10, Token: "1:39"}})
	_ = svc.EndMatch("m1")

	err := svc.RegisterReadings("m1", []TimerReading{{Timestamp: 20, Token: "1:29"}})
	if !errors.Is(err, ErrMatchEnded) {
		t.Errorf("expected ErrMatchEnded, got %v", err)
	}
}

func TestService_GetRounds(t *testing.T) {
	repo := NewInMemoryRepository()
	svc := NewService(repo, 0)

	_ = svc.RegisterReadings("m1", []TimerReading{
		{Timestamp: 10, Token: "1:39"},
		{Timestamp: 50, Token: "0:50"},
		{Timestamp: 110, Token: "nothing"},
		{Timestamp: 120, Token: "nothing"},
	})

	detected, ok := svc.GetRounds("m1")
	if !ok {
		t.Fatal("GetRounds: ok false")
	}
	if len(detected) != 1 {
		t.Fatalf("expected 1 round, got %d", len(detected))
	}
	if detected[0].EndReason != EndTimerDisappeared {
		t.Errorf("end_reason = %q", detected[0].EndReason)
	}
}

func TestService_GetRounds_recomputes_after_more_readings(t *testing.T) {
	repo := NewInMemoryRepository()
	svc := NewService(repo, 0)

	_ = svc.RegisterReadings("m1", []TimerReading{{Timestamp: 10, Token: "1:39"}})
	first, ok := svc.GetRounds("m1")
	if !ok || len(first) != 1 {
		t.Fatalf("expected 1 round after first batch, got ok=%v len=%d", ok, len(first))
	}

	// Register a later batch out of order; the derived rounds change.
	_ = svc.RegisterReadings("m1", []TimerReading{{Timestamp: 130, Token: "1:38"}})
	second, ok := svc.GetRounds("m1")
	if !ok || len(second) != 2 {
		t.Fatalf("expected 2 rounds after second batch, got ok=%v len=%d", ok, len(second))
	}
	if second[0].EndReason != EndNextRoundStarted {
		t.Errorf("first round end_reason = %q, want %q", second[0].EndReason, EndNextRoundStarted)
	}
}

func TestService_GetRounds_not_found(t *testing.T) {
	repo := NewInMemoryRepository()
	svc := NewService(repo, 0)

	_, ok := svc.GetRounds("missing")
	if ok {
		t.Error("expected ok false for missing match")
	}
}

func TestService_GetRounds_min_readings_guard(t *testing.T) {
	repo := NewInMemoryRepository()
	svc := NewService(repo, 3)

	_ = svc.RegisterReadings("m1", []TimerReading{
		{Timestamp: 10, Token: "1:39"},
		{Timestamp: 50, Token: "0:50"},
	})

	detected, ok := svc.GetRounds("m1")
	if !ok {
		t.Fatal("GetRounds: ok false")
	}
	if len(detected) != 0 {
		t.Errorf("below min readings should yield no rounds, got %d", len(detected))
	}

	_ = svc.RegisterReadings("m1", []TimerReading{{Timestamp: 90, Token: "0:10"}})
	detected, _ = svc.GetRounds("m1")
	if len(detected) != 1 {
		t.Errorf("at min readings expected 1 round, got %d", len(detected))
	}
}

func TestService_GetClips(t *testing.T) {
	repo := NewInMemoryRepository()
	svc := NewService(repo, 0)

	_ = svc.RegisterReadings("m1", []TimerReading{
		{Timestamp: 0, Token: "1:40"},
		{Timestamp: 100, Token: "1:39"},
	})

	clips, ok := svc.GetClips("m1")
	if !ok {
		t.Fatal("GetClips: ok false")
	}
	if len(clips) != 2 {
		t.Fatalf("expected 2 clips, got %d", len(clips))
	}
	if clips[0].EndTime == nil || *clips[0].EndTime != 89 {
		t.Errorf("clip 1 end_time = %v, want 89", clips[0].EndTime)
	}

	_, ok = svc.GetClips("missing")
	if ok {
		t.Error("expected ok false for missing match")
	}
}

func TestService_GetSummary(t *testing.T) {
	repo := NewInMemoryRepository()
	svc := NewService(repo, 0)

	_ = svc.RegisterReadings("m1", []TimerReading{{Timestamp: 0, Token: "1:40"}, {Timestamp: 40, Token: "0:40"}})

	summary, ok := svc.GetSummary("m1")
	if !ok {
		t.Fatal("GetSummary: ok false")
	}
	if !strings.Contains(summary, "1 Rounds Detected") {
		t.Errorf("unexpected summary: %s", summary)
	}

	_, ok = svc.GetSummary("missing")
	if ok {
		t.Error("expected ok false for missing match")
	}
}

func TestService_EndMatch(t *testing.T) {
	repo := NewInMemoryRepository()
	svc := NewService(repo, 0)
	_ = svc.RegisterReadings("m1", []TimerReading{{Timestamp: 10, Token: "1:39"}})

	if err := svc.EndMatch("m1"); err != nil {
		t.Fatalf("EndMatch: %v", err)
	}
	_, ended, _ := repo.GetReadingsSnapshot("m1")
	if !ended {
		t.Error("match should be ended")
	}
}
