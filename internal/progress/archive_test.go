package progress

import (
	"fmt"
	"testing"
)

func TestFinalize(t *testing.T) {
	p := NewActivityProgress("2026-10-16")
	p = RecordCompletion(p, ModeFlashcard, 40, nil)
	p = RecordCompletion(p, ModeChallenge, 57, nil)
	p = RecordCompletion(p, ModeQuiz, 12, []MissedItem{{Mode: ModeQuiz, Question: "dog"}})

	r := Finalize(p)
	if r.Date != "2026-10-16" {
		t.Errorf("Date = %q", r.Date)
	}
	if r.TotalPoints != 109 {
		t.Errorf("TotalPoints = %d, want 109", r.TotalPoints)
	}
	if len(r.MissedItems) != 1 {
		t.Errorf("MissedItems = %d, want 1", len(r.MissedItems))
	}

	// The result owns its data.
	p.Points[ModeFlashcard] = 0
	if r.Points[ModeFlashcard] != 40 {
		t.Error("result shares the progress points map")
	}
}

func TestFinalize_Empty(t *testing.T) {
	r := Finalize(ActivityProgress{Date: "2026-10-16"})
	if r.TotalPoints != 0 || r.Points == nil || r.MissedItems == nil {
		t.Errorf("unexpected result: %+v", r)
	}
}

func TestInsertResult_DedupesByDate(t *testing.T) {
	history := []DailyResult{
		{Date: "2026-10-16", TotalPoints: 10},
		{Date: "2026-10-15", TotalPoints: 20},
	}

	got := InsertResult(history, DailyResult{Date: "2026-10-16", TotalPoints: 99})
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].TotalPoints != 99 || got[1].Date != "2026-10-15" {
		t.Errorf("got %+v", got)
	}
	if history[0].TotalPoints != 10 {
		t.Error("input history was modified")
	}
}

func TestInsertResult_Caps(t *testing.T) {
	var history []DailyResult
	for i := range 40 {
		history = InsertResult(history, DailyResult{Date: fmt.Sprintf("day-%02d", i)})
		if len(history) > MaxHistory {
			t.Fatalf("len = %d after %d inserts", len(history), i+1)
		}
	}
	if len(history) != MaxHistory {
		t.Fatalf("len = %d, want %d", len(history), MaxHistory)
	}
	if history[0].Date != "day-39" || history[MaxHistory-1].Date != "day-10" {
		t.Errorf("unexpected order: first %q last %q", history[0].Date, history[MaxHistory-1].Date)
	}

	seen := map[string]bool{}
	for _, h := range history {
		if seen[h.Date] {
			t.Errorf("duplicate date %q", h.Date)
		}
		seen[h.Date] = true
	}
}

func TestInsertResult_PositionNotDate(t *testing.T) {
	// Insertion order is authoritative even when dates are out of order.
	history := []DailyResult{{Date: "2026-10-20"}}
	got := InsertResult(history, DailyResult{Date: "2026-10-01"})
	if got[0].Date != "2026-10-01" {
		t.Errorf("got[0] = %q, want newest insertion first", got[0].Date)
	}
}

func TestTrend(t *testing.T) {
	history := []DailyResult{
		{Date: "d3", TotalPoints: 100},
		{Date: "d2", TotalPoints: 0},
		{Date: "d1", TotalPoints: 25},
	}

	bars := Trend(history, 7)
	if len(bars) != 3 {
		t.Fatalf("len = %d, want 3", len(bars))
	}
	if bars[0].Date != "d1" || bars[2].Date != "d3" {
		t.Errorf("bars not oldest first: %+v", bars)
	}
	if bars[0].Percent != 25 {
		t.Errorf("d1 percent = %v, want 25", bars[0].Percent)
	}
	if bars[1].Percent != 5 {
		t.Errorf("d2 percent = %v, want floor 5", bars[1].Percent)
	}
	if bars[2].Percent != 100 {
		t.Errorf("d3 percent = %v, want 100", bars[2].Percent)
	}
}

func TestTrend_ScalesAgainstFifty(t *testing.T) {
	bars := Trend([]DailyResult{{Date: "d1", TotalPoints: 20}}, 7)
	if bars[0].Percent != 40 {
		t.Errorf("percent = %v, want 40", bars[0].Percent)
	}
}

func TestTrend_Bounds(t *testing.T) {
	history := []DailyResult{{Date: "d2", TotalPoints: 30}, {Date: "d1", TotalPoints: 10}}
	for _, n := range []int{-3, 0} {
		if bars := Trend(history, n); len(bars) != 0 {
			t.Errorf("Trend(n=%d) = %v, want none", n, bars)
		}
	}
	if bars := Trend(nil, 7); len(bars) != 0 {
		t.Errorf("Trend(nil) = %v", bars)
	}
}
