package progress

import (
	"testing"
	"time"
)

func TestDayID_LocalCalendar(t *testing.T) {
	stockholm := time.FixedZone("CEST", 2*60*60)
	// 00:30 local is still the previous day in UTC.
	instant := time.Date(2026, 10, 16, 0, 30, 0, 0, stockholm)

	if got := DayID(instant); got != "2026-10-16" {
		t.Errorf("DayID = %q, want 2026-10-16", got)
	}
	if got := DayID(instant.UTC()); got != "2026-10-15" {
		t.Errorf("DayID(UTC) = %q, want 2026-10-15", got)
	}
}

func TestDayID_ZeroPadded(t *testing.T) {
	got := DayID(time.Date(2026, 3, 7, 12, 0, 0, 0, time.UTC))
	if got != "2026-03-07" {
		t.Errorf("DayID = %q, want 2026-03-07", got)
	}
}

func TestClock_TodayYesterday(t *testing.T) {
	tests := []struct {
		name          string
		now           time.Time
		wantToday     string
		wantYesterday string
	}{
		{"mid month", time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC), "2026-10-16", "2026-10-15"},
		{"month boundary", time.Date(2026, 11, 1, 0, 5, 0, 0, time.UTC), "2026-11-01", "2026-10-31"},
		{"year boundary", time.Date(2027, 1, 1, 23, 59, 0, 0, time.UTC), "2027-01-01", "2026-12-31"},
		{"leap day", time.Date(2028, 3, 1, 8, 0, 0, 0, time.UTC), "2028-03-01", "2028-02-29"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := Clock(func() time.Time { return tt.now })
			if got := clock.Today(); got != tt.wantToday {
				t.Errorf("Today = %q, want %q", got, tt.wantToday)
			}
			if got := clock.Yesterday(); got != tt.wantYesterday {
				t.Errorf("Yesterday = %q, want %q", got, tt.wantYesterday)
			}
		})
	}
}

func TestDayIDsSortChronologically(t *testing.T) {
	a := DayID(time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC))
	b := DayID(time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC))
	if !(a < b) {
		t.Errorf("%q should sort before %q", a, b)
	}
}
