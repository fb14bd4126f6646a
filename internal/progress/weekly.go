package progress

import "time"

// WeekStatus is the Monday-first attendance vector for one calendar week.
type WeekStatus struct {
	Slots [7]bool
	Count int
	// TodayIndex is the slot of the reference day, 0 = Monday.
	TodayIndex int
}

// WeekdayLabels are the slot labels, Monday first.
var WeekdayLabels = [7]string{"M", "T", "W", "T", "F", "S", "S"}

// WeekStart returns midnight of the Monday starting the week that contains ref.
func WeekStart(ref time.Time) time.Time {
	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	offset := int(day.Weekday()) - int(time.Monday)
	if day.Weekday() == time.Sunday {
		offset = 6
	}
	return day.AddDate(0, 0, -offset)
}

// Weekly marks which days of ref's week appear in completed.
func Weekly(completed []string, ref time.Time) WeekStatus {
	set := make(map[string]struct{}, len(completed))
	for _, d := range completed {
		set[d] = struct{}{}
	}

	var ws WeekStatus
	start := WeekStart(ref)
	for i := range 7 {
		id := DayID(start.AddDate(0, 0, i))
		if _, ok := set[id]; ok {
			ws.Slots[i] = true
			ws.Count++
		}
	}
	ws.TodayIndex = (int(ref.Weekday()) + 6) % 7
	return ws
}

// AddCompletedDate appends day to dates unless already present.
// The input slice is not modified.
func AddCompletedDate(dates []string, day string) []string {
	for _, d := range dates {
		if d == day {
			return dates
		}
	}
	out := make([]string, 0, len(dates)+1)
	out = append(out, dates...)
	return append(out, day)
}
