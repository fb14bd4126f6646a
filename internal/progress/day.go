package progress

import "time"

// DayLayout is the canonical day identifier format.
const DayLayout = "2006-01-02"

// DayID returns the local calendar day of t as YYYY-MM-DD.
// The instant is formatted in its own location; callers pass local times.
func DayID(t time.Time) string {
	return t.Format(DayLayout)
}

// ParseDay parses a day identifier in loc. It returns midnight of that day.
func ParseDay(id string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DayLayout, id, loc)
}

// Clock yields the current instant. Tests substitute a fixed clock.
type Clock func() time.Time

// SystemClock returns the local wall clock.
func SystemClock() time.Time {
	return time.Now()
}

// Today returns today's day identifier.
func (c Clock) Today() string {
	return DayID(c())
}

// Yesterday returns the day identifier of the calendar day before today.
func (c Clock) Yesterday() string {
	return DayID(c().AddDate(0, 0, -1))
}
