package progress

// UserStats is the learner's lifetime record.
type UserStats struct {
	Streak int `json:"streak"`
	XP     int `json:"xp"`
	// LastCompletionDate is empty until the first completion.
	LastCompletionDate string `json:"lastCompletionDate,omitempty"`
}

// Credit adds xp and, on the first completion of today, advances the streak.
// It reports whether today was newly credited.
func Credit(s UserStats, xp int, today, yesterday string) (UserStats, bool) {
	s.XP += xp
	if s.LastCompletionDate == today {
		return s, false
	}
	if s.LastCompletionDate == yesterday {
		s.Streak++
	} else {
		s.Streak = 1
	}
	s.LastCompletionDate = today
	return s, true
}

// Reconcile zeroes a streak that can no longer be continued, i.e. when the
// last completion is neither today nor yesterday.
func Reconcile(s UserStats, today, yesterday string) UserStats {
	if s.LastCompletionDate != today && s.LastCompletionDate != yesterday {
		s.Streak = 0
	}
	return s
}
