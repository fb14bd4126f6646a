package progress

// Level is one row of the level table.
type Level struct {
	Number    int
	Name      string
	Threshold int
}

// Levels is the level table in ascending threshold order.
var Levels = []Level{
	{1, "Nybörjare", 0},
	{2, "Lärling", 100},
	{3, "Utforskare", 250},
	{4, "Talare", 500},
	{5, "Expert", 1000},
	{6, "Mästare", 2000},
}

// LevelInfo describes where a learner stands on the level table.
type LevelInfo struct {
	Level           int
	Name            string
	XP              int // threshold of the current level
	NextLevelXP     int
	ProgressPercent float64
}

// MaxLevel reports whether the learner has reached the top of the table.
func (li LevelInfo) MaxLevel() bool {
	return li.Level == Levels[len(Levels)-1].Number
}

// ForXP computes LevelInfo for a cumulative XP total.
func ForXP(xp int) LevelInfo {
	current := Levels[0]
	for _, l := range Levels {
		if l.Threshold <= xp {
			current = l
		}
	}

	var next *Level
	for i := range Levels {
		if Levels[i].Threshold > xp {
			next = &Levels[i]
			break
		}
	}

	info := LevelInfo{
		Level: current.Number,
		Name:  current.Name,
		XP:    current.Threshold,
	}

	if next == nil {
		info.NextLevelXP = xp
		info.ProgressPercent = 100
		return info
	}

	info.NextLevelXP = next.Threshold
	pct := 100 * float64(xp-current.Threshold) / float64(next.Threshold-current.Threshold)
	info.ProgressPercent = clamp(pct, 0, 100)
	return info
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
