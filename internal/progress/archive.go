package progress

import "slices"

// MaxHistory bounds the daily result history.
const MaxHistory = 30

// DailyResult is the finalized record of a fully completed day.
type DailyResult struct {
	Date        string       `json:"date"`
	TotalPoints int          `json:"totalPoints"`
	Points      map[Mode]int `json:"points"`
	MissedItems []MissedItem `json:"missedItems"`
}

// Finalize snapshots p into a DailyResult.
func Finalize(p ActivityProgress) DailyResult {
	r := DailyResult{
		Date:        p.Date,
		Points:      make(map[Mode]int, len(p.Points)),
		MissedItems: slices.Clone(p.MissedItems),
	}
	if r.MissedItems == nil {
		r.MissedItems = []MissedItem{}
	}
	for m, pts := range p.Points {
		r.Points[m] = pts
		r.TotalPoints += pts
	}
	return r
}

// InsertResult prepends r to history, dropping any entry with the same date
// and keeping at most MaxHistory entries. history is not modified.
func InsertResult(history []DailyResult, r DailyResult) []DailyResult {
	out := make([]DailyResult, 0, min(len(history)+1, MaxHistory))
	out = append(out, r)
	for _, h := range history {
		if len(out) == MaxHistory {
			break
		}
		if h.Date == r.Date {
			continue
		}
		out = append(out, h)
	}
	return out
}

// TrendBar is one column of the recent performance chart.
type TrendBar struct {
	Date    string
	Points  int
	Percent float64
}

// Trend returns up to n of the most recent results, oldest first, with bar
// heights scaled against the best day (at least 50 points) and floored at 5%.
func Trend(history []DailyResult, n int) []TrendBar {
	n = max(0, min(n, len(history)))
	recent := history[:n]

	maxPts := 50
	for _, r := range recent {
		maxPts = max(maxPts, r.TotalPoints)
	}

	bars := make([]TrendBar, 0, n)
	for i := len(recent) - 1; i >= 0; i-- {
		r := recent[i]
		pct := float64(r.TotalPoints) / float64(maxPts) * 100
		bars = append(bars, TrendBar{
			Date:    r.Date,
			Points:  r.TotalPoints,
			Percent: max(5, pct),
		})
	}
	return bars
}
