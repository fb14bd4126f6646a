package progress

import "testing"

func TestForXP(t *testing.T) {
	tests := []struct {
		xp        int
		wantLevel int
		wantName  string
		wantNext  int
		wantPct   float64
	}{
		{0, 1, "Nybörjare", 100, 0},
		{50, 1, "Nybörjare", 100, 50},
		{100, 2, "Lärling", 250, 0},
		{175, 2, "Lärling", 250, 50},
		{249, 2, "Lärling", 250, 100 * 149.0 / 150.0},
		{250, 3, "Utforskare", 500, 0},
		{1500, 5, "Expert", 2000, 50},
		{2000, 6, "Mästare", 2000, 100},
		{5000, 6, "Mästare", 5000, 100},
	}

	for _, tt := range tests {
		got := ForXP(tt.xp)
		if got.Level != tt.wantLevel || got.Name != tt.wantName {
			t.Errorf("ForXP(%d) level = %d %q, want %d %q", tt.xp, got.Level, got.Name, tt.wantLevel, tt.wantName)
		}
		if got.NextLevelXP != tt.wantNext {
			t.Errorf("ForXP(%d) NextLevelXP = %d, want %d", tt.xp, got.NextLevelXP, tt.wantNext)
		}
		if got.ProgressPercent != tt.wantPct {
			t.Errorf("ForXP(%d) ProgressPercent = %v, want %v", tt.xp, got.ProgressPercent, tt.wantPct)
		}
	}
}

func TestForXP_CurrentThreshold(t *testing.T) {
	if got := ForXP(600).XP; got != 500 {
		t.Errorf("ForXP(600).XP = %d, want 500", got)
	}
}

func TestForXP_Monotonic(t *testing.T) {
	prev := ForXP(0)
	for xp := 1; xp <= 3000; xp++ {
		cur := ForXP(xp)
		if cur.Level < prev.Level {
			t.Fatalf("level decreased at xp=%d: %d -> %d", xp, prev.Level, cur.Level)
		}
		if cur.ProgressPercent < 0 || cur.ProgressPercent > 100 {
			t.Fatalf("ForXP(%d) ProgressPercent = %v out of range", xp, cur.ProgressPercent)
		}
		atMax := xp >= Levels[len(Levels)-1].Threshold
		if atMax != (cur.ProgressPercent == 100) {
			t.Fatalf("ForXP(%d) ProgressPercent = %v, atMax = %v", xp, cur.ProgressPercent, atMax)
		}
		prev = cur
	}
}

func TestLevelInfo_MaxLevel(t *testing.T) {
	if ForXP(1999).MaxLevel() {
		t.Error("1999 XP should not be max level")
	}
	if !ForXP(2000).MaxLevel() {
		t.Error("2000 XP should be max level")
	}
}
