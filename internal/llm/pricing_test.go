package llm

import (
	"math"
	"testing"
)

func TestLookupCost(t *testing.T) {
	tests := []struct {
		model string
		found bool
		in    float64
	}{
		{"gemini-2.5-flash", true, 0.3},
		{"gpt-4o-mini-2024-07-18", true, 0.15},
		{"google/gemini-2.5-flash", true, 0.3},
		{"mock", false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			c := LookupCost(tt.model)
			if (c != nil) != tt.found {
				t.Fatalf("found = %v, want %v", c != nil, tt.found)
			}
			if c != nil && c.InputPerMTok != tt.in {
				t.Errorf("input price = %v, want %v", c.InputPerMTok, tt.in)
			}
		})
	}
}

func TestModelCost_Cost(t *testing.T) {
	c := ModelCost{InputPerMTok: 0.3, OutputPerMTok: 2.5}
	got := c.Cost(1_000_000, 200_000)
	if math.Abs(got-0.8) > 1e-9 {
		t.Errorf("cost = %v, want 0.8", got)
	}
}
