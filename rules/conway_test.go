package rules

import "testing"

func TestApplyConwayRules(t *testing.T) {
	tests := []struct {
		name      string
		neighbors int
		alive     bool
		want      bool
	}{
		{"live cell with no neighbors dies", 0, true, false},
		{"live cell with one neighbor dies", 1, true, false},
		{"live cell with two neighbors survives", 2, true, true},
		{"live cell with three neighbors survives", 3, true, true},
		{"live cell with four neighbors dies", 4, true, false},
		{"live cell with eight neighbors dies", 8, true, false},
		{"dead cell with two neighbors stays dead", 2, false, false},
		{"dead cell with three neighbors is born", 3, false, true},
		{"dead cell with four neighbors stays dead", 4, false, false},
		{"dead cell with no neighbors stays dead", 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyConwayRules(tt.neighbors, tt.alive); got != tt.want {
				t.Fatalf("ApplyConwayRules(%d, %v) = %v, expected %v", tt.neighbors, tt.alive, got, tt.want)
			}
		})
	}
}
