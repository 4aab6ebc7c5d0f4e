package board

import "testing"

func TestDirectionString(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected string
	}{
		{Up, "up"},
		{Down, "down"},
		{Left, "left"},
		{Right, "right"},
		{Direction(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.dir.String(); got != tt.expected {
			t.Errorf("Direction(%d).String() = %q, want %q", tt.dir, got, tt.expected)
		}
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
		terminal bool
	}{
		{InProgress, "in progress", false},
		{Win, "winning", true},
		{Lose, "losing", true},
		{State(99), "unknown", false},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.expected {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.expected)
		}
		if got := tt.state.Terminal(); got != tt.terminal {
			t.Errorf("State(%d).Terminal() = %v, want %v", tt.state, got, tt.terminal)
		}
	}
}

func TestCellValid(t *testing.T) {
	tests := []struct {
		cell  Cell
		valid bool
	}{
		{0, true},
		{2, true},
		{4, true},
		{2048, true},
		{1, false},
		{3, false},
		{6, false},
		{-2, false},
	}
	for _, tt := range tests {
		if got := tt.cell.Valid(); got != tt.valid {
			t.Errorf("Cell(%d).Valid() = %v, want %v", tt.cell, got, tt.valid)
		}
	}
}

func TestCellString(t *testing.T) {
	if got := Empty.String(); got != " " {
		t.Errorf("Empty.String() = %q, want %q", got, " ")
	}
	if got := Cell(128).String(); got != "128" {
		t.Errorf("Cell(128).String() = %q, want %q", got, "128")
	}
}
