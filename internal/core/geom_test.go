package core

import "testing"

func TestPositionOffsets(t *testing.T) {
	origin := Pos(3, 7)

	tests := []struct {
		name     string
		got      Position
		expected Position
	}{
		{"right by one", origin.RightBy(1), Pos(3, 8)},
		{"left by one", origin.RightBy(-1), Pos(3, 6)},
		{"down by one", origin.DownBy(1), Pos(4, 7)},
		{"up by one", origin.DownBy(-1), Pos(2, 7)},
		{"right by zero", origin.RightBy(0), origin},
		{"down by many", origin.DownBy(10), Pos(13, 7)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.expected {
				t.Errorf("got %v, expected %v", tc.got, tc.expected)
			}
		})
	}

	// Offsets must not mutate the receiver
	if origin != Pos(3, 7) {
		t.Errorf("origin was mutated: %v", origin)
	}
}

func TestPositionEquality(t *testing.T) {
	if Pos(1, 2) != Pos(1, 2) {
		t.Error("positions with equal coordinates should be equal")
	}
	if Pos(1, 2) == Pos(2, 1) {
		t.Error("swapped coordinates should not be equal")
	}

	seen := map[Position]bool{Pos(0, 0): true}
	if !seen[Pos(0, 0).RightBy(1).RightBy(-1)] {
		t.Error("position should be usable as a map key")
	}
}

func TestPositionString(t *testing.T) {
	if got := Pos(-1, 4).String(); got != "(-1,4)" {
		t.Errorf("String() = %q, expected %q", got, "(-1,4)")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("bright_green")
	if err != nil || c != ColorBrightGreen {
		t.Errorf("ParseColor(bright_green) = %v, %v", c, err)
	}

	c, err = ParseColor("")
	if err != nil || c != ColorDefault {
		t.Errorf("ParseColor(\"\") = %v, %v", c, err)
	}

	if _, err := ParseColor("chartreuse"); err == nil {
		t.Error("expected error for unknown color")
	}
}
