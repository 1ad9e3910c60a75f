package core

import "testing"

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

func TestLaneRect(t *testing.T) {
	tests := []struct {
		name  string
		width int
		lane  int
		wantX int
		wantW int
	}{
		{"left lane", 30, 0, 0, 10},
		{"middle lane", 30, 1, 10, 10},
		{"right lane", 30, 2, 20, 10},
		{"remainder goes to last lane", 32, 2, 20, 12},
		{"lane below range clamps", 30, -1, 0, 10},
		{"lane above range clamps", 30, 5, 20, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := LaneRect(tc.width, 24, tc.lane, 3)
			if r.X != tc.wantX || r.W != tc.wantW {
				t.Errorf("LaneRect(%d, lane %d) = x %d w %d, expected x %d w %d",
					tc.width, tc.lane, r.X, r.W, tc.wantX, tc.wantW)
			}
			if r.H != 24 {
				t.Errorf("LaneRect height = %d, expected 24", r.H)
			}
		})
	}
}

func TestLaneCenterX(t *testing.T) {
	centers := []int{5, 15, 25}
	for lane, want := range centers {
		if got := LaneCenterX(30, lane, 3); got != want {
			t.Errorf("LaneCenterX(30, %d, 3) = %d, expected %d", lane, got, want)
		}
	}
}

func TestPercentToRow(t *testing.T) {
	tests := []struct {
		percent float64
		top     int
		height  int
		want    int
	}{
		{0, 2, 20, 2},
		{50, 2, 20, 12},
		{80, 0, 20, 16},
		{-20, 0, 20, -4},
		{-4.5, 3, 20, 2},  // just above the road stays off it
		{-0.01, 3, 20, 2}, // any negative percent is above the top row
		{99.9, 0, 20, 19},
	}

	for _, tc := range tests {
		if got := PercentToRow(tc.percent, tc.top, tc.height); got != tc.want {
			t.Errorf("PercentToRow(%v, %d, %d) = %d, expected %d", tc.percent, tc.top, tc.height, got, tc.want)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestInputFrameKeepsOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionNone)
	f.Set(ActionLeft)
	f.Set(ActionRight)

	if len(f.Actions) != 3 {
		t.Fatalf("expected 3 actions (None dropped), got %d", len(f.Actions))
	}
	if f.Actions[0] != ActionLeft || f.Actions[1] != ActionLeft || f.Actions[2] != ActionRight {
		t.Errorf("actions out of order: %v", f.Actions)
	}
	if !f.Has(ActionRight) || f.Has(ActionMute) {
		t.Error("Has() reported wrong membership")
	}

	clone := f.Clone()
	f.Clear()
	if len(f.Actions) != 0 {
		t.Error("Clear() should empty the frame")
	}
	if len(clone.Actions) != 3 {
		t.Error("Clone() should not share storage with the original")
	}
}
