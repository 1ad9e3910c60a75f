// Package core provides fundamental types and utilities for the racer platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned box on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// LaneRect returns the column occupied by lane i when width is split
// into n equal lanes. The last lane absorbs the rounding remainder.
func LaneRect(width, height, lane, n int) Rect {
	if n <= 0 {
		return NewRect(0, 0, width, height)
	}
	lane = Clamp(lane, 0, n-1)
	laneW := width / n
	x := lane * laneW
	w := laneW
	if lane == n-1 {
		w = width - x
	}
	return NewRect(x, 0, w, height)
}

// LaneCenterX returns the column at the horizontal center of lane i.
func LaneCenterX(width, lane, n int) int {
	r := LaneRect(width, 1, lane, n)
	return r.X + r.W/2
}

// PercentToRow maps a vertical position given in percent of the playfield
// (0 = top edge, 100 = bottom edge) to a row in [top, top+height).
// Values outside 0..100 map outside the playfield and callers clip them.
// Rows are floored so a slightly negative percent is still above the top.
func PercentToRow(percent float64, top, height int) int {
	return top + int(math.Floor(percent*float64(height)/100.0))
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
