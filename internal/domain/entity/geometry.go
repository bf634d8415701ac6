// Package entity defines domain entities for the window manager core.
package entity

import "fmt"

// Point is an absolute x,y coordinate pair relative to the root window.
type Point struct {
	X, Y uint32
}

// NewPoint creates a new Point.
func NewPoint(x, y uint32) Point {
	return Point{X: x, Y: y}
}

// Region is a window or screen position: top-left corner plus extent.
type Region struct {
	X uint32 `json:"x"`
	Y uint32 `json:"y"`
	W uint32 `json:"w"`
	H uint32 `json:"h"`
}

// NewRegion creates a new Region.
func NewRegion(x, y, w, h uint32) Region {
	return Region{X: x, Y: y, W: w, H: h}
}

// Values destructures the region into its component values (x, y, w, h).
func (r Region) Values() (x, y, w, h uint32) {
	return r.X, r.Y, r.W, r.H
}

// Center returns the center point of the region.
func (r Region) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains reports whether p lies inside the region.
func (r Region) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// IsZero reports whether the region is the zero value, meaning no
// geometry is known.
func (r Region) IsZero() bool {
	return r == Region{}
}

// String formats the region in X geometry notation, WxH+X+Y.
func (r Region) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.W, r.H, r.X, r.Y)
}
