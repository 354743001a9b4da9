package entity

import (
	"fmt"
	"math"
)

// EntityID is a unique identifier for an entity
type EntityID uint32

// Direction is the facing of a movable entity
type Direction int

const (
	DirDown Direction = iota
	DirUp
	DirLeft
	DirRight
)

// String returns the string representation of the direction
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection converts a config/map string into a Direction
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "up":
		return DirUp, nil
	case "down", "":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	}
	return DirDown, fmt.Errorf("unknown direction %q", s)
}

// Position is a pixel position (top-left of an entity box)
type Position struct {
	X, Y float64
}

// Add returns p offset by (dx, dy)
func (p Position) Add(dx, dy float64) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// DistanceTo returns the Euclidean distance between two positions
func (p Position) DistanceTo(o Position) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}

// Size is the pixel size of an entity box
type Size struct {
	W, H float64
}

// Rect is an axis-aligned box in pixels
type Rect struct {
	X, Y, W, H float64
}

// Intersects reports whether two rects overlap
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}
