package entity

// Mover is the shared position/size/facing/speed state of anything that walks.
// Position is the top-left corner of a fixed-size box in pixels.
type Mover struct {
	Pos    Position
	Size   Size
	Facing Direction
	Speed  float64 // pixels per unit of axis input
}

// NewMover creates a mover facing down
func NewMover(x, y, w, h, speed float64) Mover {
	return Mover{
		Pos:    Position{X: x, Y: y},
		Size:   Size{W: w, H: h},
		Facing: DirDown,
		Speed:  speed,
	}
}

// NextPosition returns the candidate position for axis input (dx, dy).
// The candidate is not applied; see Commit.
func (m *Mover) NextPosition(dx, dy float64) Position {
	return m.Pos.Add(dx*m.Speed, dy*m.Speed)
}

// Commit stores a validated position and derives the facing from the realized delta.
// Horizontal change wins over vertical; no change keeps the current facing.
func (m *Mover) Commit(next Position) {
	prev := m.Pos
	m.Pos = next

	switch {
	case next.X > prev.X:
		m.Facing = DirRight
	case next.X < prev.X:
		m.Facing = DirLeft
	case next.Y > prev.Y:
		m.Facing = DirDown
	case next.Y < prev.Y:
		m.Facing = DirUp
	}
}

// Face overrides the facing without moving (attack direction override)
func (m *Mover) Face(dir Direction) {
	m.Facing = dir
}

// Bounds returns the mover's box in world coordinates
func (m *Mover) Bounds() Rect {
	return Rect{X: m.Pos.X, Y: m.Pos.Y, W: m.Size.W, H: m.Size.H}
}

// Center returns the center of the mover's box
func (m *Mover) Center() Position {
	return Position{X: m.Pos.X + m.Size.W/2, Y: m.Pos.Y + m.Size.H/2}
}
