package entity

// NPC is a stationary character that talks to the player
type NPC struct {
	ID   EntityID
	Name string
	Pos  Position
	Size Size
}

// Part is a robot part lying on the map
type Part struct {
	ID        EntityID
	Pos       Position
	Size      Size
	Collected bool
}

// Bounds returns the part's pickup box
func (p *Part) Bounds() Rect {
	return Rect{X: p.Pos.X, Y: p.Pos.Y, W: p.Size.W, H: p.Size.H}
}
