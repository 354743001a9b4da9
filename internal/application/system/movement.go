package system

import (
	"github.com/sirupsen/logrus"

	"github.com/CSE110-Coblenz/cse-110-project-team-17-sub000/internal/domain/entity"
	"github.com/CSE110-Coblenz/cse-110-project-team-17-sub000/internal/infrastructure/config"
)

// MovementSystem validates proposed moves against the tile grid
type MovementSystem struct {
	grid      *entity.TileGrid
	wallSlide bool
	log       *logrus.Entry
}

// NewMovementSystem creates a new movement system
func NewMovementSystem(grid *entity.TileGrid, cfg config.MovementConfig, log *logrus.Entry) *MovementSystem {
	return &MovementSystem{
		grid:      grid,
		wallSlide: cfg.WallSlide,
		log:       log,
	}
}

// Move proposes axis input (dx, dy) for the mover and commits it if the
// clamped target box is free. Returns true if the mover changed position.
func (s *MovementSystem) Move(m *entity.Mover, dx, dy float64) bool {
	if dx == 0 && dy == 0 {
		return false
	}

	if s.tryMove(m, dx, dy) {
		return true
	}

	// Slide along walls: retry each axis alone
	if !s.wallSlide || dx == 0 || dy == 0 {
		return false
	}
	if s.tryMove(m, dx, 0) {
		return true
	}
	return s.tryMove(m, 0, dy)
}

// tryMove clamps, validates and commits a single candidate
func (s *MovementSystem) tryMove(m *entity.Mover, dx, dy float64) bool {
	next := s.ClampToWorld(m, m.NextPosition(dx, dy))
	if next == m.Pos {
		return false
	}

	if !s.grid.CanMoveToArea(next.X, next.Y, m.Size.W, m.Size.H) {
		s.log.WithFields(logrus.Fields{
			"from": m.Pos,
			"to":   next,
		}).Trace("Move blocked by tile")
		return false
	}

	m.Commit(next)
	return true
}

// ClampToWorld keeps the mover's box inside the map
func (s *MovementSystem) ClampToWorld(m *entity.Mover, pos entity.Position) entity.Position {
	maxX := s.grid.PixelWidth() - m.Size.W
	maxY := s.grid.PixelHeight() - m.Size.H

	return entity.Position{
		X: clamp(pos.X, 0, maxX),
		Y: clamp(pos.Y, 0, maxY),
	}
}

// CanOccupy reports whether the mover's box fits at pos
func (s *MovementSystem) CanOccupy(m *entity.Mover, pos entity.Position) bool {
	return s.grid.CanMoveToArea(pos.X, pos.Y, m.Size.W, m.Size.H)
}

// Helper functions
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func sign(v float64) float64 {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}
