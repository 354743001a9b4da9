// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/CSE110-Coblenz/cse-110-project-team-17-sub000/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	log     *logrus.Entry
	closed  bool
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int, log *logrus.Entry) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0, // Default to 60 FPS
		log:     log,
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	if g.closed {
		return ebiten.Termination
	}

	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}

	if next != nil {
		g.log.WithFields(logrus.Fields{
			"from": fmt.Sprintf("%T", g.current),
			"to":   fmt.Sprintf("%T", next),
		}).Debug("Scene transition")
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the delta time used for updates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// Close exits the current scene once. Later Update calls end the run loop.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.current.OnExit()
	g.log.Debug("Game closed")
}
