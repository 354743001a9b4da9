package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/CSE110-Coblenz/cse-110-project-team-17-sub000/internal/domain/entity"
)

// InputSystem handles player input
type InputSystem struct {
	movement *MovementSystem
}

// NewInputSystem creates a new input system
func NewInputSystem(movement *MovementSystem) *InputSystem {
	return &InputSystem{movement: movement}
}

// InputState holds the current input state
type InputState struct {
	Left     bool
	Right    bool
	Up       bool
	Down     bool
	Attack   bool
	Interact bool
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:     ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:    ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:       ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:     ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Attack:   inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Interact: inpututil.IsKeyJustPressed(ebiten.KeyE),
	}
}

// Axis returns the movement axis input in -1/0/1.
// Opposite keys cancel out.
func (in InputState) Axis() (dx, dy float64) {
	if in.Left {
		dx--
	}
	if in.Right {
		dx++
	}
	if in.Up {
		dy--
	}
	if in.Down {
		dy++
	}
	return dx, dy
}

// Any reports whether any key is held
func (in InputState) Any() bool {
	return in.Left || in.Right || in.Up || in.Down || in.Attack || in.Interact
}

// Intents converts the input into intents for an entity
func (in InputState) Intents(id entity.EntityID) []Intent {
	var intents []Intent
	if dx, dy := in.Axis(); dx != 0 || dy != 0 {
		intents = append(intents, MoveIntent{EntityID: id, DX: dx, DY: dy})
	}
	if in.Attack {
		intents = append(intents, AttackIntent{EntityID: id})
	}
	if in.Interact {
		intents = append(intents, InteractIntent{EntityID: id})
	}
	return intents
}

// ApplyMove moves the player for a move intent.
// Returns true if the player moved.
func (s *InputSystem) ApplyMove(player *entity.Actor, intent MoveIntent) bool {
	if player.IsDefeated() {
		return false
	}
	return s.movement.Move(&player.Mover, intent.DX, intent.DY)
}
