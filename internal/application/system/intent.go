package system

import "github.com/CSE110-Coblenz/cse-110-project-team-17-sub000/internal/domain/entity"

// Intent represents an action that an entity wants to perform
type Intent interface {
	isIntent()
}

// MoveIntent represents a movement intention
type MoveIntent struct {
	EntityID entity.EntityID
	DX, DY   float64 // Axis input in -1/0/1
}

func (MoveIntent) isIntent() {}

// AttackIntent represents an attack in the current facing
type AttackIntent struct {
	EntityID entity.EntityID
}

func (AttackIntent) isIntent() {}

// InteractIntent represents talking to an NPC or using the workbench
type InteractIntent struct {
	EntityID entity.EntityID
}

func (InteractIntent) isIntent() {}
