package entity

import "errors"

var (
	// ErrPartsMissing is returned when building before every part is collected
	ErrPartsMissing = errors.New("robot parts missing")
	// ErrRobotAlreadyBuilt is returned when building twice
	ErrRobotAlreadyBuilt = errors.New("robot already built")
)

// Progress tracks the robot-building quest
type Progress struct {
	PartsRequired  int
	PartsCollected int
	robotBuilt     bool
}

// NewProgress creates quest progress requiring n parts
func NewProgress(partsRequired int) *Progress {
	return &Progress{PartsRequired: partsRequired}
}

// Collect records one collected part
func (p *Progress) Collect() {
	if p.PartsCollected < p.PartsRequired {
		p.PartsCollected++
	}
}

// AllPartsCollected returns true once every required part is held
func (p *Progress) AllPartsCollected() bool {
	return p.PartsCollected >= p.PartsRequired
}

// RobotBuilt returns true after BuildRobot succeeded
func (p *Progress) RobotBuilt() bool {
	return p.robotBuilt
}

// BuildRobot consumes the collected parts
func (p *Progress) BuildRobot() error {
	if p.robotBuilt {
		return ErrRobotAlreadyBuilt
	}
	if !p.AllPartsCollected() {
		return ErrPartsMissing
	}
	p.robotBuilt = true
	return nil
}
