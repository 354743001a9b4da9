package replay

import "github.com/CSE110-Coblenz/cse-110-project-team-17-sub000/internal/application/system"

// FormatVersion is written into every recording
const FormatVersion = "1.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F int  `json:"f"`           // Frame number
	L bool `json:"l,omitempty"` // Left
	R bool `json:"r,omitempty"` // Right
	U bool `json:"u,omitempty"` // Up
	D bool `json:"d,omitempty"` // Down
	A bool `json:"a,omitempty"` // Attack
	I bool `json:"i,omitempty"` // Interact
}

// NewFrameInput captures an input state for the given frame
func NewFrameInput(frame int, in system.InputState) FrameInput {
	return FrameInput{
		F: frame,
		L: in.Left,
		R: in.Right,
		U: in.Up,
		D: in.Down,
		A: in.Attack,
		I: in.Interact,
	}
}

// InputState converts the frame back into live input
func (fi FrameInput) InputState() system.InputState {
	return system.InputState{
		Left:     fi.L,
		Right:    fi.R,
		Up:       fi.U,
		Down:     fi.D,
		Attack:   fi.A,
		Interact: fi.I,
	}
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Map       string       `json:"map"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
