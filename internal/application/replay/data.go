package replay

import "github.com/kraemahz/ninja-force/internal/domain/entity"

// Version is written into every recording.
const Version = "1.0"

// FrameInput records the intent for a single tick
type FrameInput struct {
	F int     `json:"f"`           // Frame number
	X float32 `json:"x,omitempty"` // Horizontal intent
	Y float32 `json:"y,omitempty"` // Vertical intent
	J bool    `json:"j,omitempty"` // Jump held
	R bool    `json:"r,omitempty"` // Run held
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	Stage     string       `json:"stage"`
	StartTime string       `json:"startTime"`
	TickRate  int          `json:"tickRate,omitempty"`
	Frames    []FrameInput `json:"frames"`
}

// Input converts the recorded frame back to a player intent.
func (f FrameInput) Input() entity.Input {
	return entity.Input{X: f.X, Y: f.Y, JumpHeld: f.J, RunHeld: f.R}
}

func frameOf(frame int, in entity.Input) FrameInput {
	return FrameInput{F: frame, X: in.X, Y: in.Y, J: in.JumpHeld, R: in.RunHeld}
}
