package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kraemahz/ninja-force/internal/domain/entity"
	"github.com/kraemahz/ninja-force/internal/ecs"
)

// InputSystem handles player input
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds the current input state
type InputState struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
	Jump  bool
	Run   bool
}

// GetInput reads the current keyboard state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:    ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Jump:  ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyZ),
		Run:   ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyX),
	}
}

// Intent maps held keys to a player intent. Opposing directions cancel.
func (in InputState) Intent() entity.Input {
	var x, y float32
	if in.Left {
		x--
	}
	if in.Right {
		x++
	}
	if in.Down {
		y--
	}
	if in.Up {
		y++
	}
	return entity.Input{X: x, Y: y, JumpHeld: in.Jump, RunHeld: in.Run}
}

// ApplyInputs hands inputs[i] to the i-th player. Players without an entry
// get no intent, which also releases any held jump.
func ApplyInputs(w *ecs.World, inputs []entity.Input) {
	for i := range w.Players {
		var in entity.Input
		if i < len(inputs) {
			in = inputs[i]
		}
		w.Players[i].ApplyInput(in)
	}
}
