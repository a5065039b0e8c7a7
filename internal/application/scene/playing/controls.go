package playing

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/kraemahz/ninja-force/internal/application/system"
	"github.com/kraemahz/ninja-force/internal/domain/entity"
)

// Controls is one frame of viewer input. Everything but Intent is an edge.
type Controls struct {
	Intent  entity.Input
	Pause   bool
	Restart bool
	Save    bool
	Debug   bool
	Quit    bool
}

// KeyboardControls reads movement through keys and viewer commands from
// just-pressed keys.
func KeyboardControls(keys *system.InputSystem) func() Controls {
	return func() Controls {
		return Controls{
			Intent:  keys.GetInput().Intent(),
			Pause:   inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP),
			Restart: inpututil.IsKeyJustPressed(ebiten.KeyR),
			Save:    inpututil.IsKeyJustPressed(ebiten.KeyF5),
			Debug:   inpututil.IsKeyJustPressed(ebiten.KeyTab),
			Quit:    inpututil.IsKeyJustPressed(ebiten.KeyQ),
		}
	}
}
