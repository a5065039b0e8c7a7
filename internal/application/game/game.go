// Package game adapts a Scene to ebiten.Game and handles scene transitions.
package game

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/kraemahz/ninja-force/internal/application/scene"
)

// Game runs one scene at a time inside the ebiten loop.
type Game struct {
	current scene.Scene
	logger  *log.Logger
	screenW int
	screenH int
	dt      float64
}

// New wraps initialScene and enters it.
func New(initialScene scene.Scene, screenW, screenH int, logger *log.Logger) *Game {
	g := &Game{
		current: initialScene,
		logger:  logger,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0,
	}
	g.current.OnEnter()
	return g
}

// Update advances the current scene and switches scenes when it asks to.
// scene.ErrQuit exits the scene and ends the loop with ebiten.Termination.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	switch {
	case errors.Is(err, scene.ErrQuit):
		g.current.OnExit()
		g.logger.Info("quit")
		return ebiten.Termination
	case err != nil:
		return err
	case next != nil:
		g.switchTo(next)
	}
	return nil
}

func (g *Game) switchTo(next scene.Scene) {
	g.logger.Debug("scene transition", "from", fmt.Sprintf("%T", g.current), "to", fmt.Sprintf("%T", next))
	g.current.OnExit()
	g.current = next
	g.current.OnEnter()
}

// Current is the scene receiving Update and Draw.
func (g *Game) Current() scene.Scene {
	return g.current
}

// Draw renders the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the logical screen size regardless of the window size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the delta time passed to the scene.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}
