package playing

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/kraemahz/ninja-force/internal/application/state"
	"github.com/kraemahz/ninja-force/internal/domain/entity"
	"github.com/kraemahz/ninja-force/internal/domain/geometry"
)

// Colors for rendering
var (
	colorBG        = color.RGBA{26, 26, 46, 255}
	colorStatic    = color.RGBA{80, 80, 100, 255}
	colorClimbable = colornames.Saddlebrown
	colorHazard    = colornames.Crimson
	colorPickup    = colornames.Gold
	colorEnemy     = colornames.Indianred
	colorPlayer    = colornames.Limegreen
	colorHurt      = color.RGBA{255, 255, 255, 200}
	colorProbe     = color.RGBA{100, 100, 200, 160}
	colorOverlay   = color.RGBA{0, 0, 0, 128}
)

var powerUpColors = map[entity.PowerUp]color.Color{
	entity.KiArmor: colornames.Deepskyblue,
	entity.KiStar:  colornames.Gold,
	entity.KiBlade: colornames.Silver,
	entity.KiClaws: colornames.Orange,
	entity.KiFan:   colornames.Violet,
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	w := p.sim.World()
	bounds := worldBounds(w)
	focus := center(bounds)
	if pl := w.MainPlayer(); pl != nil {
		focus = center(pl.WorldBox())
	}
	cam := newCamera(bounds, focus, p.screenW, p.screenH)

	for _, st := range w.Statics {
		fillBox(screen, cam, st.WorldBox(), colorStatic)
	}
	p.drawItems(screen, cam)
	for _, e := range w.Enemies {
		fillBox(screen, cam, e.WorldBox(), colorEnemy)
	}
	p.drawPlayers(screen, cam)

	p.drawHUD(screen)
	if p.state == state.StatePaused {
		p.drawOverlay(screen, "PAUSED\n\nESC to resume")
	}
	if p.state == state.StateFinished {
		p.drawOverlay(screen, fmt.Sprintf("REPLAY DONE\n\n%016x\n\nR to watch again", p.sim.Digest()))
	}
}

func (p *Playing) drawItems(screen *ebiten.Image, cam camera) {
	for _, it := range p.sim.World().Items {
		switch it.Kind {
		case entity.ItemClimbable:
			strokeBox(screen, cam, it.Box, colorClimbable)
		case entity.ItemHazard:
			fillBox(screen, cam, it.Box, colorHazard)
		case entity.ItemCollectable:
			c := powerUpColors[it.PowerUp]
			if c == nil {
				c = colorPickup
			}
			fillBox(screen, cam, it.Box, c)
		}
	}
}

func (p *Playing) drawPlayers(screen *ebiten.Image, cam camera) {
	for _, pl := range p.sim.World().Players {
		var c color.Color = colorPlayer
		if held, ok := powerUpColors[pl.PowerUp]; ok {
			c = held
		}
		// flash while recovering from a hit
		if pl.Recovery > 0 && int(pl.Recovery*10)%2 == 0 {
			c = colorHurt
		}
		box := pl.WorldBox()
		fillBox(screen, cam, box, c)

		if p.debug {
			probe := p.sim.Config().Physics.Collision.GroundProbe
			strokeBox(screen, cam, box.Translate(mgl32.Vec2{0, -probe}), colorProbe)
		}
	}
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	st := p.sim.State()
	hud := fmt.Sprintf("%s  %s  frame %d\n%s %s  ki: %s",
		p.sim.StageID(), p.state, st.Frame, st.Stance, st.Animation, st.PowerUp)
	if p.debug {
		hud += fmt.Sprintf("\npos %.1f,%.1f  vel %.1f,%.1f  ground=%v blocked=%v",
			st.Position.X(), st.Position.Y(), st.Velocity.X(), st.Velocity.Y(), st.OnGround, st.Blocked)
	}
	ebitenutil.DebugPrintAt(screen, hud, 4, 4)

	if p.messageTTL > 0 {
		ebitenutil.DebugPrintAt(screen, p.message, 4, p.screenH-20)
	}
	if p.recorder != nil {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("REC %d", p.recorder.FrameCount()), p.screenW-60, 4)
	}
}

func (p *Playing) drawOverlay(screen *ebiten.Image, text string) {
	vector.FillRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), colorOverlay, false)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}

func center(box geometry.Corners) mgl32.Vec2 {
	return mgl32.Vec2{box.XMidpoint(), box.YMidpoint()}
}

func fillBox(screen *ebiten.Image, cam camera, box geometry.Corners, c color.Color) {
	x, y, w, h := cam.rect(box)
	vector.FillRect(screen, x, y, w, h, c, false)
}

func strokeBox(screen *ebiten.Image, cam camera, box geometry.Corners, c color.Color) {
	x, y, w, h := cam.rect(box)
	vector.StrokeRect(screen, x, y, w, h, 1, c, false)
}
