// Package playing provides the scene that runs and draws a simulation.
package playing

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/kraemahz/ninja-force/internal/application/replay"
	"github.com/kraemahz/ninja-force/internal/application/scene"
	"github.com/kraemahz/ninja-force/internal/application/sim"
	"github.com/kraemahz/ninja-force/internal/application/state"
	"github.com/kraemahz/ninja-force/internal/application/system"
	"github.com/kraemahz/ninja-force/internal/domain/entity"
)

// messageFrames is how long an event message stays on screen.
const messageFrames = 90

// Rebuild creates a fresh simulation from the current config on disk.
type Rebuild func() (*sim.Simulation, error)

// Playing is the main scene: it feeds input to a simulation and draws the
// world.
type Playing struct {
	sim     *sim.Simulation
	logger  *log.Logger
	state   state.GameState
	resume  state.GameState
	screenW int
	screenH int

	controls func() Controls
	debug    bool

	// Event feedback
	message    string
	messageTTL int

	// Replay playback
	replayer *replay.Replayer

	// Input recording
	recorder       *replay.Recorder
	recordFilename string

	// Hot reload
	changes <-chan string
	rebuild Rebuild
}

// Option configures a Playing scene.
type Option func(*Playing)

// WithRecorder records every played tick and saves it to path on exit and
// on F5. An empty path picks a timestamped name. A restart or reload starts
// a new recording.
func WithRecorder(path string) Option {
	return func(p *Playing) {
		p.recordFilename = path
		p.recorder = p.newRecorder()
	}
}

// WithReplay drives the simulation from a recording instead of the keyboard.
func WithReplay(data replay.ReplayData) Option {
	return func(p *Playing) {
		p.replayer = replay.NewReplayer(data)
		p.state = state.StateReplaying
	}
}

// WithReload rebuilds the simulation whenever a path arrives on changes.
func WithReload(changes <-chan string, rebuild Rebuild) Option {
	return func(p *Playing) {
		p.changes = changes
		p.rebuild = rebuild
	}
}

// WithControls replaces the keyboard.
func WithControls(read func() Controls) Option {
	return func(p *Playing) {
		p.controls = read
	}
}

// New creates a Playing scene over s.
func New(s *sim.Simulation, screenW, screenH int, logger *log.Logger, opts ...Option) *Playing {
	p := &Playing{
		sim:      s,
		logger:   logger,
		state:    state.StatePlaying,
		screenW:  screenW,
		screenH:  screenH,
		controls: KeyboardControls(system.NewInputSystem()),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Update runs one tick (implements scene.Scene). The simulation has its own
// fixed step, so dt is ignored.
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	p.reload()

	c := p.controls()
	if c.Quit {
		return nil, scene.ErrQuit
	}
	if c.Debug {
		p.debug = !p.debug
	}
	if c.Save {
		p.saveRecording()
	}
	if c.Restart {
		p.restart()
	}
	if c.Pause {
		p.togglePause()
	}

	switch p.state {
	case state.StatePlaying:
		p.step(c.Intent)
	case state.StateReplaying:
		in, ok := p.replayer.GetInput()
		if !ok {
			p.state = state.StateFinished
			p.logger.Info("replay finished", "frames", p.sim.Frame(), "digest", p.sim.Digest())
			break
		}
		p.step(in)
	}

	if p.messageTTL > 0 {
		p.messageTTL--
	}
	return nil, nil
}

func (p *Playing) step(in entity.Input) {
	if p.recorder != nil {
		p.recorder.RecordFrame(in)
	}
	p.sim.Step(in)

	for _, ev := range p.sim.Events() {
		p.announce(ev)
	}
}

func (p *Playing) announce(ev system.Event) {
	switch e := ev.(type) {
	case system.CollectEvent:
		p.show("got " + e.PowerUp.String())
		p.logger.Info("collect", "player", e.Player, "powerUp", e.PowerUp)
	case system.DamageEvent:
		p.show("hit, holding " + e.Remaining.String())
		p.logger.Info("damage", "player", e.Player, "remaining", e.Remaining)
	case system.RespawnEvent:
		p.show("respawn")
		p.logger.Info("respawn", "player", e.Player, "x", e.Spawn.X(), "y", e.Spawn.Y())
	case system.StompEvent:
		p.show("stomp")
		p.logger.Info("stomp", "player", e.Player, "enemy", e.Enemy)
	}
}

func (p *Playing) show(msg string) {
	p.message = msg
	p.messageTTL = messageFrames
}

func (p *Playing) togglePause() {
	if p.state == state.StatePaused {
		p.state = p.resume
		return
	}
	if p.state.Running() {
		p.resume = p.state
		p.state = state.StatePaused
	}
}

func (p *Playing) restart() {
	if err := p.sim.Reset(); err != nil {
		p.logger.Error("restart failed", "err", err)
		return
	}
	p.afterRebuild()
	p.logger.Info("restart", "stage", p.sim.StageID())
}

// afterRebuild starts input from frame 0 again for a fresh or reset world.
func (p *Playing) afterRebuild() {
	if p.recorder != nil {
		p.recorder = p.newRecorder()
	}
	if p.replayer != nil {
		p.replayer.Reset()
		p.state = state.StateReplaying
	} else {
		p.state = state.StatePlaying
	}
	p.message, p.messageTTL = "", 0
}

// reload swaps in a rebuilt simulation when config files changed. Several
// changes queued since the last frame cause one rebuild. A failed rebuild
// keeps the current simulation.
func (p *Playing) reload() {
	if p.changes == nil {
		return
	}

	var changed string
drain:
	for {
		select {
		case name, ok := <-p.changes:
			if !ok {
				p.changes = nil
				break drain
			}
			changed = name
		default:
			break drain
		}
	}
	if changed == "" {
		return
	}

	next, err := p.rebuild()
	if err != nil {
		p.logger.Error("reload failed", "file", changed, "err", err)
		p.show("reload failed")
		return
	}
	p.sim = next
	p.afterRebuild()
	p.show("reloaded")
	p.logger.Info("reloaded", "file", changed, "stage", next.StageID())
}

func (p *Playing) newRecorder() *replay.Recorder {
	rate := int(math.Round(float64(1 / p.sim.TickDuration())))
	return replay.NewRecorder(p.sim.StageID(), rate)
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.logger.Error("failed to save recording", "file", filename, "err", err)
		return
	}
	p.logger.Info("recording saved", "file", filename, "frames", p.recorder.FrameCount())
}

// OnEnter is called when entering the scene
func (p *Playing) OnEnter() {
	p.logger.Info("playing", "stage", p.sim.StageID(), "mode", p.state)
}

// OnExit saves any pending recording.
func (p *Playing) OnExit() {
	if p.recorder != nil {
		p.saveRecording()
		p.recorder.Stop()
	}
}

// State returns the scene's current mode.
func (p *Playing) State() state.GameState {
	return p.state
}

// Simulation returns the simulation being shown.
func (p *Playing) Simulation() *sim.Simulation {
	return p.sim
}
