// Package gui provides the Ebitengine host shell. It draws the runner at the
// world's native resolution, one world pixel per screen pixel.
package gui

import (
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/dash-runner/internal/core"
	"github.com/vovakirdan/dash-runner/internal/runner"
)

var (
	skyColor      = color.RGBA{R: 235, G: 242, B: 250, A: 255}
	groundColor   = color.RGBA{R: 120, G: 110, B: 95, A: 255}
	playerColor   = color.RGBA{R: 40, G: 120, B: 200, A: 255}
	crashedColor  = color.RGBA{R: 200, G: 50, B: 50, A: 255}
	groundObColor = color.RGBA{R: 60, G: 150, B: 70, A: 255}
	airObColor    = color.RGBA{R: 230, G: 130, B: 30, A: 255}
	overlayColor  = color.RGBA{A: 140}
)

// Game implements ebiten.Game around a runner simulation.
// Ebitengine calls Update and Draw from one goroutine.
type Game struct {
	sim    *runner.Sim
	clock  *runner.Clock
	logger *log.Logger
	now    func() time.Time
	snap   runner.Snapshot
	paused bool
}

// NewGame creates a window shell for the simulation.
func NewGame(sim *runner.Sim, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		sim:    sim,
		clock:  runner.NewClock(sim.Config().Clock.MaxDelta),
		logger: logger,
		now:    time.Now,
		snap:   sim.Snapshot(),
	}
}

// keyActions maps window keys to actions.
var keyActions = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeySpace, core.ActionJump},
	{ebiten.KeyArrowUp, core.ActionJump},
	{ebiten.KeyW, core.ActionJump},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyEscape, core.ActionPause},
	{ebiten.KeyQ, core.ActionQuit},
}

// pollInput collects this frame's key and mouse presses.
func pollInput() core.InputFrame {
	in := core.NewInputFrame()
	for _, ka := range keyActions {
		if inpututil.IsKeyJustPressed(ka.key) {
			in.Set(ka.action)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.Set(core.ActionJump)
	}
	return in
}

// Update advances the game by one frame.
func (g *Game) Update() error {
	return g.step(pollInput())
}

// step applies the frame's input and advances the simulation.
func (g *Game) step(in core.InputFrame) error {
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	if in.Has(core.ActionPause) && g.snap.State != runner.GameOver {
		g.paused = !g.paused
		if !g.paused {
			g.clock.Reset()
		}
	}
	if g.paused {
		return nil
	}

	switch {
	case in.Has(core.ActionRestart):
		g.sim.Restart()
	case in.Has(core.ActionJump) && g.snap.State == runner.GameOver:
		g.sim.Restart()
	case in.Has(core.ActionJump):
		g.sim.Jump()
	}

	if dt, ok := g.clock.Advance(g.now()); ok {
		prev := g.snap.State
		g.snap = g.sim.Tick(dt)
		if prev == runner.Playing && g.snap.State == runner.GameOver {
			g.logger.Debug("window run over", "score", g.snap.Score, "record", g.snap.Record)
		}
	}
	return nil
}

// Draw renders the last snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.snap
	screen.Fill(skyColor)

	fillBox(screen, core.NewBox(0, snap.GroundLine, snap.WorldW, snap.WorldH-snap.GroundLine), groundColor)

	for _, o := range snap.Obstacles {
		c := groundObColor
		if o.Kind == runner.KindAir {
			c = airObColor
		}
		fillBox(screen, o.Box, c)
	}

	pc := playerColor
	if snap.State == runner.GameOver {
		pc = crashedColor
	}
	fillBox(screen, snap.Player, pc)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d  Best: %d", snap.Score, snap.Best), 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Speed: %.1f  Level: %d", snap.Speed, snap.Level), int(snap.WorldW)-160, 10)

	switch {
	case snap.State == runner.GameOver:
		title := "GAME OVER"
		if snap.Record {
			title = fmt.Sprintf("NEW BEST: %d", snap.Score)
		}
		drawMessage(screen, snap, title, "Press R or Space to restart")
	case g.paused:
		drawMessage(screen, snap, "PAUSED", "Press P to resume")
	}
}

// Layout keeps the logical screen at the world size; the window scales it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.snap.WorldW), int(g.snap.WorldH)
}

// fillBox draws a world box as a filled rectangle.
func fillBox(dst *ebiten.Image, b core.Box, c color.Color) {
	vector.DrawFilledRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), c, false)
}

// drawMessage dims the world and prints two centered lines.
func drawMessage(dst *ebiten.Image, snap runner.Snapshot, title, subtitle string) {
	fillBox(dst, core.NewBox(0, 0, snap.WorldW, snap.WorldH), overlayColor)

	// The debug font is 6x16 pixels per glyph
	cx, cy := int(snap.WorldW)/2, int(snap.WorldH)/2
	ebitenutil.DebugPrintAt(dst, title, cx-len(title)*3, cy-20)
	ebitenutil.DebugPrintAt(dst, subtitle, cx-len(subtitle)*3, cy+4)
}

// Run opens a window and plays until it is closed or Q is pressed.
func Run(sim *runner.Sim, cfg core.RuntimeConfig, logger *log.Logger) (runner.Snapshot, error) {
	game := NewGame(sim, logger)

	ebiten.SetWindowSize(int(game.snap.WorldW), int(game.snap.WorldH))
	ebiten.SetWindowTitle("Dash Runner")
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	if err := ebiten.RunGame(game); err != nil {
		return game.snap, err
	}
	return game.snap, nil
}
