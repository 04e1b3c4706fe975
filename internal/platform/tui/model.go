package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dash-runner/internal/core"
	"github.com/vovakirdan/dash-runner/internal/runner"
)

// Model is the Bubble Tea model that drives a runner simulation.
// Bubble Tea serializes key and tick messages through Update, so the
// simulation is only ever touched from one goroutine.
type Model struct {
	sim      *runner.Sim
	clock    *runner.Clock
	renderer *Renderer
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	config   core.RuntimeConfig
	snap     runner.Snapshot
	paused   bool
	quitting bool
}

// NewModel creates a model around an existing simulation.
func NewModel(sim *runner.Sim, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		sim:      sim,
		clock:    runner.NewClock(sim.Config().Clock.MaxDelta),
		renderer: NewRenderer(),
		screen:   core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0)), // last line is the help bar
		keys:     DefaultKeyMap(),
		help:     h,
		logger:   logger,
		config:   cfg,
		snap:     sim.Snapshot(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && !m.paused {
			m.sim.Jump()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 0))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey maps keyboard input to runner requests.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionScreenshot:
		m.saveScreenshot()

	case core.ActionPause:
		if m.snap.State == runner.GameOver {
			break
		}
		m.paused = !m.paused
		if !m.paused {
			// Time spent paused must not reach the simulation
			m.clock.Reset()
		}

	case core.ActionRestart:
		if !m.paused {
			m.sim.Restart()
		}

	case core.ActionJump:
		if m.paused {
			break
		}
		// Space doubles as restart on the game over screen
		if m.snap.State == runner.GameOver {
			m.sim.Restart()
		} else {
			m.sim.Jump()
		}
	}

	return m, nil
}

// handleTick advances the simulation by the elapsed wall time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.paused {
		if dt, ok := m.clock.Advance(now); ok {
			m.snap = m.sim.Tick(dt)
		}
	}
	return m, tickCmd(m.config.TickRate)
}

// Snapshot returns the last state the simulation reported.
func (m Model) Snapshot() runner.Snapshot {
	return m.snap
}

// Paused reports whether the shell is paused.
func (m Model) Paused() bool {
	return m.paused
}

// draw renders the current snapshot into the screen buffer.
func (m Model) draw() {
	m.renderer.Render(m.screen, m.snap)
	if m.paused {
		m.renderer.DrawMessage(m.screen, "PAUSED", "Press P to resume")
	}
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() {
	m.draw()

	dir, err := ScreenshotDir()
	if err != nil {
		m.logger.Warn("cannot resolve screenshot directory", "error", err)
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "dir", dir, "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("runner_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// ScreenshotDir returns the directory Ctrl+S writes to.
func ScreenshotDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".runner", "screenshots"), nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the given simulation and returns
// the last snapshot once the user quits.
func Run(sim *runner.Sim, cfg core.RuntimeConfig, logger *log.Logger) (runner.Snapshot, error) {
	model := NewModel(sim, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse click jumps
	)

	finalModel, err := p.Run()
	if err != nil {
		return model.Snapshot(), err
	}
	if m, ok := finalModel.(Model); ok {
		return m.Snapshot(), nil
	}
	return sim.Snapshot(), nil
}
