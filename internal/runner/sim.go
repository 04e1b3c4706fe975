// Package runner implements the endless runner simulation: the player's
// jump physics, obstacle spawning and culling, the difficulty ratchet,
// collision and the Playing/GameOver state machine.
//
// The package never schedules itself. A host shell owns the frame loop,
// feeds timestamps through a Clock and calls Sim.Tick once per frame.
package runner

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dash-runner/internal/config"
)

// RunState is the state of the current run.
type RunState int

const (
	Playing RunState = iota
	GameOver
)

// String returns the state name.
func (s RunState) String() string {
	switch s {
	case Playing:
		return "playing"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// BestStore persists the best score between runs.
// Implementations live in the storage package.
type BestStore interface {
	Best() (int, error)
	SetBest(score int) error
}

// Option configures a Sim.
type Option func(*Sim)

// WithStore attaches a best-score store. The best score is read once
// at construction and written when a run beats it.
func WithStore(store BestStore) Option {
	return func(s *Sim) {
		s.store = store
	}
}

// WithLogger sets the logger for run events and store failures.
func WithLogger(logger *log.Logger) Option {
	return func(s *Sim) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// withRand replaces the random source (tests).
func withRand(r randSource) Option {
	return func(s *Sim) {
		s.rng = r
	}
}

// Sim owns all run state. It is not safe for concurrent use: shells call
// Jump, Restart and Tick from their single update goroutine.
type Sim struct {
	cfg        config.RunnerConfig
	rng        randSource
	player     *PlayerBody
	field      *ObstacleField
	difficulty *DifficultyController
	store      BestStore
	logger     *log.Logger

	state   RunState
	score   int
	best    int
	ticks   int
	elapsed time.Duration
	record  bool // The finished run beat the previous best

	jumpRequested    bool
	restartRequested bool
}

// New creates a simulation in the Playing state. The seed drives obstacle
// kinds and cluster gaps, so equal seeds and inputs give equal runs.
func New(cfg config.RunnerConfig, seed int64, opts ...Option) *Sim {
	s := &Sim{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.player = NewPlayerBody(cfg)
	s.field = NewObstacleField(cfg, s.rng)
	s.difficulty = NewDifficultyController(cfg.Difficulty)
	s.best = s.loadBest()
	s.reset()
	return s
}

// loadBest reads the stored best score. Any failure, including a value
// that is not a number, counts as no best score yet.
func (s *Sim) loadBest() int {
	if s.store == nil {
		return 0
	}
	best, err := s.store.Best()
	if err != nil {
		s.logger.Warn("ignoring stored best score", "error", err)
		return 0
	}
	if best < 0 {
		return 0
	}
	return best
}

// reset starts a fresh run. The RNG keeps going so every run differs.
func (s *Sim) reset() {
	s.player.Reset()
	s.field.Reset()
	s.difficulty.Reset()
	s.state = Playing
	s.score = 0
	s.ticks = 0
	s.elapsed = 0
	s.record = false
	s.jumpRequested = false
	s.restartRequested = false
}

// Jump requests a jump on the next tick. Ignored unless Playing and grounded
// when the tick applies it.
func (s *Sim) Jump() {
	s.jumpRequested = true
}

// Restart requests a new run on the next tick. Ignored unless GameOver.
func (s *Sim) Restart() {
	s.restartRequested = true
}

// applyRequests consumes latched input at the start of a tick.
func (s *Sim) applyRequests() {
	jump, restart := s.jumpRequested, s.restartRequested
	s.jumpRequested, s.restartRequested = false, false

	if jump && s.state == Playing {
		s.player.Jump()
	}
	if restart && s.state == GameOver {
		s.reset()
		s.logger.Debug("run restarted")
	}
}

// Tick advances the world by one frame that took dt of wall time and
// returns what the shell should draw. While GameOver the world is frozen.
func (s *Sim) Tick(dt time.Duration) Snapshot {
	s.applyRequests()
	if s.state == GameOver {
		return s.Snapshot()
	}
	if dt < 0 {
		dt = 0
	}

	s.ticks++
	s.elapsed += dt

	s.player.ApplyGravity()
	s.difficulty.Tick(dt)
	s.field.Tick(dt, s.difficulty.Speed(), s.difficulty.Interval())
	s.score += s.field.MarkPassed(s.cfg.Player.X)

	if FirstCollision(s.player.Box(), s.field.Obstacles()) >= 0 {
		s.endRun()
	}
	return s.Snapshot()
}

// endRun switches to GameOver and merges the final score into the best.
func (s *Sim) endRun() {
	s.state = GameOver
	final := s.score

	s.logger.Info("run ended",
		"score", final,
		"best", s.best,
		"ticks", s.ticks,
		"elapsed", s.elapsed.Round(time.Millisecond),
		"level", s.difficulty.Level())

	if final <= s.best {
		return
	}
	s.best = final
	s.record = true
	if s.store == nil {
		return
	}
	if err := s.store.SetBest(final); err != nil {
		s.logger.Error("failed to save best score", "score", final, "error", err)
	}
}

// State returns the current run state.
func (s *Sim) State() RunState { return s.state }

// Score returns the number of obstacles passed in this run.
func (s *Sim) Score() int { return s.score }

// Best returns the best score across runs.
func (s *Sim) Best() int { return s.best }

// Config returns the configuration the simulation runs with.
func (s *Sim) Config() config.RunnerConfig { return s.cfg }
