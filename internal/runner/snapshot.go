package runner

import (
	"time"

	"github.com/vovakirdan/dash-runner/internal/core"
)

// Snapshot is a read-only copy of everything a render sink needs.
// It shares no memory with the simulation.
type Snapshot struct {
	WorldW     float64
	WorldH     float64
	GroundLine float64 // y of the line the player stands on

	Player    core.Box
	Airborne  bool
	Obstacles []Obstacle

	State    RunState
	Score    int
	Best     int
	Record   bool // GameOver with a new best score
	Speed    float64
	Interval time.Duration
	Level    int
	Ticks    int
	Elapsed  time.Duration
}

// Snapshot captures the current state without advancing it.
func (s *Sim) Snapshot() Snapshot {
	live := s.field.Obstacles()
	obstacles := make([]Obstacle, len(live))
	copy(obstacles, live)

	return Snapshot{
		WorldW:     s.cfg.World.Width,
		WorldH:     s.cfg.World.Height,
		GroundLine: s.cfg.World.GroundY + s.cfg.Player.Height,
		Player:     s.player.Box(),
		Airborne:   s.player.Airborne(),
		Obstacles:  obstacles,
		State:      s.state,
		Score:      s.score,
		Best:       s.best,
		Record:     s.record,
		Speed:      s.difficulty.Speed(),
		Interval:   s.difficulty.Interval(),
		Level:      s.difficulty.Level(),
		Ticks:      s.ticks,
		Elapsed:    s.elapsed,
	}
}
