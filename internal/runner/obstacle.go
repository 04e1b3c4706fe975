package runner

import (
	"time"

	"github.com/vovakirdan/dash-runner/internal/config"
	"github.com/vovakirdan/dash-runner/internal/core"
)

// Kind tells the two obstacle variants apart. Both share the same geometry
// fields; only spawn placement and rendering dispatch on it.
type Kind int

const (
	KindGround Kind = iota // Sits on the ground line, must be jumped over
	KindAir                // Floats above a grounded player, must not be jumped into
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindGround:
		return "ground"
	case KindAir:
		return "air"
	default:
		return "unknown"
	}
}

// Obstacle is a single obstacle moving left across the field.
type Obstacle struct {
	Kind   Kind
	Box    core.Box
	Speed  float64 // Pixels per tick, frozen at spawn
	Scored bool    // Already counted as passed
}

// randSource is the subset of *rand.Rand the field draws from.
type randSource interface {
	Float64() float64
}

// ObstacleField owns the live obstacles: it schedules spawns, moves every
// obstacle at its own speed and culls the ones that left the field.
// Obstacles are kept in spawn order.
type ObstacleField struct {
	cfg       config.ObstacleConfig
	width     float64 // Spawn x, the right edge of the field
	groundY   float64
	playerH   float64
	obstacles []Obstacle
	timer     time.Duration
	rng       randSource
}

// NewObstacleField creates an empty field.
func NewObstacleField(cfg config.RunnerConfig, rng randSource) *ObstacleField {
	return &ObstacleField{
		cfg:       cfg.Obstacles,
		width:     cfg.World.Width,
		groundY:   cfg.World.GroundY,
		playerH:   cfg.Player.Height,
		obstacles: make([]Obstacle, 0, 8),
		rng:       rng,
	}
}

// Reset removes all obstacles and restarts the spawn timer.
func (f *ObstacleField) Reset() {
	f.obstacles = f.obstacles[:0]
	f.timer = 0
}

// Tick spawns when the timer reaches interval, then advances and culls.
// New obstacles take speed as their frozen speed.
func (f *ObstacleField) Tick(dt time.Duration, speed float64, interval time.Duration) {
	if dt > 0 {
		f.timer += dt
	}
	if f.timer >= interval {
		f.spawn(speed)
		f.timer = 0
	}

	for i := range f.obstacles {
		f.obstacles[i].Box.X -= f.obstacles[i].Speed
	}

	f.cull()
}

// spawn adds one obstacle at the right edge and, sometimes, a second one
// further downstream.
func (f *ObstacleField) spawn(speed float64) {
	first := f.newObstacle(f.drawKind(), f.width, speed)
	f.obstacles = append(f.obstacles, first)

	if f.cfg.ClusterChance > 0 && f.rng.Float64() < f.cfg.ClusterChance {
		gap := f.cfg.ClusterGapMin + f.rng.Float64()*(f.cfg.ClusterGapMax-f.cfg.ClusterGapMin)
		second := f.newObstacle(f.drawKind(), first.Box.Right()+gap, speed)
		f.obstacles = append(f.obstacles, second)
	}
}

func (f *ObstacleField) drawKind() Kind {
	if f.rng.Float64() < f.cfg.AirChance {
		return KindAir
	}
	return KindGround
}

// newObstacle places an obstacle of the given kind with its left edge at x.
func (f *ObstacleField) newObstacle(kind Kind, x, speed float64) Obstacle {
	o := Obstacle{Kind: kind, Speed: speed}
	switch kind {
	case KindAir:
		o.Box = core.NewBox(x, f.groundY-f.cfg.AirOffset, f.cfg.Width, f.cfg.AirHeight)
	default:
		// Bottom flush with the ground line under the player's feet.
		o.Box = core.NewBox(x, f.groundY+f.playerH-f.cfg.GroundHeight, f.cfg.Width, f.cfg.GroundHeight)
	}
	return o
}

// cull drops obstacles whose right edge passed the left boundary,
// keeping the order of the rest.
func (f *ObstacleField) cull() {
	kept := f.obstacles[:0]
	for _, o := range f.obstacles {
		if o.Box.Right() >= 0 {
			kept = append(kept, o)
		}
	}
	f.obstacles = kept
}

// MarkPassed flags every unscored obstacle whose right edge is left of x
// and returns how many were newly flagged.
func (f *ObstacleField) MarkPassed(x float64) int {
	passed := 0
	for i := range f.obstacles {
		o := &f.obstacles[i]
		if !o.Scored && o.Box.Right() < x {
			o.Scored = true
			passed++
		}
	}
	return passed
}

// Obstacles returns the live obstacles in spawn order.
// The slice is owned by the field and must not be modified.
func (f *ObstacleField) Obstacles() []Obstacle {
	return f.obstacles
}

// Len returns the number of live obstacles.
func (f *ObstacleField) Len() int {
	return len(f.obstacles)
}
