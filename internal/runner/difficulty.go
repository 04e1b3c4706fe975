package runner

import (
	"time"

	"github.com/vovakirdan/dash-runner/internal/config"
)

// DifficultyController ratchets obstacle speed up and the spawn interval down
// every time accumulated play time crosses the threshold.
type DifficultyController struct {
	cfg      config.DifficultyConfig
	speed    float64
	interval time.Duration
	acc      time.Duration
	level    int
}

// NewDifficultyController creates a controller at its starting level.
func NewDifficultyController(cfg config.DifficultyConfig) *DifficultyController {
	d := &DifficultyController{cfg: cfg}
	d.Reset()
	return d
}

// Reset returns to base speed and interval, then applies the initial steps.
func (d *DifficultyController) Reset() {
	d.speed = d.cfg.BaseSpeed
	d.interval = d.cfg.BaseInterval
	d.acc = 0
	d.level = 0
	if d.cfg.Enabled {
		d.step(d.cfg.InitialSteps)
	}
}

// Tick accumulates play time. Every threshold crossed inside dt counts,
// so a long frame applies several steps at once.
func (d *DifficultyController) Tick(dt time.Duration) {
	if !d.cfg.Enabled || dt <= 0 || d.cfg.Threshold <= 0 {
		return
	}

	d.acc += dt
	if d.acc < d.cfg.Threshold {
		return
	}
	crossings := int(d.acc / d.cfg.Threshold)
	d.acc %= d.cfg.Threshold
	d.step(crossings)
}

// step applies n ratchet steps, respecting the speed cap and interval floor.
func (d *DifficultyController) step(n int) {
	if n <= 0 {
		return
	}
	d.level += n
	d.speed = min(d.speed+float64(n)*d.cfg.SpeedStep, d.cfg.MaxSpeed)

	// Avoid overflowing the duration multiplication on absurd n.
	span := d.interval - d.cfg.MinInterval
	if d.cfg.IntervalStep > 0 && time.Duration(n) > span/d.cfg.IntervalStep {
		d.interval = d.cfg.MinInterval
	} else {
		d.interval = max(d.interval-time.Duration(n)*d.cfg.IntervalStep, d.cfg.MinInterval)
	}
}

// Speed returns the obstacle speed for new spawns, in pixels per tick.
func (d *DifficultyController) Speed() float64 { return d.speed }

// Interval returns the current time between spawns.
func (d *DifficultyController) Interval() time.Duration { return d.interval }

// Level returns the number of ratchet steps applied since reset.
func (d *DifficultyController) Level() int { return d.level }
