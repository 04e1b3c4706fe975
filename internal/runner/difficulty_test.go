package runner

import (
	"testing"
	"time"

	"github.com/vovakirdan/dash-runner/internal/config"
)

func TestDifficultyStartsAtBase(t *testing.T) {
	d := NewDifficultyController(config.DefaultRunnerConfig().Difficulty)
	if d.Speed() != 6 || d.Interval() != 1500*time.Millisecond || d.Level() != 0 {
		t.Errorf("start: speed=%v interval=%v level=%d", d.Speed(), d.Interval(), d.Level())
	}
}

func TestDifficultyRatchet(t *testing.T) {
	d := NewDifficultyController(config.DefaultRunnerConfig().Difficulty)

	// Just below the threshold nothing happens.
	for i := 0; i < 4999; i++ {
		d.Tick(time.Millisecond)
	}
	if d.Level() != 0 {
		t.Fatalf("stepped before threshold, level=%d", d.Level())
	}

	d.Tick(time.Millisecond)
	if d.Level() != 1 {
		t.Fatalf("level = %d, expected 1 at threshold", d.Level())
	}
	if d.Speed() != 6.5 {
		t.Errorf("speed = %v, expected 6.5", d.Speed())
	}
	if d.Interval() != 1400*time.Millisecond {
		t.Errorf("interval = %v, expected 1.4s", d.Interval())
	}
}

func TestDifficultyMultipleCrossingsInOneTick(t *testing.T) {
	d := NewDifficultyController(config.DefaultRunnerConfig().Difficulty)

	d.Tick(12 * time.Second)
	if d.Level() != 2 {
		t.Errorf("level = %d, expected 2 crossings", d.Level())
	}
	if d.Speed() != 7 {
		t.Errorf("speed = %v, expected 7", d.Speed())
	}

	// The 2s remainder is kept: 3 more seconds reach the next step.
	d.Tick(3 * time.Second)
	if d.Level() != 3 {
		t.Errorf("level = %d, expected remainder to carry over", d.Level())
	}
}

func TestDifficultyCaps(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Difficulty
	d := NewDifficultyController(cfg)

	for _, dt := range []time.Duration{time.Hour, 1000 * time.Hour, 5 * time.Second, time.Duration(1<<62 - 1)} {
		d.Tick(dt)
		if d.Speed() > cfg.MaxSpeed {
			t.Fatalf("speed %v exceeds max %v", d.Speed(), cfg.MaxSpeed)
		}
		if d.Interval() < cfg.MinInterval {
			t.Fatalf("interval %v below min %v", d.Interval(), cfg.MinInterval)
		}
	}
	if d.Speed() != cfg.MaxSpeed || d.Interval() != cfg.MinInterval {
		t.Errorf("after long play: speed=%v interval=%v, expected caps", d.Speed(), d.Interval())
	}
}

func TestDifficultyMonotonic(t *testing.T) {
	d := NewDifficultyController(config.DefaultRunnerConfig().Difficulty)
	prevSpeed, prevInterval := d.Speed(), d.Interval()

	for i := 0; i < 5000; i++ {
		d.Tick(37 * time.Millisecond)
		if d.Speed() < prevSpeed {
			t.Fatalf("speed decreased: %v -> %v", prevSpeed, d.Speed())
		}
		if d.Interval() > prevInterval {
			t.Fatalf("interval increased: %v -> %v", prevInterval, d.Interval())
		}
		prevSpeed, prevInterval = d.Speed(), d.Interval()
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Difficulty
	cfg.Enabled = false
	cfg.InitialSteps = 3
	d := NewDifficultyController(cfg)

	d.Tick(time.Hour)
	if d.Speed() != cfg.BaseSpeed || d.Interval() != cfg.BaseInterval || d.Level() != 0 {
		t.Errorf("disabled controller moved: speed=%v interval=%v level=%d", d.Speed(), d.Interval(), d.Level())
	}
}

func TestDifficultyInitialStepsAndReset(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Difficulty
	cfg.InitialSteps = 6
	d := NewDifficultyController(cfg)

	if d.Level() != 6 || d.Speed() != 9 || d.Interval() != 900*time.Millisecond {
		t.Errorf("initial steps: level=%d speed=%v interval=%v", d.Level(), d.Speed(), d.Interval())
	}

	d.Tick(time.Minute)
	d.Reset()
	if d.Level() != 6 || d.Speed() != 9 {
		t.Errorf("Reset should return to the initial steps, level=%d speed=%v", d.Level(), d.Speed())
	}
}

func TestDifficultyIgnoresNonPositiveDelta(t *testing.T) {
	d := NewDifficultyController(config.DefaultRunnerConfig().Difficulty)
	d.Tick(4 * time.Second)
	d.Tick(-10 * time.Second)
	d.Tick(0)
	d.Tick(time.Second)
	if d.Level() != 1 {
		t.Errorf("level = %d, expected negative deltas to be ignored", d.Level())
	}
}
