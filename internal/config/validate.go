package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the configuration for values the simulation cannot run with.
// All problems are reported at once.
func (c RunnerConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.World.Width > 0 && c.World.Height > 0, "world: size must be positive, got %vx%v", c.World.Width, c.World.Height)
	check(c.World.GroundY > 0 && c.World.GroundY+c.Player.Height <= c.World.Height,
		"world: ground_y %v must keep the player inside a field of height %v", c.World.GroundY, c.World.Height)

	check(c.Physics.Gravity > 0, "physics: gravity must be positive, got %v", c.Physics.Gravity)
	check(c.Physics.JumpImpulse < 0, "physics: jump_impulse must be negative (upward), got %v", c.Physics.JumpImpulse)
	check(c.Physics.MaxFallSpeed >= 0, "physics: max_fall_speed must not be negative, got %v", c.Physics.MaxFallSpeed)

	check(c.Player.Width > 0 && c.Player.Height > 0, "player: size must be positive, got %vx%v", c.Player.Width, c.Player.Height)
	check(c.Player.X >= 0 && c.Player.X+c.Player.Width <= c.World.Width, "player: x %v outside the field", c.Player.X)

	o := c.Obstacles
	check(o.Width > 0 && o.GroundHeight > 0 && o.AirHeight > 0, "obstacles: sizes must be positive")
	check(o.AirChance >= 0 && o.AirChance <= 1, "obstacles: air_chance %v not in [0,1]", o.AirChance)
	check(o.ClusterChance >= 0 && o.ClusterChance <= 1, "obstacles: cluster_chance %v not in [0,1]", o.ClusterChance)
	check(o.ClusterGapMin >= 0 && o.ClusterGapMin <= o.ClusterGapMax,
		"obstacles: cluster gap range [%v,%v] invalid", o.ClusterGapMin, o.ClusterGapMax)

	// Air obstacles are dodged by staying on the ground, so they must clear a
	// grounded player and still be reachable from the jump arc.
	airBottom := c.World.GroundY - o.AirOffset + o.AirHeight
	check(airBottom <= c.World.GroundY, "obstacles: air obstacle bottom %v would hit a grounded player (ground_y %v)", airBottom, c.World.GroundY)
	if c.Physics.Gravity > 0 {
		check(c.World.GroundY-c.JumpApex() < airBottom,
			"obstacles: air obstacle at offset %v is above the jump apex %.1f", o.AirOffset, c.JumpApex())
	}

	d := c.Difficulty
	check(d.BaseSpeed > 0, "difficulty: base_speed must be positive, got %v", d.BaseSpeed)
	check(d.MaxSpeed >= d.BaseSpeed, "difficulty: max_speed %v below base_speed %v", d.MaxSpeed, d.BaseSpeed)
	check(d.SpeedStep >= 0, "difficulty: speed_step must not be negative")
	check(d.MinInterval > 0, "difficulty: min_interval must be positive, got %v", d.MinInterval)
	check(d.BaseInterval >= d.MinInterval, "difficulty: base_interval %v below min_interval %v", d.BaseInterval, d.MinInterval)
	check(d.IntervalStep >= 0, "difficulty: interval_step must not be negative")
	check(d.Threshold > 0, "difficulty: threshold must be positive, got %v", d.Threshold)
	check(d.InitialSteps >= 0, "difficulty: initial_steps must not be negative")

	check(c.Clock.MaxDelta > 0, "clock: max_delta must be positive, got %v", c.Clock.MaxDelta)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// JumpApex returns how high above ground_y the top of the player rises
// during a jump from rest.
func (c RunnerConfig) JumpApex() float64 {
	v := -c.Physics.JumpImpulse
	return v * v / (2 * c.Physics.Gravity)
}
