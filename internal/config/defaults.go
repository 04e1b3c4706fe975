package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the hardcoded default configuration.
// It mirrors defaults/runner.yaml and is used when the embedded file
// cannot be decoded.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: WorldConfig{
			Width:   800,
			Height:  400,
			GroundY: 300,
		},
		Physics: PhysicsConfig{
			Gravity:      0.6,
			JumpImpulse:  -15,
			MaxFallSpeed: 0,
		},
		Player: PlayerConfig{
			X:      50,
			Width:  50,
			Height: 50,
		},
		Obstacles: ObstacleConfig{
			Width:         40,
			GroundHeight:  60,
			AirHeight:     40,
			AirOffset:     120,
			AirChance:     0.3,
			ClusterChance: 0.35,
			ClusterGapMin: 80,
			ClusterGapMax: 160,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			BaseSpeed:    6,
			MaxSpeed:     15,
			SpeedStep:    0.5,
			BaseInterval: 1500 * time.Millisecond,
			MinInterval:  600 * time.Millisecond,
			IntervalStep: 100 * time.Millisecond,
			Threshold:    5 * time.Second,
			InitialSteps: 0,
		},
		Clock: ClockConfig{
			MaxDelta: 250 * time.Millisecond,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
