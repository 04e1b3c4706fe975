// Package config provides YAML-based tuning configuration and difficulty
// presets for the runner.
package config

import "time"

// RunnerConfig contains all tuning parameters of the runner simulation.
// Distances are world pixels (y grows downward), speeds are pixels per tick.
type RunnerConfig struct {
	World      WorldConfig      `yaml:"world"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Clock      ClockConfig      `yaml:"clock"`
}

// WorldConfig defines the visible field.
type WorldConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	GroundY float64 `yaml:"ground_y"` // Resting top edge of the player
}

// PhysicsConfig defines the fixed-timestep vertical physics.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`        // Added to velocity every tick
	JumpImpulse  float64 `yaml:"jump_impulse"`   // Negative = upward
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // 0 = unlimited
}

// PlayerConfig defines the player box.
type PlayerConfig struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ObstacleConfig defines obstacle geometry and spawn randomness.
type ObstacleConfig struct {
	Width         float64 `yaml:"width"`
	GroundHeight  float64 `yaml:"ground_height"`
	AirHeight     float64 `yaml:"air_height"`
	AirOffset     float64 `yaml:"air_offset"`      // Air obstacle top edge sits this far above ground_y
	AirChance     float64 `yaml:"air_chance"`      // Probability that a spawn is an air obstacle
	ClusterChance float64 `yaml:"cluster_chance"`  // Probability of a second, downstream obstacle
	ClusterGapMin float64 `yaml:"cluster_gap_min"` // Gap between clustered obstacles
	ClusterGapMax float64 `yaml:"cluster_gap_max"`
}

// DifficultyConfig defines the difficulty ratchet.
type DifficultyConfig struct {
	Enabled      bool          `yaml:"enabled"`
	BaseSpeed    float64       `yaml:"base_speed"`
	MaxSpeed     float64       `yaml:"max_speed"`
	SpeedStep    float64       `yaml:"speed_step"`
	BaseInterval time.Duration `yaml:"base_interval"`
	MinInterval  time.Duration `yaml:"min_interval"`
	IntervalStep time.Duration `yaml:"interval_step"`
	Threshold    time.Duration `yaml:"threshold"`     // Play time between ratchet steps
	InitialSteps int           `yaml:"initial_steps"` // Steps applied at reset
}

// ClockConfig defines frame delta sanitizing.
type ClockConfig struct {
	MaxDelta time.Duration `yaml:"max_delta"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists all difficulty presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// Describe returns a one-line description of the preset for menus and help.
func (p DifficultyPreset) Describe() string {
	switch p {
	case DifficultyEasy:
		return "slower start, longer gaps"
	case DifficultyNormal:
		return "speed ramps every few seconds"
	case DifficultyHard:
		return "starts several steps into the ramp"
	case DifficultyFixed:
		return "no ramp, base speed forever"
	default:
		return ""
	}
}

// InitialStepsForPreset returns how many ratchet steps a preset applies at reset.
func InitialStepsForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyHard:
		return 6
	default:
		return 0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
