package runner

import "github.com/vovakirdan/dash-runner/internal/core"

// FirstCollision returns the index of the first obstacle overlapping the
// player, or -1. It has no side effects.
func FirstCollision(player core.Box, obstacles []Obstacle) int {
	for i, o := range obstacles {
		if player.Overlaps(o.Box) {
			return i
		}
	}
	return -1
}
