// internal/system/movement.go
package system

import (
	"go-grid-defense/internal/component"
	"go-grid-defense/pkg/utils"
)

// moveTowards steps a position towards target by at most step pixels and
// returns the distance left.
func moveTowards(pos *component.Position, target component.Position, step float64) float64 {
	dist := utils.Dist(pos.X, pos.Y, target.X, target.Y)
	if dist <= step {
		*pos = target
		return 0
	}
	pos.X += (target.X - pos.X) / dist * step
	pos.Y += (target.Y - pos.Y) / dist * step
	return dist - step
}

func distance(a, b component.Position) float64 {
	return utils.Dist(a.X, a.Y, b.X, b.Y)
}
