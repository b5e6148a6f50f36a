// pkg/pathfind/heuristic.go
package pathfind

import (
	"math"

	"go-grid-defense/pkg/utils"
)

// Heuristic estimates the remaining cost between two cells.
type Heuristic func(a, b Point) float64

func Manhattan(a, b Point) float64 {
	return float64(utils.Abs(a.X-b.X) + utils.Abs(a.Y-b.Y))
}

func Euclidean(a, b Point) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

// Chebyshev is admissible for 8-directional movement with uniform step cost.
func Chebyshev(a, b Point) float64 {
	return float64(utils.Chebyshev(a.X, a.Y, b.X, b.Y))
}

// OpenGrid is a grid with nothing blocked.
type OpenGrid struct{ W, H int }

func (o OpenGrid) Width() int            { return o.W }
func (o OpenGrid) Height() int           { return o.H }
func (o OpenGrid) Blocked(x, y int) bool { return false }
