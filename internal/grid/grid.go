// internal/grid/grid.go
package grid

import (
	"math"

	"go-grid-defense/internal/config"
	"go-grid-defense/internal/types"
	"go-grid-defense/pkg/tilemap"
)

// Cell is the runtime occupancy state of one tile.
type Cell struct {
	Col, Row   int
	Occupied   bool // obstacle or structure
	IsObstacle bool
	Owner      types.EntityID // structure holding the cell, 0 if none
}

// Grid is the single source of truth for blocked cells. Reserve and Release
// only touch occupancy, never the terrain.
type Grid struct {
	cols, rows int
	cells      []Cell
}

// New builds an occupancy grid over generated terrain.
func New(m *tilemap.Map) *Grid {
	g := &Grid{cols: m.Cols, rows: m.Rows, cells: make([]Cell, m.Cols*m.Rows)}
	for y := 0; y < m.Rows; y++ {
		for x := 0; x < m.Cols; x++ {
			obstacle := m.At(x, y) == tilemap.Obstacle
			g.cells[y*m.Cols+x] = Cell{Col: x, Row: y, Occupied: obstacle, IsObstacle: obstacle}
		}
	}
	return g
}

func (g *Grid) Cols() int { return g.cols }
func (g *Grid) Rows() int { return g.rows }

// Width, Height and Blocked let the grid be walked by pathfind.
func (g *Grid) Width() int             { return g.cols }
func (g *Grid) Height() int            { return g.rows }
func (g *Grid) Blocked(x, y int) bool  { return g.IsCellOccupied(x, y) }
func (g *Grid) InBounds(x, y int) bool { return x >= 0 && y >= 0 && x < g.cols && y < g.rows }
func (g *Grid) index(x, y int) int     { return y*g.cols + x }

// Cell returns a copy of the cell state.
func (g *Grid) Cell(x, y int) (Cell, bool) {
	if !g.InBounds(x, y) {
		return Cell{}, false
	}
	return g.cells[g.index(x, y)], true
}

// IsCellOccupied fails closed: anything outside the grid is occupied.
func (g *Grid) IsCellOccupied(x, y int) bool {
	if !g.InBounds(x, y) {
		return true
	}
	return g.cells[g.index(x, y)].Occupied
}

// IsObstacle reports terrain obstacles only.
func (g *Grid) IsObstacle(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.cells[g.index(x, y)].IsObstacle
}

// OwnerAt returns the structure holding a cell.
func (g *Grid) OwnerAt(x, y int) (types.EntityID, bool) {
	if !g.InBounds(x, y) {
		return 0, false
	}
	owner := g.cells[g.index(x, y)].Owner
	return owner, owner != 0
}

func (g *Grid) CanPlaceFootprint(x, y, w, h int) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			if g.IsCellOccupied(x+dx, y+dy) {
				return false
			}
		}
	}
	return true
}

// Reserve marks a footprint occupied by owner. Callers check
// CanPlaceFootprint first; cells outside the grid are ignored.
func (g *Grid) Reserve(x, y, w, h int, owner types.EntityID) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			if !g.InBounds(x+dx, y+dy) {
				continue
			}
			c := &g.cells[g.index(x+dx, y+dy)]
			c.Occupied = true
			c.Owner = owner
		}
	}
}

// Release frees a footprint. Obstacle cells stay occupied.
func (g *Grid) Release(x, y, w, h int) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			if !g.InBounds(x+dx, y+dy) {
				continue
			}
			c := &g.cells[g.index(x+dx, y+dy)]
			c.Occupied = c.IsObstacle
			c.Owner = 0
		}
	}
}

// CellOf maps a world position to the cell containing it.
func CellOf(px, py float64) (col, row int) {
	return int(math.Floor(px / config.CellSize)), int(math.Floor(py / config.CellSize))
}

// CellCenter returns the world position of a cell's centre.
func CellCenter(col, row int) (px, py float64) {
	return (float64(col) + 0.5) * config.CellSize, (float64(row) + 0.5) * config.CellSize
}

// FootprintCenter returns the world centre of a size x size footprint.
func FootprintCenter(col, row, size int) (px, py float64) {
	half := float64(size) / 2
	return (float64(col) + half) * config.CellSize, (float64(row) + half) * config.CellSize
}
