// pkg/tilemap/map.go
package tilemap

import (
	"strings"

	"go-grid-defense/pkg/pathfind"
)

// Tile is the terrain type of a single grid cell.
type Tile uint8

const (
	Floor Tile = iota
	Obstacle
	Path // transient marker used while carving routes
)

// Point is a grid coordinate (column, row).
type Point = pathfind.Point

// Map is a generated terrain grid. Tiles is indexed [row][col].
type Map struct {
	Cols, Rows int
	Tiles      [][]Tile
	Starts     []Point
	Ends       []Point
	// Connected reports whether at least one start/end pair is joined by a
	// walkable route. A false value means generation ran out of attempts.
	Connected bool
	Attempts  int
}

// NewMap creates an all-floor map.
func NewMap(cols, rows int, starts, ends []Point) *Map {
	tiles := make([][]Tile, rows)
	for y := range tiles {
		tiles[y] = make([]Tile, cols)
	}
	return &Map{
		Cols:   cols,
		Rows:   rows,
		Tiles:  tiles,
		Starts: append([]Point(nil), starts...),
		Ends:   append([]Point(nil), ends...),
	}
}

func (m *Map) Width() int  { return m.Cols }
func (m *Map) Height() int { return m.Rows }

func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.Cols && y < m.Rows
}

// At returns the tile at (x, y); out of bounds reads as Obstacle.
func (m *Map) At(x, y int) Tile {
	if !m.InBounds(x, y) {
		return Obstacle
	}
	return m.Tiles[y][x]
}

func (m *Map) Set(x, y int, t Tile) {
	if m.InBounds(x, y) {
		m.Tiles[y][x] = t
	}
}

// Blocked implements pathfind.Grid over terrain only.
func (m *Map) Blocked(x, y int) bool {
	return m.At(x, y) == Obstacle
}

// IsConnected reports whether a walkable route joins a and b.
func (m *Map) IsConnected(a, b Point) bool {
	return carver.FindPath(m, a, b) != nil
}

// AnyPairConnected reports whether some start reaches some end.
func (m *Map) AnyPairConnected() bool {
	for _, s := range m.Starts {
		for _, e := range m.Ends {
			if m.IsConnected(s, e) {
				return true
			}
		}
	}
	return false
}

func (m *Map) ObstacleCount() int {
	n := 0
	for y := 0; y < m.Rows; y++ {
		for x := 0; x < m.Cols; x++ {
			if m.Tiles[y][x] == Obstacle {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of the map.
func (m *Map) Clone() *Map {
	c := *m
	c.Tiles = m.cloneTiles()
	c.Starts = append([]Point(nil), m.Starts...)
	c.Ends = append([]Point(nil), m.Ends...)
	return &c
}

func (m *Map) cloneTiles() [][]Tile {
	out := make([][]Tile, m.Rows)
	for y := range m.Tiles {
		out[y] = append([]Tile(nil), m.Tiles[y]...)
	}
	return out
}

// obstacleNeighbors counts obstacles in the 8-neighbourhood. Cells outside
// the map are not counted.
func (m *Map) obstacleNeighbors(x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if m.InBounds(nx, ny) && m.Tiles[ny][nx] == Obstacle {
				count++
			}
		}
	}
	return count
}

func (m *Map) isEndpoint(x, y int) (start, end bool) {
	p := Point{X: x, Y: y}
	for _, s := range m.Starts {
		if s == p {
			start = true
		}
	}
	for _, e := range m.Ends {
		if e == p {
			end = true
		}
	}
	return start, end
}

// String draws the map as ASCII: '.' floor, '#' obstacle, '*' path marker,
// 'S' start and 'E' end.
func (m *Map) String() string {
	var b strings.Builder
	for y := 0; y < m.Rows; y++ {
		for x := 0; x < m.Cols; x++ {
			start, end := m.isEndpoint(x, y)
			switch {
			case start:
				b.WriteByte('S')
			case end:
				b.WriteByte('E')
			case m.Tiles[y][x] == Obstacle:
				b.WriteByte('#')
			case m.Tiles[y][x] == Path:
				b.WriteByte('*')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
