// pkg/tilemap/generator.go
package tilemap

import (
	"log"
	"math"

	"go-grid-defense/pkg/pathfind"
	"go-grid-defense/pkg/utils"
)

// Rand is the random source the generator draws from. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Config describes the map to generate.
type Config struct {
	Cols, Rows      int
	Starts, Ends    []Point
	ObstacleDensity float64
	MaxAttempts     int
}

const (
	keepClearRadius     = 1 // 3x3 zone around endpoints and carved cells
	minRoutes           = 2
	maxRoutes           = 3
	minWaypoints        = 2
	maxWaypoints        = 4
	cornerBoost         = 1.5
	maxDensity          = 0.9
	smoothingIterations = 5
	growthEvery         = 2
	growthChance        = 0.15
	birthThreshold      = 4
	deathThreshold      = 3
	minClusterSize      = 4
	protrusionChance    = 0.06
	minSide             = 3
	defaultMaxAttempts  = 10
)

// carver is shared by generation and connectivity checks: 4 directions keep
// carved corridors at least one orthogonal step wide.
var carver = pathfind.New(pathfind.Cardinal)

func (cfg Config) normalized() Config {
	cfg.Cols = utils.Max(cfg.Cols, minSide)
	cfg.Rows = utils.Max(cfg.Rows, minSide)
	cfg.ObstacleDensity = utils.ClampFloat(cfg.ObstacleDensity, 0, maxDensity)
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = defaultMaxAttempts
	}
	if len(cfg.Starts) == 0 {
		cfg.Starts = []Point{{X: 0, Y: cfg.Rows / 2}}
	}
	if len(cfg.Ends) == 0 {
		cfg.Ends = []Point{{X: cfg.Cols - 1, Y: cfg.Rows / 2}}
	}
	clamp := func(ps []Point) []Point {
		out := make([]Point, len(ps))
		for i, p := range ps {
			out[i] = Point{X: utils.Clamp(p.X, 0, cfg.Cols-1), Y: utils.Clamp(p.Y, 0, cfg.Rows-1)}
		}
		return out
	}
	cfg.Starts = clamp(cfg.Starts)
	cfg.Ends = clamp(cfg.Ends)
	return cfg
}

// Generate builds a map with at least one connected start/end pair. If no
// attempt succeeds within MaxAttempts the last attempt is returned with
// Connected set to false. Only one pair has to connect for an attempt to be
// accepted, even with several starts and ends configured; the repair pass
// normally links the rest.
func Generate(cfg Config, rng Rand) *Map {
	cfg = cfg.normalized()
	var m *Map
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		m = generateAttempt(cfg, rng)
		m.Attempts = attempt
		if m.AnyPairConnected() {
			m.Connected = true
			return m
		}
	}
	log.Printf("tilemap: no connected map after %d attempts, returning last attempt", cfg.MaxAttempts)
	return m
}

func generateAttempt(cfg Config, rng Rand) *Map {
	m := NewMap(cfg.Cols, cfg.Rows, cfg.Starts, cfg.Ends)
	protected := newMask(m.Cols, m.Rows)

	for _, p := range append(append([]Point(nil), m.Starts...), m.Ends...) {
		clearAround(m, p, keepClearRadius)
		protected.markAround(p, keepClearRadius)
	}

	routes := minRoutes + rng.Intn(maxRoutes-minRoutes+1)
	for i := 0; i < routes; i++ {
		s := m.Starts[rng.Intn(len(m.Starts))]
		e := m.Ends[rng.Intn(len(m.Ends))]
		carveRoute(m, s, e, rng, protected)
	}

	seedObstacles(m, cfg.ObstacleDensity, rng, protected)
	smooth(m, rng, protected)
	pruneClusters(m, minClusterSize)
	addProtrusions(m, rng, protected)
	repairConnectivity(m)

	for y := 0; y < m.Rows; y++ {
		for x := 0; x < m.Cols; x++ {
			if m.Tiles[y][x] == Path {
				m.Tiles[y][x] = Floor
			}
		}
	}
	return m
}

// carveRoute threads a route from s to e through random waypoints and marks
// it as Path with a protected neighbourhood.
func carveRoute(m *Map, s, e Point, rng Rand, protected mask) {
	points := []Point{s}
	n := minWaypoints + rng.Intn(maxWaypoints-minWaypoints+1)
	for i := 0; i < n; i++ {
		points = append(points, randomInterior(m, rng))
	}
	points = append(points, e)

	open := pathfind.OpenGrid{W: m.Cols, H: m.Rows}
	for i := 0; i+1 < len(points); i++ {
		for _, c := range carver.FindPath(open, points[i], points[i+1]) {
			m.Set(c.X, c.Y, Path)
			protected.markAround(c, keepClearRadius)
		}
	}
}

func randomInterior(m *Map, rng Rand) Point {
	x, y := 0, 0
	if m.Cols > 2 {
		x = 1 + rng.Intn(m.Cols-2)
	}
	if m.Rows > 2 {
		y = 1 + rng.Intn(m.Rows-2)
	}
	return Point{X: x, Y: y}
}

// seedObstacles scatters obstacles on unprotected floor, denser near corners.
func seedObstacles(m *Map, density float64, rng Rand, protected mask) {
	if density <= 0 {
		return
	}
	for y := 0; y < m.Rows; y++ {
		for x := 0; x < m.Cols; x++ {
			if m.Tiles[y][x] != Floor || protected.at(x, y) {
				continue
			}
			p := math.Min(density*cornerWeight(m, x, y), maxDensity)
			if rng.Float64() < p {
				m.Tiles[y][x] = Obstacle
			}
		}
	}
}

// cornerWeight is 1 at the centre of the map and rises to 1+cornerBoost in
// the corners.
func cornerWeight(m *Map, x, y int) float64 {
	halfW := math.Max(float64(m.Cols-1)/2, 1)
	halfH := math.Max(float64(m.Rows-1)/2, 1)
	dx := math.Min(float64(x), float64(m.Cols-1-x)) / halfW
	dy := math.Min(float64(y), float64(m.Rows-1-y)) / halfH
	d := math.Hypot(dx, dy) / math.Sqrt2
	closeness := 1 - utils.ClampFloat(d, 0, 1)
	return 1 + cornerBoost*closeness*closeness
}

// repairConnectivity clears a fresh route, plus its neighbourhood, between
// any start/end pair that has been cut off.
func repairConnectivity(m *Map) {
	open := pathfind.OpenGrid{W: m.Cols, H: m.Rows}
	for _, s := range m.Starts {
		for _, e := range m.Ends {
			if m.IsConnected(s, e) {
				continue
			}
			for _, c := range carver.FindPath(open, s, e) {
				clearAround(m, c, keepClearRadius)
			}
		}
	}
}

func clearAround(m *Map, p Point, r int) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			x, y := p.X+dx, p.Y+dy
			if m.InBounds(x, y) && m.Tiles[y][x] == Obstacle {
				m.Tiles[y][x] = Floor
			}
		}
	}
}

// mask is a per-cell boolean layer, indexed [row][col].
type mask [][]bool

func newMask(cols, rows int) mask {
	mk := make(mask, rows)
	for y := range mk {
		mk[y] = make([]bool, cols)
	}
	return mk
}

func (mk mask) at(x, y int) bool {
	if y < 0 || y >= len(mk) || x < 0 || x >= len(mk[y]) {
		return false
	}
	return mk[y][x]
}

func (mk mask) markAround(p Point, r int) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			x, y := p.X+dx, p.Y+dy
			if y >= 0 && y < len(mk) && x >= 0 && x < len(mk[y]) {
				mk[y][x] = true
			}
		}
	}
}
