// pkg/tilemap/smoothing.go
package tilemap

var (
	diagonals = []Point{{X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: -1}}
	cardinals = []Point{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}
)

// smooth runs the cellular automaton. Protected cells never turn into
// obstacles.
func smooth(m *Map, rng Rand, protected mask) {
	for i := 0; i < smoothingIterations; i++ {
		next := m.cloneTiles()
		for y := 0; y < m.Rows; y++ {
			for x := 0; x < m.Cols; x++ {
				n := m.obstacleNeighbors(x, y)
				switch m.Tiles[y][x] {
				case Floor:
					if n > birthThreshold && !protected.at(x, y) {
						next[y][x] = Obstacle
					}
				case Obstacle:
					if n < deathThreshold {
						next[y][x] = Floor
					}
				}
			}
		}
		m.Tiles = next
		if (i+1)%growthEvery == 0 {
			growDiagonally(m, rng, protected)
		}
	}
}

// growDiagonally extends a random subset of obstacles one step along a
// diagonal.
func growDiagonally(m *Map, rng Rand, protected mask) {
	for _, p := range obstacleCells(m) {
		if rng.Float64() >= growthChance {
			continue
		}
		d := diagonals[rng.Intn(len(diagonals))]
		x, y := p.X+d.X, p.Y+d.Y
		if m.InBounds(x, y) && m.Tiles[y][x] == Floor && !protected.at(x, y) {
			m.Tiles[y][x] = Obstacle
		}
	}
}

// pruneClusters turns every 4-connected obstacle cluster smaller than
// minSize back into floor.
func pruneClusters(m *Map, minSize int) {
	visited := newMask(m.Cols, m.Rows)
	for y := 0; y < m.Rows; y++ {
		for x := 0; x < m.Cols; x++ {
			if visited[y][x] || m.Tiles[y][x] != Obstacle {
				continue
			}
			cluster := floodObstacles(m, Point{X: x, Y: y}, visited)
			if len(cluster) >= minSize {
				continue
			}
			for _, c := range cluster {
				m.Tiles[c.Y][c.X] = Floor
			}
		}
	}
}

func floodObstacles(m *Map, from Point, visited mask) []Point {
	var cluster []Point
	stack := []Point{from}
	visited[from.Y][from.X] = true
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cluster = append(cluster, p)
		for _, d := range cardinals {
			x, y := p.X+d.X, p.Y+d.Y
			if m.InBounds(x, y) && !visited[y][x] && m.Tiles[y][x] == Obstacle {
				visited[y][x] = true
				stack = append(stack, Point{X: x, Y: y})
			}
		}
	}
	return cluster
}

// addProtrusions pushes short 1-2 tile spurs out of obstacle edges.
func addProtrusions(m *Map, rng Rand, protected mask) {
	for _, p := range obstacleCells(m) {
		if rng.Float64() >= protrusionChance {
			continue
		}
		var open []Point
		for _, d := range cardinals {
			if m.At(p.X+d.X, p.Y+d.Y) == Floor {
				open = append(open, d)
			}
		}
		if len(open) == 0 {
			continue
		}
		d := open[rng.Intn(len(open))]
		length := 1 + rng.Intn(2)
		for step := 1; step <= length; step++ {
			x, y := p.X+d.X*step, p.Y+d.Y*step
			if !m.InBounds(x, y) || m.Tiles[y][x] != Floor || protected.at(x, y) {
				break
			}
			m.Tiles[y][x] = Obstacle
		}
	}
}

func obstacleCells(m *Map) []Point {
	var cells []Point
	for y := 0; y < m.Rows; y++ {
		for x := 0; x < m.Cols; x++ {
			if m.Tiles[y][x] == Obstacle {
				cells = append(cells, Point{X: x, Y: y})
			}
		}
	}
	return cells
}
