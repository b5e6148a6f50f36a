// pkg/pathfind/astar.go
package pathfind

// Point is an integer grid coordinate.
type Point struct{ X, Y int }

// Grid is anything the pathfinder can walk over.
type Grid interface {
	Width() int
	Height() int
	Blocked(x, y int) bool
}

// Node is an A* search node. It is exposed so callers can supply their own
// tie-break rule through Options.Less.
type Node struct {
	P      Point
	G      float64 // steps from start
	H      float64 // heuristic to goal
	F      float64 // G + H
	parent *Node
}

// Options configures one pathfinder flavour.
type Options struct {
	Directions []Point
	Heuristic  Heuristic
	// CornerCutting allows diagonal steps past a blocked orthogonal neighbour.
	CornerCutting bool
	// Less picks the better of two open nodes. The open set is scanned
	// linearly and a node only replaces the current best when Less reports
	// true, so on ties the first node encountered wins.
	Less func(a, b *Node) bool
}

var (
	CardinalDirections = []Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	DiagonalDirections = []Point{
		{0, -1}, {1, 0}, {0, 1}, {-1, 0},
		{1, -1}, {1, 1}, {-1, 1}, {-1, -1},
	}
)

// LowerF orders nodes by f only.
func LowerF(a, b *Node) bool { return a.F < b.F }

// Cardinal is used during map generation: 4 directions, Manhattan distance.
var Cardinal = Options{
	Directions: CardinalDirections,
	Heuristic:  Manhattan,
	Less:       LowerF,
}

// Diagonal is used for live unit navigation: 8 directions, Euclidean
// distance, no cutting through obstacle corners.
var Diagonal = Options{
	Directions: DiagonalDirections,
	Heuristic:  Euclidean,
	Less:       LowerF,
}

// Pathfinder runs A* with a fixed set of Options. It holds no per-search
// state and can be shared by every caller.
type Pathfinder struct {
	opts Options
}

// New creates a pathfinder. Missing options fall back to the Diagonal preset.
func New(opts Options) *Pathfinder {
	if len(opts.Directions) == 0 {
		opts.Directions = DiagonalDirections
	}
	if opts.Heuristic == nil {
		opts.Heuristic = Euclidean
	}
	if opts.Less == nil {
		opts.Less = LowerF
	}
	return &Pathfinder{opts: opts}
}

// FindPath returns the cells from `from` to `to`, both inclusive, or nil
// when the goal is blocked or unreachable. The start cell itself may be
// blocked; only the cells stepped into are checked.
func (p *Pathfinder) FindPath(g Grid, from, to Point) []Point {
	w, h := g.Width(), g.Height()
	if !inBounds(w, h, from) || blocked(g, w, h, to.X, to.Y) {
		return nil
	}
	if from == to {
		return []Point{from}
	}

	nodes := make([]*Node, w*h)
	closed := make([]bool, w*h)

	start := &Node{P: from, H: p.opts.Heuristic(from, to)}
	start.F = start.H
	nodes[from.Y*w+from.X] = start
	open := []*Node{start}

	for len(open) > 0 {
		best := 0
		for i := 1; i < len(open); i++ {
			if p.opts.Less(open[i], open[best]) {
				best = i
			}
		}
		cur := open[best]
		if cur.P == to {
			return reconstructPath(cur)
		}
		open = append(open[:best], open[best+1:]...)
		closed[cur.P.Y*w+cur.P.X] = true

		for _, d := range p.opts.Directions {
			nx, ny := cur.P.X+d.X, cur.P.Y+d.Y
			if blocked(g, w, h, nx, ny) || closed[ny*w+nx] {
				continue
			}
			if d.X != 0 && d.Y != 0 && !p.opts.CornerCutting {
				if blocked(g, w, h, cur.P.X+d.X, cur.P.Y) || blocked(g, w, h, cur.P.X, cur.P.Y+d.Y) {
					continue
				}
			}
			tentG := cur.G + 1
			idx := ny*w + nx
			n := nodes[idx]
			if n == nil {
				np := Point{nx, ny}
				n = &Node{P: np, G: tentG, H: p.opts.Heuristic(np, to), parent: cur}
				n.F = n.G + n.H
				nodes[idx] = n
				open = append(open, n)
				continue
			}
			if tentG < n.G {
				n.G = tentG
				n.F = n.G + n.H
				n.parent = cur
			}
		}
	}
	return nil
}

func inBounds(w, h int, p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < w && p.Y < h
}

// blocked fails closed outside the grid.
func blocked(g Grid, w, h, x, y int) bool {
	if x < 0 || y < 0 || x >= w || y >= h {
		return true
	}
	return g.Blocked(x, y)
}

func reconstructPath(n *Node) []Point {
	var path []Point
	for ; n != nil; n = n.parent {
		path = append(path, n.P)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
