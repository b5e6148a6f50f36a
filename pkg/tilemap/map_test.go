package tilemap

import "testing"

func TestMapString(t *testing.T) {
	m := NewMap(4, 2, []Point{{X: 0, Y: 0}}, []Point{{X: 3, Y: 1}})
	m.Set(1, 0, Obstacle)
	m.Set(2, 1, Path)
	want := "S#..\n..*E\n"
	if got := m.String(); got != want {
		t.Fatalf("expected\n%s\ngot\n%s", want, got)
	}
}

func TestOutOfBoundsReadsAsObstacle(t *testing.T) {
	m := NewMap(3, 3, nil, nil)
	if m.At(-1, 0) != Obstacle || m.At(3, 1) != Obstacle {
		t.Fatal("cells outside the map should read as obstacles")
	}
	if !m.Blocked(0, 5) || m.Blocked(1, 1) {
		t.Fatal("unexpected Blocked result")
	}
	m.Set(7, 7, Obstacle)
	if m.ObstacleCount() != 0 {
		t.Fatalf("out of bounds Set should be ignored, got %d obstacles", m.ObstacleCount())
	}
}

func TestClone(t *testing.T) {
	m := NewMap(3, 3, []Point{{X: 0, Y: 1}}, []Point{{X: 2, Y: 1}})
	c := m.Clone()
	c.Set(1, 1, Obstacle)
	c.Starts[0] = Point{X: 0, Y: 0}
	if m.At(1, 1) != Floor {
		t.Error("clone shares tiles with the original")
	}
	if m.Starts[0] != (Point{X: 0, Y: 1}) {
		t.Error("clone shares starts with the original")
	}
	if !c.IsConnected(Point{X: 0, Y: 1}, c.Ends[0]) {
		t.Error("a centre obstacle on a 3x3 map still leaves a route round it")
	}
}
