package grid

import (
	"math/rand"
	"reflect"
	"testing"

	"go-grid-defense/pkg/tilemap"
)

func testMap() *tilemap.Map {
	m := tilemap.NewMap(6, 4, nil, nil)
	m.Set(2, 1, tilemap.Obstacle)
	m.Set(3, 1, tilemap.Obstacle)
	return m
}

func TestOutOfBoundsIsOccupied(t *testing.T) {
	g := New(testMap())
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {6, 0}, {0, 4}, {100, 100}, {-5, 3}} {
		if !g.IsCellOccupied(c[0], c[1]) {
			t.Errorf("(%d,%d) should be occupied", c[0], c[1])
		}
	}
	if g.IsCellOccupied(0, 0) {
		t.Error("(0,0) should be free")
	}
}

func TestObstaclesAreOccupied(t *testing.T) {
	g := New(testMap())
	c, _ := g.Cell(2, 1)
	if !c.Occupied || !c.IsObstacle {
		t.Fatalf("expected obstacle cell, got %+v", c)
	}
	if g.CanPlaceFootprint(1, 0, 2, 2) {
		t.Fatal("footprint overlapping an obstacle should be rejected")
	}
	if g.CanPlaceFootprint(5, 3, 2, 2) {
		t.Fatal("footprint hanging off the grid should be rejected")
	}
	if !g.CanPlaceFootprint(0, 2, 2, 2) {
		t.Fatal("free footprint should be accepted")
	}
}

func TestReserveReleaseRoundTrip(t *testing.T) {
	m := tilemap.Generate(tilemap.Config{Cols: 16, Rows: 12, ObstacleDensity: 0.4}, rand.New(rand.NewSource(9)))
	g := New(m)
	before := append([]Cell(nil), g.cells...)

	placed := 0
	for y := 0; y < g.Rows()-1; y++ {
		for x := 0; x < g.Cols()-1; x++ {
			if !g.CanPlaceFootprint(x, y, 2, 2) {
				continue
			}
			g.Reserve(x, y, 2, 2, 7)
			if !g.IsCellOccupied(x+1, y+1) {
				t.Fatalf("reserved cell (%d,%d) not occupied", x+1, y+1)
			}
			if owner, ok := g.OwnerAt(x, y); !ok || owner != 7 {
				t.Fatalf("expected owner 7, got %d", owner)
			}
			g.Release(x, y, 2, 2)
			if !reflect.DeepEqual(before, g.cells) {
				t.Fatalf("round trip at (%d,%d) changed occupancy", x, y)
			}
			placed++
		}
	}
	if placed == 0 {
		t.Fatal("expected at least one free footprint")
	}
}

func TestReleaseLeavesObstacles(t *testing.T) {
	g := New(testMap())
	g.Release(0, 0, 6, 4)
	if !g.IsCellOccupied(2, 1) || !g.IsCellOccupied(3, 1) {
		t.Fatal("release must not clear terrain obstacles")
	}
}

func TestReserveOnlyTouchesFootprint(t *testing.T) {
	g := New(testMap())
	g.Reserve(4, 2, 2, 2, 3)
	occupied := 0
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			if owner, ok := g.OwnerAt(x, y); ok {
				if owner != 3 {
					t.Fatalf("unexpected owner %d", owner)
				}
				occupied++
			}
		}
	}
	if occupied != 4 {
		t.Fatalf("expected 4 owned cells, got %d", occupied)
	}
}

func TestCellConversions(t *testing.T) {
	col, row := CellOf(70, 33)
	if col != 2 || row != 1 {
		t.Fatalf("expected (2,1), got (%d,%d)", col, row)
	}
	px, py := CellCenter(2, 1)
	if px != 80 || py != 48 {
		t.Fatalf("expected (80,48), got (%.0f,%.0f)", px, py)
	}
	fx, fy := FootprintCenter(2, 1, 2)
	if fx != 96 || fy != 64 {
		t.Fatalf("expected (96,64), got (%.0f,%.0f)", fx, fy)
	}
	if c, r := CellOf(-1, -1); c != -1 || r != -1 {
		t.Fatalf("negative positions should floor, got (%d,%d)", c, r)
	}
}
