package main

import (
	"testing"

	"go-grid-defense/pkg/tilemap"

	"github.com/gdamore/tcell/v2"
)

func newTestViewer(t *testing.T) (*viewer, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	screen.SetSize(80, 30)
	t.Cleanup(screen.Fini)
	v := newViewer(screen, tilemap.Config{Cols: 20, Rows: 10, ObstacleDensity: 0.3}, 5)
	return v, screen
}

func TestDrawShowsEndpoints(t *testing.T) {
	v, screen := newTestViewer(t)
	v.draw()
	for _, p := range v.m.Starts {
		if r, _, _, _ := screen.GetContent(p.X, p.Y); r != 'S' {
			t.Errorf("expected S at %v, got %q", p, r)
		}
	}
	for _, p := range v.m.Ends {
		if r, _, _, _ := screen.GetContent(p.X, p.Y); r != 'E' {
			t.Errorf("expected E at %v, got %q", p, r)
		}
	}
}

func TestKeys(t *testing.T) {
	v, _ := newTestViewer(t)
	if !v.handle(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone)) || v.seed != 6 {
		t.Fatalf("r should advance the seed, got %d", v.seed)
	}
	v.handle(tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModNone))
	if d := v.cfg.ObstacleDensity; d < 0.349 || d > 0.351 {
		t.Fatalf("expected density 0.35, got %v", d)
	}
	for i := 0; i < 30; i++ {
		v.handle(tcell.NewEventKey(tcell.KeyRune, '-', tcell.ModNone))
	}
	if v.cfg.ObstacleDensity != 0 {
		t.Fatalf("density should clamp at 0, got %v", v.cfg.ObstacleDensity)
	}
	if v.m.ObstacleCount() != 0 {
		t.Errorf("zero density produced %d obstacles", v.m.ObstacleCount())
	}
	if v.handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("q should quit")
	}
	if v.handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Esc should quit")
	}
}
