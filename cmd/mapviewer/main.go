// cmd/mapviewer/main.go
package main

import (
	"flag"
	"fmt"
	"log"

	"go-grid-defense/internal/config"
	"go-grid-defense/internal/utils"
	"go-grid-defense/pkg/tilemap"
	pkgutils "go-grid-defense/pkg/utils"

	"github.com/gdamore/tcell/v2"
)

const densityStep = 0.05

// viewer shows generated maps in a terminal.
type viewer struct {
	screen tcell.Screen
	cfg    tilemap.Config
	seed   int64
	m      *tilemap.Map
}

func newViewer(screen tcell.Screen, cfg tilemap.Config, seed int64) *viewer {
	v := &viewer{screen: screen, cfg: cfg, seed: seed}
	v.generate()
	return v
}

func (v *viewer) generate() {
	rng := utils.NewPRNGService(v.seed)
	v.seed = rng.Seed()
	v.m = tilemap.Generate(v.cfg, rng)
}

func (v *viewer) next() {
	v.seed++
	v.generate()
}

func (v *viewer) adjustDensity(delta float64) {
	v.cfg.ObstacleDensity = pkgutils.ClampFloat(v.cfg.ObstacleDensity+delta, 0, 0.9)
	v.generate()
}

var (
	floorStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	obstacleStyle = tcell.StyleDefault.Foreground(tcell.ColorMaroon)
	startStyle    = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	endStyle      = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	textStyle     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

func (v *viewer) draw() {
	v.screen.Clear()
	for y, line := range splitLines(v.m.String()) {
		for x, ch := range line {
			style := floorStyle
			switch ch {
			case '#':
				ch = '█'
				style = obstacleStyle
			case 'S':
				style = startStyle
			case 'E':
				style = endStyle
			}
			v.screen.SetContent(x, y, ch, nil, style)
		}
	}
	status := fmt.Sprintf("seed %d  density %.2f  connected %v  attempts %d  obstacles %d",
		v.seed, v.cfg.ObstacleDensity, v.m.Connected, v.m.Attempts, v.m.ObstacleCount())
	v.drawText(0, v.m.Rows+1, status)
	v.drawText(0, v.m.Rows+2, "r: next seed  +/-: density  q/Esc: quit")
	v.screen.Show()
}

func (v *viewer) drawText(x, y int, s string) {
	for i, ch := range s {
		v.screen.SetContent(x+i, y, ch, nil, textStyle)
	}
}

func splitLines(s string) [][]rune {
	var lines [][]rune
	var cur []rune
	for _, ch := range s {
		if ch == '\n' {
			lines = append(lines, cur)
			cur = nil
			continue
		}
		cur = append(cur, ch)
	}
	if len(cur) > 0 {
		lines = append(lines, cur)
	}
	return lines
}

// handle reacts to one event and reports whether the viewer keeps running.
func (v *viewer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case 'r':
				v.next()
			case '+', '=':
				v.adjustDensity(densityStep)
			case '-':
				v.adjustDensity(-densityStep)
			}
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	v.draw()
	return true
}

func main() {
	seed := flag.Int64("seed", 0, "first seed; 0 picks one from the clock")
	cols := flag.Int("cols", config.MapCols, "map width in cells")
	rows := flag.Int("rows", config.MapRows, "map height in cells")
	density := flag.Float64("density", config.ObstacleDensity, "obstacle density in [0, 0.9]")
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init screen: %v", err)
	}
	defer screen.Fini()

	v := newViewer(screen, tilemap.Config{
		Cols:            *cols,
		Rows:            *rows,
		ObstacleDensity: *density,
		MaxAttempts:     config.MaxMapAttempts,
	}, *seed)
	v.draw()
	for v.handle(screen.PollEvent()) {
	}
}
