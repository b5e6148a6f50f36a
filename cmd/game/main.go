// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"time"

	"go-grid-defense/internal/app"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	game           *app.Game
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return state.ScreenSize(a.game)
}

func main() {
	seed := flag.Int64("seed", 0, "session seed; 0 picks one from the clock")
	cols := flag.Int("cols", config.MapCols, "map width in cells")
	rows := flag.Int("rows", config.MapRows, "map height in cells")
	density := flag.Float64("density", config.ObstacleDensity, "obstacle density in [0, 0.9]; 0 for an open field")
	menu := flag.Bool("menu", false, "start on the map preview screen")
	flag.Parse()

	g := app.NewGame(app.Options{
		Cols:            *cols,
		Rows:            *rows,
		ObstacleDensity: *density,
		Seed:            *seed,
	})

	sm := state.NewStateMachine()
	if *menu {
		sm.SetState(state.NewMenuState(sm, g))
	} else {
		sm.SetState(state.NewGameState(sm, g))
	}
	a := &AppGame{
		stateMachine:   sm,
		game:           g,
		lastUpdateTime: time.Now(),
	}

	w, h := state.ScreenSize(g)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Grid Defense")
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
