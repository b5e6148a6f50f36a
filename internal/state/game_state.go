// internal/state/game_state.go
package state

import (
	"image"
	"math"

	"go-grid-defense/internal/app"
	"go-grid-defense/internal/component"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/grid"
	"go-grid-defense/internal/ui"
	"go-grid-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState runs the simulation at a fixed tick and turns input into the
// game's commands.
type GameState struct {
	sm            *StateMachine
	game          *app.Game
	renderer      *render.GridRenderer
	toolbar       *ui.Toolbar
	waveIndicator *ui.WaveIndicator
	nextWave      *ui.Button
	showRanges    bool
	accumulator   float64 // milliseconds not yet simulated
}

func NewGameState(sm *StateMachine, g *app.Game) *GameState {
	renderer := render.NewGridRenderer(Colors())
	mapW, mapH := ScreenSize(g)
	mapH -= config.HUDHeight
	face := renderer.FontFace()
	return &GameState{
		sm:            sm,
		game:          g,
		renderer:      renderer,
		toolbar:       ui.NewToolbar(8, mapH+38, face),
		waveIndicator: ui.NewWaveIndicator(mapW-110, mapH+16, face),
		nextWave:      ui.NewButton(image.Rect(mapW-100, mapH+6, mapW-8, mapH+26), "Next wave", face),
	}
}

// ScreenSize is the window size needed for the session's map plus the HUD.
func ScreenSize(g *app.Game) (int, int) {
	w := int(float64(g.Map().Cols) * config.CellSize)
	h := int(float64(g.Map().Rows)*config.CellSize) + config.HUDHeight
	return w, h
}

// Colors builds the renderer palette from the configured colors.
func Colors() *render.MapColors {
	return &render.MapColors{
		BackgroundColor: config.BackgroundColor,
		FloorColor:      config.FloorColor,
		ObstacleColor:   config.ObstacleColor,
		StartColor:      config.StartColor,
		HomeColor:       config.HomeColor,
		GridLineColor:   config.GridLineColor,
		TextColor:       config.TextLightColor,
		HealthBarColor:  config.HealthBarColor,
		HealthBackColor: config.HealthBackColor,
		ProjectileColor: config.ProjectileColor,
		HitsColor:       config.HitsColor,
	}
}

func (s *GameState) Enter() {
	s.renderer.RenderMapImage(s.game.Map())
	s.accumulator = 0
}

func (s *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.restart()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.sm.Push(NewPauseState(s.sm, s))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		s.showRanges = !s.showRanges
	}
	s.toolbar.HandleKeys(inpututil.IsKeyJustPressed)

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || s.nextWave.IsClicked() {
		s.game.StartNextWave()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if col, row, ok := s.cursorCell(); ok {
			s.game.PlaceStructure(col, row, s.toolbar.SelectedID())
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		if col, row, ok := s.cursorCell(); ok {
			if id, found := s.game.StructureAt(col, row); found {
				s.game.RemoveStructure(id)
			}
		}
	}

	s.accumulator += math.Min(deltaTime, config.MaxDeltaTime) * 1000
	for n := 0; s.accumulator >= config.TickMillis && n < config.MaxTicksPerFrame; n++ {
		s.game.Update()
		s.accumulator -= config.TickMillis
	}
	if s.accumulator > config.TickMillis {
		s.accumulator = config.TickMillis
	}

	if s.game.IsGameOver() {
		s.sm.SetState(NewGameOverState(s.sm, s))
	}
}

func (s *GameState) restart() {
	s.game.Restart()
	s.renderer.RenderMapImage(s.game.Map())
	s.accumulator = 0
}

// cursorCell maps the cursor to a map cell, with the cursor taken as the
// top-left cell of the footprint.
func (s *GameState) cursorCell() (int, int, bool) {
	x, y := ebiten.CursorPosition()
	col, row := grid.CellOf(float64(x), float64(y))
	return col, row, s.game.Grid().InBounds(col, row)
}

func (s *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s.renderer.DrawMap(screen)
	if s.showRanges {
		s.renderer.DrawRanges(screen, s.game.World())
	}
	s.renderer.DrawStructures(screen, s.game.World())
	s.renderer.DrawUnits(screen, s.game.World())

	if col, row, ok := s.cursorCell(); ok {
		if def, err := defs.Structure(s.toolbar.SelectedID()); err == nil {
			s.renderer.DrawGhost(screen, col, row, def.Footprint, s.game.CanPlaceStructure(col, row, def.ID))
		}
	}
	s.drawHUD(screen)
}

func (s *GameState) drawHUD(screen *ebiten.Image) {
	_, h := ScreenSize(s.game)
	y := h - config.HUDHeight
	s.renderer.DrawHUD(screen, y, render.HUD{
		Scraps:   s.game.Scraps(),
		Lives:    s.game.Lives(),
		Wave:     s.game.WaveNumber(),
		Phase:    s.game.Phase(),
		Selected: s.toolbar.SelectedID(),
		Seed:     s.game.Seed(),
	})
	s.toolbar.Draw(screen)
	s.waveIndicator.Draw(screen, s.game.WaveNumber())
	if s.game.Phase() == component.PhaseIdle {
		s.nextWave.Draw(screen)
	}
}

func (s *GameState) Exit() {}

// Game exposes the session to the overlay states.
func (s *GameState) Game() *app.Game {
	return s.game
}
