// internal/state/menu_state.go
package state

import (
	"go-grid-defense/internal/app"
	"go-grid-defense/internal/config"
	"go-grid-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState previews the generated map until the player starts.
type MenuState struct {
	sm       *StateMachine
	game     *app.Game
	renderer *render.GridRenderer
}

func NewMenuState(sm *StateMachine, g *app.Game) *MenuState {
	return &MenuState{sm: sm, game: g, renderer: render.NewGridRenderer(Colors())}
}

func (m *MenuState) Enter() {
	m.renderer.RenderMapImage(m.game.Map())
}

func (m *MenuState) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace), inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		m.sm.SetState(NewGameState(m.sm, m.game))
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		m.game.Restart()
		m.renderer.RenderMapImage(m.game.Map())
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	m.renderer.DrawMap(screen)
	w, h := ScreenSize(m.game)
	m.renderer.DrawCenteredText(screen, "Space to start, R for another map", w/2, h-config.HUDHeight/2, config.TextLightColor)
}

func (m *MenuState) Exit() {}
