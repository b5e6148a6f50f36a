// internal/state/pause_state.go
package state

import (
	"image/color"

	"go-grid-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ State = (*PauseState)(nil)

// PauseState freezes the session and draws it dimmed.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{stateMachine: sm, previousState: prevState}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.Pop()
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	drawOverlay(screen, s.previousState, "PAUSED", "P to resume")
}

func (s *PauseState) Exit() {}

func drawOverlay(screen *ebiten.Image, gs *GameState, title, hint string) {
	w, h := ScreenSize(gs.game)
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.RGBA{0, 0, 0, 128}, false)
	gs.renderer.DrawCenteredText(screen, title, w/2, h/2-10, config.TextLightColor)
	gs.renderer.DrawCenteredText(screen, hint, w/2, h/2+10, config.TextLightColor)
}
