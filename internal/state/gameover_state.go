// internal/state/gameover_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*GameOverState)(nil)

// GameOverState shows the final wave over the frozen field until the
// player restarts.
type GameOverState struct {
	stateMachine *StateMachine
	play         *GameState
}

func NewGameOverState(sm *StateMachine, play *GameState) *GameOverState {
	return &GameOverState{stateMachine: sm, play: play}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.play.restart()
		s.stateMachine.SetState(s.play)
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.play.Draw(screen)
	title := fmt.Sprintf("GAME OVER on wave %d", s.play.game.WaveNumber())
	drawOverlay(screen, s.play, title, "R to restart")
}

func (s *GameOverState) Exit() {}
