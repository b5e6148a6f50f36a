// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State is one screen of the windowed host.
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine holds the active screen plus any screens suspended beneath
// an overlay such as the pause screen.
type StateMachine struct {
	current   State
	suspended []State
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState exits the current state, drops any suspended ones and enters
// newState.
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.suspended = sm.suspended[:0]
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Push suspends the current state without exiting it and enters overlay.
func (sm *StateMachine) Push(overlay State) {
	if sm.current != nil {
		sm.suspended = append(sm.suspended, sm.current)
	}
	sm.current = overlay
	overlay.Enter()
}

// Pop exits the overlay and resumes the state beneath it. It reports false
// when nothing is suspended.
func (sm *StateMachine) Pop() bool {
	if len(sm.suspended) == 0 {
		return false
	}
	sm.current.Exit()
	last := len(sm.suspended) - 1
	sm.current = sm.suspended[last]
	sm.suspended = sm.suspended[:last]
	return true
}

func (sm *StateMachine) Current() State {
	return sm.current
}

func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
