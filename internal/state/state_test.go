package state

import (
	"reflect"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type recordingState struct {
	name string
	log  *[]string
}

func (s *recordingState) Enter()             { *s.log = append(*s.log, "enter "+s.name) }
func (s *recordingState) Update(float64)     { *s.log = append(*s.log, "update "+s.name) }
func (s *recordingState) Draw(*ebiten.Image) {}
func (s *recordingState) Exit()              { *s.log = append(*s.log, "exit "+s.name) }

func TestStateMachineTransitions(t *testing.T) {
	var log []string
	a := &recordingState{name: "a", log: &log}
	b := &recordingState{name: "b", log: &log}

	sm := NewStateMachine()
	sm.Update(0.016)
	sm.SetState(a)
	sm.Update(0.016)
	sm.SetState(b)
	sm.Update(0.016)

	want := []string{"enter a", "update a", "exit a", "enter b", "update b"}
	if !reflect.DeepEqual(log, want) {
		t.Fatalf("expected %v, got %v", want, log)
	}
	if sm.Current() != b {
		t.Fatal("expected b to be current")
	}
}

func TestPushPopResumesWithoutReentering(t *testing.T) {
	var log []string
	play := &recordingState{name: "play", log: &log}
	pause := &recordingState{name: "pause", log: &log}

	sm := NewStateMachine()
	sm.SetState(play)
	sm.Push(pause)
	sm.Update(0.016)
	if !sm.Pop() {
		t.Fatal("expected pop to resume the suspended state")
	}
	sm.Update(0.016)
	if sm.Pop() {
		t.Fatal("expected pop with nothing suspended to fail")
	}

	want := []string{"enter play", "enter pause", "update pause", "exit pause", "update play"}
	if !reflect.DeepEqual(log, want) {
		t.Fatalf("expected %v, got %v", want, log)
	}
	if sm.Current() != play {
		t.Fatal("expected play to be current")
	}
}

func TestSetStateDropsSuspended(t *testing.T) {
	var log []string
	play := &recordingState{name: "play", log: &log}
	pause := &recordingState{name: "pause", log: &log}
	over := &recordingState{name: "over", log: &log}

	sm := NewStateMachine()
	sm.SetState(play)
	sm.Push(pause)
	sm.SetState(over)
	if sm.Pop() {
		t.Fatal("expected no suspended state after SetState")
	}
	if sm.Current() != over {
		t.Fatal("expected over to be current")
	}
}
