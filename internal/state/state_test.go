package state

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type recordingState struct {
	name string
	log  *[]string
}

func (s *recordingState) Enter()               { *s.log = append(*s.log, s.name+":enter") }
func (s *recordingState) Update()              { *s.log = append(*s.log, s.name+":update") }
func (s *recordingState) Draw(_ *ebiten.Image) { *s.log = append(*s.log, s.name+":draw") }
func (s *recordingState) Exit()                { *s.log = append(*s.log, s.name+":exit") }

func TestStateMachineTransitions(t *testing.T) {
	var calls []string
	sm := NewStateMachine()

	sm.Update()
	sm.Draw(nil)
	if len(calls) != 0 {
		t.Fatalf("empty machine produced calls: %v", calls)
	}

	a := &recordingState{name: "a", log: &calls}
	b := &recordingState{name: "b", log: &calls}
	sm.SetState(a)
	sm.Update()
	sm.Draw(nil)
	sm.SetState(b)
	sm.SetState(nil)

	want := []string{"a:enter", "a:update", "a:draw", "a:exit", "b:enter", "b:exit"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, expected %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("call %d = %q, expected %q", i, calls[i], want[i])
		}
	}
	if sm.Current() != nil {
		t.Error("Current() should be nil after SetState(nil)")
	}
}
