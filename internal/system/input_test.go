package system

import (
	"testing"

	"go-circle-shooter/internal/component"
	"go-circle-shooter/internal/config"
	"go-circle-shooter/internal/event"

	"github.com/hajimehoshi/ebiten/v2"
)

func newInputSystem(t *testing.T) (*InputSystem, *ProjectileSystem) {
	t.Helper()
	w := newTestWorld(t, 800, 600)
	projectiles := NewProjectileSystem(w, event.NewDispatcher(), config.Default().Bullets)
	return NewInputSystem(w, projectiles), projectiles
}

func TestArrowKeysSetDirection(t *testing.T) {
	tests := []struct {
		key      ebiten.Key
		expected component.Direction
	}{
		{ebiten.KeyArrowRight, component.Right},
		{ebiten.KeyArrowDown, component.Down},
		{ebiten.KeyArrowLeft, component.Left},
		{ebiten.KeyArrowUp, component.Up},
	}

	for _, tc := range tests {
		t.Run(tc.expected.String(), func(t *testing.T) {
			s, _ := newInputSystem(t)
			s.world.Player.Direction = component.Right
			if tc.expected == component.Right {
				s.world.Player.Direction = component.Up
			}
			s.Update(fakeInput{keys: []ebiten.Key{tc.key}})
			if s.world.Player.Direction != tc.expected {
				t.Errorf("direction = %v, expected %v", s.world.Player.Direction, tc.expected)
			}
		})
	}
}

func TestUnrecognizedKeysAreIgnored(t *testing.T) {
	s, _ := newInputSystem(t)
	s.world.Player.Direction = component.Down

	s.Update(fakeInput{keys: []ebiten.Key{ebiten.KeyW, ebiten.KeySpace, ebiten.KeyEnter}})

	if s.world.Player.Direction != component.Down {
		t.Errorf("direction changed to %v by non-arrow keys", s.world.Player.Direction)
	}
	if len(s.world.Bullets) != 0 {
		t.Error("keys must not fire bullets")
	}
}

func TestPointerPressFiresOneBulletPerEvent(t *testing.T) {
	s, _ := newInputSystem(t)
	s.world.Player.Direction = component.Left

	s.Update(fakeInput{presses: 1})
	s.Update(fakeInput{})
	s.Update(fakeInput{presses: 2})

	if len(s.world.Bullets) != 3 {
		t.Fatalf("have %d bullets, expected 3", len(s.world.Bullets))
	}
	for _, b := range s.world.Bullets {
		if b.Direction != component.Left || b.X != 400 || b.Y != 300 {
			t.Errorf("bullet %d at (%v, %v) dir %v, expected (400, 300) left", b.ID, b.X, b.Y, b.Direction)
		}
	}
}

func TestKeysApplyBeforeFiring(t *testing.T) {
	s, _ := newInputSystem(t)

	s.Update(fakeInput{keys: []ebiten.Key{ebiten.KeyArrowUp}, presses: 1})

	if len(s.world.Bullets) != 1 || s.world.Bullets[0].Direction != component.Up {
		t.Errorf("expected one bullet heading up, got %v", s.world.Bullets)
	}
}
