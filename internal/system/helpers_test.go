package system

import (
	"io"
	"testing"

	"go-circle-shooter/internal/component"
	"go-circle-shooter/internal/config"
	"go-circle-shooter/internal/entity"
	"go-circle-shooter/internal/event"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

func newTestWorld(t *testing.T, width, height int) *entity.World {
	t.Helper()
	cfg := config.Default()
	cfg.Width = width
	cfg.Height = height
	return entity.NewWorld(cfg)
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

// recorder запоминает все доставленные события.
type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newRecorder(d *event.Dispatcher, types ...event.EventType) *recorder {
	r := &recorder{}
	for _, t := range types {
		d.Subscribe(t, r)
	}
	return r
}

// fakeInput — InputSource для тестов без окна.
type fakeInput struct {
	keys    []ebiten.Key
	presses int
}

func (f fakeInput) JustPressedKeys() []ebiten.Key { return f.keys }
func (f fakeInput) PointerPresses() int           { return f.presses }

func addCircle(w *entity.World, x, y float64, dx, dy int) *component.Circle {
	return w.AddCircle(&component.Circle{
		Position: component.Position{X: x, Y: y},
		Radius:   20,
		DX:       dx,
		DY:       dy,
	})
}

func addBullet(w *entity.World, x, y float64, dir component.Direction) *component.Bullet {
	return w.AddBullet(&component.Bullet{
		Position:  component.Position{X: x, Y: y},
		Direction: dir,
	})
}
