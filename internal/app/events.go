package app

import (
	"go-circle-shooter/internal/component"
	"go-circle-shooter/internal/event"
)

// GameEventListener пишет игровые события в лог.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.CircleDestroyed:
		hit, ok := e.Data.(event.Hit)
		if !ok {
			return
		}
		l.game.logger.Debug("circle destroyed", "circle", hit.CircleID, "bullet", hit.BulletID, "x", hit.At.X, "y", hit.At.Y, "left", len(l.game.World.Circles))
		if l.game.Cleared() {
			l.game.logger.Info("all circles destroyed", "frame", l.game.World.Frame)
		}
	case event.BulletFired:
		if b, ok := e.Data.(*component.Bullet); ok {
			l.game.logger.Debug("bullet fired", "bullet", b.ID, "direction", b.Direction)
		}
	}
}
