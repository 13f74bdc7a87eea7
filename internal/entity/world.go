// internal/entity/world.go
package entity

import (
	"go-circle-shooter/internal/component"
	"go-circle-shooter/internal/config"
	"go-circle-shooter/internal/types"
	"go-circle-shooter/pkg/utils"
)

// World — всё изменяемое состояние игры. Принадлежит app.Game и
// передаётся системам по указателю.
type World struct {
	Width, Height float64
	Frame         uint64
	NextID        types.EntityID
	Player        *component.Player
	Circles       []*component.Circle // В порядке добавления
	Bullets       []*component.Bullet // В порядке добавления
}

// NewWorld создаёт мир с игроком в центре экрана, смотрящим вправо.
func NewWorld(cfg config.Config) *World {
	return &World{
		Width:  float64(cfg.Width),
		Height: float64(cfg.Height),
		NextID: 1,
		Player: &component.Player{
			Position: component.Position{
				X: float64(cfg.Width) / 2,
				Y: float64(cfg.Height) / 2,
			},
			Size:      cfg.Player.Size,
			Speed:     cfg.Player.Speed,
			Direction: component.Right,
		},
		Circles: make([]*component.Circle, 0, cfg.Circles.Count),
		Bullets: make([]*component.Bullet, 0),
	}
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// AddCircle добавляет круг и назначает ему ID.
func (w *World) AddCircle(c *component.Circle) *component.Circle {
	c.ID = w.NewEntity()
	w.Circles = append(w.Circles, c)
	return c
}

// AddBullet добавляет пулю и назначает ей ID.
func (w *World) AddBullet(b *component.Bullet) *component.Bullet {
	b.ID = w.NewEntity()
	w.Bullets = append(w.Bullets, b)
	return b
}

// InBounds сообщает, лежит ли точка в [0, Width] × [0, Height].
func (w *World) InBounds(x, y float64) bool {
	return utils.InRange(x, 0, w.Width) && utils.InRange(y, 0, w.Height)
}
