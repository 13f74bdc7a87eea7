// internal/system/movement.go
package system

import (
	"go-circle-shooter/internal/entity"
)

// MovementSystem двигает круги и отражает их от стен.
type MovementSystem struct {
	world *entity.World
}

func NewMovementSystem(world *entity.World) *MovementSystem {
	return &MovementSystem{world: world}
}

// Update сдвигает каждый круг на его скорость, после чего меняет знак
// компоненты скорости, если край круга вышел за соответствующую границу.
// Оси проверяются независимо, в углу могут сработать обе.
// Позиция не корректируется, быстрый круг может немного залететь за край.
func (s *MovementSystem) Update() {
	w, h := s.world.Width, s.world.Height
	for _, c := range s.world.Circles {
		c.X += float64(c.DX)
		c.Y += float64(c.DY)

		if c.X-c.Radius < 0 || c.X+c.Radius > w {
			c.DX = -c.DX
		}
		if c.Y-c.Radius < 0 || c.Y+c.Radius > h {
			c.DY = -c.DY
		}
	}
}
