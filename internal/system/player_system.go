// internal/system/player_system.go
package system

import (
	"go-circle-shooter/internal/entity"
)

// PlayerSystem двигает игрока на Speed единиц за кадр по текущему направлению.
// Границы экрана не проверяются.
type PlayerSystem struct {
	world *entity.World
}

func NewPlayerSystem(world *entity.World) *PlayerSystem {
	return &PlayerSystem{world: world}
}

func (s *PlayerSystem) Update() {
	player := s.world.Player
	player.Advance(player.Direction, player.Speed)
}
