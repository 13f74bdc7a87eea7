// internal/system/projectile.go
package system

import (
	"go-circle-shooter/internal/component"
	"go-circle-shooter/internal/config"
	"go-circle-shooter/internal/entity"
	"go-circle-shooter/internal/event"
	"go-circle-shooter/pkg/utils"
)

// ProjectileSystem управляет движением пуль и попаданиями в круги
type ProjectileSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	cfg             config.BulletConfig
}

func NewProjectileSystem(world *entity.World, eventDispatcher *event.Dispatcher, cfg config.BulletConfig) *ProjectileSystem {
	return &ProjectileSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		cfg:             cfg,
	}
}

// Fire создаёт пулю в позиции игрока с его текущим направлением.
func (s *ProjectileSystem) Fire() *component.Bullet {
	player := s.world.Player
	bullet := s.world.AddBullet(&component.Bullet{
		Position:  player.Position,
		Direction: player.Direction,
	})
	s.eventDispatcher.Publish(event.Event{Type: event.BulletFired, Data: bullet})
	return bullet
}

// Update двигает пули, убирает вылетевшие за экран и разрешает попадания.
// Удаление выполняется после полного прохода (пометить и вымести),
// поэтому каждая сущность удаляется не более одного раза за кадр.
func (s *ProjectileSystem) Update() {
	bullets := s.world.Bullets
	circles := s.world.Circles
	if len(bullets) == 0 {
		return
	}

	deadBullets := make([]bool, len(bullets))
	deadCircles := make([]bool, len(circles))

	for i, b := range bullets {
		b.Advance(b.Direction, s.cfg.Speed)

		outOfBounds := !s.world.InBounds(b.X, b.Y)
		hit := false

		// Проверка попаданий не зависит от выхода за экран
		for j, c := range circles {
			if utils.Distance(b.X, b.Y, c.X, c.Y) >= c.Radius+s.cfg.Size {
				continue
			}
			hit = true
			if deadCircles[j] {
				continue
			}
			deadCircles[j] = true
			s.eventDispatcher.Publish(event.Event{
				Type: event.CircleDestroyed,
				Data: event.Hit{BulletID: b.ID, CircleID: c.ID, At: c.Position},
			})
		}

		if hit || outOfBounds {
			deadBullets[i] = true
		}
		if outOfBounds && !hit {
			s.eventDispatcher.Publish(event.Event{Type: event.BulletExpired, Data: b})
		}
	}

	s.world.Bullets = keep(bullets, deadBullets)
	s.world.Circles = keep(circles, deadCircles)
}

// keep возвращает элементы, не помеченные как удалённые, сохраняя порядок.
func keep[T any](items []T, dead []bool) []T {
	out := items[:0]
	for i, item := range items {
		if !dead[i] {
			out = append(out, item)
		}
	}
	// Обнуляем хвост, чтобы не держать ссылки на удалённые сущности
	var zero T
	for i := len(out); i < len(items); i++ {
		items[i] = zero
	}
	return out
}
