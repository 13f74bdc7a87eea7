// internal/system/spawn.go
package system

import (
	"go-circle-shooter/internal/component"
	"go-circle-shooter/internal/config"
	"go-circle-shooter/internal/entity"
	"go-circle-shooter/internal/event"
	"go-circle-shooter/internal/utils"

	"github.com/charmbracelet/log"
)

// SpawnSystem создаёт круги в случайных позициях со случайной скоростью.
type SpawnSystem struct {
	world           *entity.World
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	logger          *log.Logger
	cfg             config.CircleConfig
}

func NewSpawnSystem(world *entity.World, rng *utils.PRNGService, eventDispatcher *event.Dispatcher, logger *log.Logger, cfg config.CircleConfig) *SpawnSystem {
	return &SpawnSystem{
		world:           world,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		logger:          logger,
		cfg:             cfg,
	}
}

// SpawnInitial создаёт стартовый набор кругов. Повторно круги не появляются.
func (s *SpawnSystem) SpawnInitial() {
	for i := 0; i < s.cfg.Count; i++ {
		s.CreateCircle()
	}
}

// CreateCircle добавляет в мир ровно один круг.
// Позиция выбирается в [r, W-r] × [r, H-r], чтобы круг целиком был на экране,
// каждая компонента скорости — в [-max, max].
func (s *SpawnSystem) CreateCircle() *component.Circle {
	r := int(s.cfg.Radius)
	circle := s.world.AddCircle(&component.Circle{
		Position: component.Position{
			X: float64(s.rng.IntRange(r, int(s.world.Width)-r)),
			Y: float64(s.rng.IntRange(r, int(s.world.Height)-r)),
		},
		Radius: s.cfg.Radius,
		DX:     s.rng.IntRange(-s.cfg.MaxVelocity, s.cfg.MaxVelocity),
		DY:     s.rng.IntRange(-s.cfg.MaxVelocity, s.cfg.MaxVelocity),
	})

	// Нулевая скорость допустима: такой круг просто стоит на месте
	if circle.Stationary() {
		s.logger.Warn("spawned stationary circle", "id", circle.ID, "x", circle.X, "y", circle.Y)
	} else {
		s.logger.Debug("spawned circle", "id", circle.ID, "x", circle.X, "y", circle.Y, "dx", circle.DX, "dy", circle.DY)
	}
	s.eventDispatcher.Publish(event.Event{Type: event.CircleSpawned, Data: circle})
	return circle
}
