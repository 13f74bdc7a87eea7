package system

import (
	"go-circle-shooter/internal/event"
)

// Stats — счётчики текущей сессии для HUD.
type Stats struct {
	Spawned int
	Fired   int
	Hits    int
	Expired int
}

// StatsSystem подсчитывает события игры.
type StatsSystem struct {
	stats Stats
}

func NewStatsSystem(eventDispatcher *event.Dispatcher) *StatsSystem {
	s := &StatsSystem{}
	eventDispatcher.Subscribe(event.CircleSpawned, s)
	eventDispatcher.Subscribe(event.BulletFired, s)
	eventDispatcher.Subscribe(event.CircleDestroyed, s)
	eventDispatcher.Subscribe(event.BulletExpired, s)
	return s
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *StatsSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.CircleSpawned:
		s.stats.Spawned++
	case event.BulletFired:
		s.stats.Fired++
	case event.CircleDestroyed:
		s.stats.Hits++
	case event.BulletExpired:
		s.stats.Expired++
	}
}

func (s *StatsSystem) Stats() Stats {
	return s.stats
}
