// internal/event/types.go
package event

import (
	"go-circle-shooter/internal/component"
	"go-circle-shooter/internal/types"
)

const (
	CircleSpawned   EventType = "CircleSpawned"   // Data: *component.Circle
	CircleDestroyed EventType = "CircleDestroyed" // Data: Hit
	BulletFired     EventType = "BulletFired"     // Data: *component.Bullet
	BulletExpired   EventType = "BulletExpired"   // Data: *component.Bullet, пуля покинула экран
)

// Hit описывает попадание пули в круг.
type Hit struct {
	BulletID types.EntityID
	CircleID types.EntityID
	At       component.Position
}
