package component

import "go-circle-shooter/internal/types"

// Circle — отскакивающая от стен мишень.
type Circle struct {
	ID types.EntityID
	Position
	Radius float64
	DX, DY int // Скорость по осям, в единицах за кадр
}

// Stationary сообщает, что круг появился с нулевой скоростью.
func (c *Circle) Stationary() bool {
	return c.DX == 0 && c.DY == 0
}
