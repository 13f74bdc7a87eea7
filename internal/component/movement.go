// component/movement.go
package component

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// Direction — направление движения игрока и пуль
type Direction int

const (
	Right Direction = iota
	Down
	Left
	Up
)

// Vector возвращает единичный шаг по оси, соответствующей направлению.
func (d Direction) Vector() (dx, dy float64) {
	switch d {
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Up:
		return 0, -1
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	case Up:
		return "up"
	}
	return "unknown"
}

// Advance сдвигает позицию на step единиц в направлении dir.
func (p *Position) Advance(dir Direction, step float64) {
	dx, dy := dir.Vector()
	p.X += dx * step
	p.Y += dy * step
}
