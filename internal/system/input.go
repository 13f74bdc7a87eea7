package system

import (
	"go-circle-shooter/internal/component"
	"go-circle-shooter/internal/entity"

	"github.com/hajimehoshi/ebiten/v2"
)

// InputSource — события ввода, накопленные хостом за кадр.
type InputSource interface {
	// JustPressedKeys возвращает клавиши, нажатые в этом кадре.
	JustPressedKeys() []ebiten.Key
	// PointerPresses возвращает число нажатий указателя (мышь или касание) в этом кадре.
	PointerPresses() int
}

// Firer создаёт пулю от имени игрока.
type Firer interface {
	Fire() *component.Bullet
}

var arrowDirections = map[ebiten.Key]component.Direction{
	ebiten.KeyArrowRight: component.Right,
	ebiten.KeyArrowDown:  component.Down,
	ebiten.KeyArrowLeft:  component.Left,
	ebiten.KeyArrowUp:    component.Up,
}

// InputSystem переводит нажатия стрелок в направление игрока,
// а нажатия указателя в выстрелы.
type InputSystem struct {
	world *entity.World
	firer Firer
}

func NewInputSystem(world *entity.World, firer Firer) *InputSystem {
	return &InputSystem{world: world, firer: firer}
}

// DirectionForKey возвращает направление для стрелки.
func DirectionForKey(key ebiten.Key) (component.Direction, bool) {
	dir, ok := arrowDirections[key]
	return dir, ok
}

// Update применяет ввод кадра. Клавиши обрабатываются до выстрелов,
// так что пуля летит в направлении, выбранном в этом же кадре.
func (s *InputSystem) Update(src InputSource) {
	for _, key := range src.JustPressedKeys() {
		if dir, ok := DirectionForKey(key); ok {
			s.world.Player.Direction = dir
		}
		// Остальные клавиши игнорируются
	}

	for i := src.PointerPresses(); i > 0; i-- {
		s.firer.Fire()
	}
}
