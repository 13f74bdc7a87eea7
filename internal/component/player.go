// internal/component/player.go
package component

// Player — квадрат, управляемый игроком. Существует в единственном экземпляре.
// Позиция не ограничена границами экрана.
type Player struct {
	Position
	Size      float64 // Длина стороны квадрата
	Speed     float64 // Смещение за кадр
	Direction Direction
}
