// internal/component/projectile.go
package component

import "go-circle-shooter/internal/types"

// Bullet представляет летящую пулю. Направление фиксируется в момент выстрела.
type Bullet struct {
	ID types.EntityID
	Position
	Direction Direction
}
