// internal/system/render.go
package system

import (
	"go-circle-shooter/internal/config"
	"go-circle-shooter/internal/entity"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem рисует сущности. Состояние мира только читается.
type RenderSystem struct {
	world      *entity.World
	palette    config.Palette
	bulletSize float32
}

func NewRenderSystem(world *entity.World, palette config.Palette, bulletSize float64) *RenderSystem {
	return &RenderSystem{world: world, palette: palette, bulletSize: float32(bulletSize)}
}

// Draw очищает экран и рисует игрока, круги и пули именно в этом порядке.
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(s.palette.Background)

	// Игрок — квадрат с центром в его позиции
	p := s.world.Player
	half := float32(p.Size / 2)
	vector.DrawFilledRect(screen, float32(p.X)-half, float32(p.Y)-half, float32(p.Size), float32(p.Size), s.palette.Player, false)

	for _, c := range s.world.Circles {
		vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), float32(c.Radius), s.palette.Circle, true)
	}

	// Пуля рисуется от своей позиции как от левого верхнего угла
	for _, b := range s.world.Bullets {
		vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), s.bulletSize, s.bulletSize, s.palette.Bullet, false)
	}
}
