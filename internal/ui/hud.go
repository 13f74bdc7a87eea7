// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"go-circle-shooter/internal/config"
	"go-circle-shooter/internal/system"
	"go-circle-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// HUDData — то, что показывает индикатор в текущем кадре.
type HUDData struct {
	Frame   uint64
	Circles int
	Bullets int
	Stats   system.Stats
}

// HUD отображает счётчики в левом верхнем углу.
type HUD struct {
	X, Y       int
	Visible    bool
	TextColor  color.RGBA
	PanelColor color.RGBA
	face       font.Face
}

func NewHUD(x, y int, visible bool) *HUD {
	return &HUD{
		X:          x,
		Y:          y,
		Visible:    visible,
		TextColor:  config.HUDTextColor,
		PanelColor: config.HUDPanelColor,
		face:       basicfont.Face7x13,
	}
}

// Toggle переключает видимость индикатора.
func (h *HUD) Toggle() {
	h.Visible = !h.Visible
}

// Lines формирует строки индикатора.
func (h *HUD) Lines(data HUDData) []string {
	return []string{
		fmt.Sprintf("Frame:   %d", data.Frame),
		fmt.Sprintf("Circles: %d", data.Circles),
		fmt.Sprintf("Bullets: %d", data.Bullets),
		fmt.Sprintf("Hits:    %d/%d", data.Stats.Hits, data.Stats.Fired),
	}
}

// Draw отрисовывает индикатор
func (h *HUD) Draw(screen *ebiten.Image, data HUDData) {
	if !h.Visible {
		return
	}
	lines := h.Lines(data)

	width := 0
	for _, line := range lines {
		if w := text.BoundString(h.face, line).Dx(); w > width {
			width = w
		}
	}
	height := len(lines) * config.HUDLineSpacing

	// Подложка с тёмной рамкой
	vector.DrawFilledRect(screen, float32(h.X-5), float32(h.Y-5), float32(width+10), float32(height+6), render.DarkenColor(h.PanelColor), false)
	vector.DrawFilledRect(screen, float32(h.X-4), float32(h.Y-4), float32(width+8), float32(height+4), h.PanelColor, false)

	for i, line := range lines {
		text.Draw(screen, line, h.face, h.X, h.Y+(i+1)*config.HUDLineSpacing-4, h.TextColor)
	}
}
