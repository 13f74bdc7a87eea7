package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ebitenInput читает ввод текущего тика Ebiten.
type ebitenInput struct {
	keys    []ebiten.Key
	touches []ebiten.TouchID
}

// JustPressedKeys возвращает клавиши, нажатые в этом тике.
// Срез переиспользуется между кадрами.
func (in *ebitenInput) JustPressedKeys() []ebiten.Key {
	in.keys = inpututil.AppendJustPressedKeys(in.keys[:0])
	return in.keys
}

// PointerPresses считает нажатие левой кнопки мыши и новые касания.
func (in *ebitenInput) PointerPresses() int {
	n := 0
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		n++
	}
	in.touches = inpututil.AppendJustPressedTouchIDs(in.touches[:0])
	return n + len(in.touches)
}
