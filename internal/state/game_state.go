// internal/state/game_state.go
package state

import (
	"go-circle-shooter/internal/app"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState — состояние игры
type GameState struct {
	sm     *StateMachine
	game   *app.Game
	input  *ebitenInput
	logger *log.Logger
}

func NewGameState(sm *StateMachine, game *app.Game, logger *log.Logger) *GameState {
	return &GameState{
		sm:     sm,
		game:   game,
		input:  &ebitenInput{},
		logger: logger,
	}
}

func (g *GameState) Game() *app.Game {
	return g.game
}

func (g *GameState) Enter() {
	g.logger.Debug("entered game state")
}

// Update выполняет один шаг симуляции на каждый тик Ebiten.
// Шаг фиксированный, скорость игры зависит от частоты тиков.
func (g *GameState) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.game.HUD.Toggle()
	}
	g.game.Step(g.input)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.game.Draw(screen)
}

func (g *GameState) Exit() {
	stats := g.game.StatsSystem.Stats()
	g.logger.Info("leaving game state", "frame", g.game.World.Frame, "fired", stats.Fired, "hits", stats.Hits)
}
