// internal/app/game.go
package app

import (
	"fmt"

	"go-circle-shooter/internal/config"
	"go-circle-shooter/internal/entity"
	"go-circle-shooter/internal/event"
	"go-circle-shooter/internal/system"
	"go-circle-shooter/internal/ui"
	"go-circle-shooter/internal/utils"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// Game holds the main game state and logic.
type Game struct {
	Config           config.Config
	World            *entity.World
	InputSystem      *system.InputSystem
	PlayerSystem     *system.PlayerSystem
	MovementSystem   *system.MovementSystem
	ProjectileSystem *system.ProjectileSystem
	SpawnSystem      *system.SpawnSystem
	StatsSystem      *system.StatsSystem
	RenderSystem     *system.RenderSystem
	EventDispatcher  *event.Dispatcher
	HUD              *ui.HUD
	Rng              *utils.PRNGService
	logger           *log.Logger
}

// NewGame initializes a new game instance and spawns the initial circles.
func NewGame(cfg config.Config, logger *log.Logger) (*Game, error) {
	palette, err := cfg.Palette()
	if err != nil {
		return nil, fmt.Errorf("failed to build palette: %w", err)
	}

	world := entity.NewWorld(cfg)
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(cfg.Seed)

	g := &Game{
		Config:          cfg,
		World:           world,
		PlayerSystem:    system.NewPlayerSystem(world),
		MovementSystem:  system.NewMovementSystem(world),
		StatsSystem:     system.NewStatsSystem(eventDispatcher),
		RenderSystem:    system.NewRenderSystem(world, palette, cfg.Bullets.Size),
		EventDispatcher: eventDispatcher,
		HUD:             ui.NewHUD(config.HUDOffsetX, config.HUDOffsetY, cfg.ShowHUD),
		Rng:             rng,
		logger:          logger,
	}
	g.ProjectileSystem = system.NewProjectileSystem(world, eventDispatcher, cfg.Bullets)
	g.InputSystem = system.NewInputSystem(world, g.ProjectileSystem)
	g.SpawnSystem = system.NewSpawnSystem(world, rng, eventDispatcher, logger, cfg.Circles)

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.CircleDestroyed, listener)
	eventDispatcher.Subscribe(event.BulletFired, listener)

	g.SpawnSystem.SpawnInitial()
	eventDispatcher.Flush()

	logger.Info("game created", "seed", rng.Seed(), "circles", len(world.Circles), "width", cfg.Width, "height", cfg.Height)
	return g, nil
}

// Step выполняет один кадр симуляции без отрисовки:
// ввод, игрок, круги, пули с попаданиями, затем доставка событий.
func (g *Game) Step(input system.InputSource) {
	g.InputSystem.Update(input)
	g.PlayerSystem.Update()
	g.MovementSystem.Update()
	g.ProjectileSystem.Update()
	g.World.Frame++
	g.EventDispatcher.Flush()
}

// Draw рисует текущее состояние мира. Состояние не изменяется.
func (g *Game) Draw(screen *ebiten.Image) {
	g.RenderSystem.Draw(screen)
	g.HUD.Draw(screen, g.HUDData())
}

func (g *Game) HUDData() ui.HUDData {
	return ui.HUDData{
		Frame:   g.World.Frame,
		Circles: len(g.World.Circles),
		Bullets: len(g.World.Bullets),
		Stats:   g.StatsSystem.Stats(),
	}
}

// Cleared сообщает, что все круги уничтожены.
func (g *Game) Cleared() bool {
	return len(g.World.Circles) == 0
}
