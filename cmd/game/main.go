// cmd/game/main.go
//
// shooter — аркада: квадрат игрока стреляет по отскакивающим кругам.
//
// Управление: стрелки меняют направление, левая кнопка мыши (или касание) — выстрел,
// F3 — показать/скрыть индикатор.
package main

import (
	"fmt"
	"os"

	"go-circle-shooter/internal/app"
	"go-circle-shooter/internal/config"
	"go-circle-shooter/internal/state"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
	flagTPS      int
)

// AppGame реализует ebiten.Game поверх машины состояний.
type AppGame struct {
	stateMachine *state.StateMachine
	width        int
	height       int
}

func (a *AppGame) Update() error {
	a.stateMachine.Update()
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

var rootCmd = &cobra.Command{
	Use:          "shooter",
	Short:        "Shoot the bouncing circles",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "path to a YAML config file")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.Flags().IntVar(&flagTPS, "tps", 0, "simulation ticks per second")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	if flagTPS != 0 {
		cfg.TPS = flagTPS
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}

	game, err := app.NewGame(cfg, logger)
	if err != nil {
		return err
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	sm.SetState(state.NewGameState(sm, game, logger))

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(cfg.TPS)

	logger.Info("starting", "tps", cfg.TPS, "config", flagConfig)
	err = ebiten.RunGame(&AppGame{stateMachine: sm, width: cfg.Width, height: cfg.Height})
	sm.SetState(nil)
	if err != nil {
		return fmt.Errorf("game loop stopped: %w", err)
	}
	return nil
}

func newLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "shooter",
		Level:           lvl,
	}), nil
}
