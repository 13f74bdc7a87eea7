// internal/config/config.go
package config

import (
	"fmt"
	"image/color"

	"go-circle-shooter/pkg/render"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	DefaultTPS   = 60

	PlayerSize  = 20.0
	PlayerSpeed = 5.0

	CircleRadius      = 20.0
	CircleCount       = 5
	CircleMaxVelocity = 3

	BulletSize  = 5.0
	BulletSpeed = 7.0 // единиц за кадр

	HUDOffsetX     = 10
	HUDOffsetY     = 10
	HUDLineSpacing = 16
)

var (
	HUDTextColor  = color.RGBA{20, 20, 30, 255}
	HUDPanelColor = color.RGBA{240, 240, 240, 200}
)

// Config — настройки игры, загружаемые из YAML.
type Config struct {
	Title    string `yaml:"title"`
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	TPS      int    `yaml:"tps"`
	Seed     int64  `yaml:"seed"`
	LogLevel string `yaml:"log_level"`
	ShowHUD  bool   `yaml:"show_hud"`

	Player  PlayerConfig `yaml:"player"`
	Circles CircleConfig `yaml:"circles"`
	Bullets BulletConfig `yaml:"bullets"`
	Colors  ColorsConfig `yaml:"colors"`
}

type PlayerConfig struct {
	Size  float64 `yaml:"size"`
	Speed float64 `yaml:"speed"`
}

type CircleConfig struct {
	Count       int     `yaml:"count"`
	Radius      float64 `yaml:"radius"`
	MaxVelocity int     `yaml:"max_velocity"`
}

type BulletConfig struct {
	Size  float64 `yaml:"size"`
	Speed float64 `yaml:"speed"`
}

// ColorsConfig хранит цвета в виде "#rrggbb".
type ColorsConfig struct {
	Background string `yaml:"background"`
	Player     string `yaml:"player"`
	Circle     string `yaml:"circle"`
	Bullet     string `yaml:"bullet"`
}

// Palette — разобранные цвета для рендерера.
type Palette struct {
	Background color.RGBA
	Player     color.RGBA
	Circle     color.RGBA
	Bullet     color.RGBA
}

// Default возвращает жёстко заданную конфигурацию.
// Используется, если встроенный YAML не удалось разобрать.
func Default() Config {
	return Config{
		Title:    "Circle Shooter",
		Width:    ScreenWidth,
		Height:   ScreenHeight,
		TPS:      DefaultTPS,
		LogLevel: "info",
		ShowHUD:  true,
		Player: PlayerConfig{
			Size:  PlayerSize,
			Speed: PlayerSpeed,
		},
		Circles: CircleConfig{
			Count:       CircleCount,
			Radius:      CircleRadius,
			MaxVelocity: CircleMaxVelocity,
		},
		Bullets: BulletConfig{
			Size:  BulletSize,
			Speed: BulletSpeed,
		},
		Colors: ColorsConfig{
			Background: "#ffffff",
			Player:     "#3498db",
			Circle:     "#e74c3c",
			Bullet:     "#2ecc71",
		},
	}
}

// Validate проверяет, что конфигурация пригодна для запуска.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid screen size %dx%d", c.Width, c.Height)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	if c.Player.Size <= 0 || c.Player.Speed <= 0 {
		return fmt.Errorf("player size and speed must be positive")
	}
	if c.Bullets.Size <= 0 || c.Bullets.Speed <= 0 {
		return fmt.Errorf("bullet size and speed must be positive")
	}
	if c.Circles.Count < 0 || c.Circles.MaxVelocity < 0 {
		return fmt.Errorf("circle count and max velocity must not be negative")
	}
	if c.Circles.Radius <= 0 {
		return fmt.Errorf("circle radius must be positive")
	}
	// Круг должен целиком помещаться на экране при появлении
	if 2*c.Circles.Radius > float64(c.Width) || 2*c.Circles.Radius > float64(c.Height) {
		return fmt.Errorf("circle radius %.0f does not fit a %dx%d screen", c.Circles.Radius, c.Width, c.Height)
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	return nil
}

// Palette разбирает цвета конфигурации.
func (c Config) Palette() (Palette, error) {
	var p Palette
	var err error
	if p.Background, err = render.ParseHex(c.Colors.Background); err != nil {
		return p, fmt.Errorf("background color: %w", err)
	}
	if p.Player, err = render.ParseHex(c.Colors.Player); err != nil {
		return p, fmt.Errorf("player color: %w", err)
	}
	if p.Circle, err = render.ParseHex(c.Colors.Circle); err != nil {
		return p, fmt.Errorf("circle color: %w", err)
	}
	if p.Bullet, err = render.ParseHex(c.Colors.Bullet); err != nil {
		return p, fmt.Errorf("bullet color: %w", err)
	}
	return p, nil
}
