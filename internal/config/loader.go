package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultYAML []byte

// LocalPath — файл конфигурации рядом с рабочей директорией.
const LocalPath = "configs/game.yaml"

// Load загружает конфигурацию игры.
// Порядок поиска: customPath -> ./configs/game.yaml -> встроенный YAML.
// Ошибка возвращается только если явно указанный файл не читается
// или итоговая конфигурация не проходит проверку.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if data, err := os.ReadFile(LocalPath); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // встроенный YAML сломан, берём значения из кода
	}
	return cfg, nil
}

// Parse разбирает YAML поверх значений по умолчанию и проверяет результат.
// Отсутствующие в файле поля сохраняют значения Default().
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
