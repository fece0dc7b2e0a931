package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the user and local directories.
const FileName = "basket.yaml"

// SourceEmbedded is reported when no file overrides the built-in defaults.
const SourceEmbedded = "embedded"

// Load loads the game configuration and reports where it came from.
// Search order: customPath -> ~/.basket/configs/basket.yaml -> ./configs/basket.yaml -> embedded default.
// A custom path that cannot be read or parsed is an error; the other
// locations are skipped when missing or malformed.
func Load(customPath string) (BasketConfig, string, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, customPath, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	candidates := []string{
		userConfigPath(FileName),
		filepath.Join("configs", FileName),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		cfg, err := loadFile(path)
		if err != nil {
			continue
		}
		if cfg.Validate() == nil {
			return cfg, path, nil
		}
	}

	cfg, err := Parse(defaultBasketYAML)
	if err != nil {
		return DefaultBasketConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// Parse decodes YAML on top of the built-in defaults, so a file only
// needs the keys it changes.
func Parse(data []byte) (BasketConfig, error) {
	cfg := DefaultBasketConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: cannot parse yaml: %w", err)
	}
	return cfg, nil
}

func loadFile(path string) (BasketConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return BasketConfig{}, fmt.Errorf("config: %s not found: %w", path, err)
		}
		return BasketConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg := DefaultBasketConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".basket", "configs", filename)
}
