package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in each config directory.
const FileName = "racer.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.racer/configs/racer.yaml -> ./configs/racer.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides
// the keys it names. An explicit customPath must exist and parse; the
// other locations are skipped when missing or malformed.
func Load(customPath string) (RacerConfig, error) {
	cfg := DefaultRacerConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if c, ok := tryFile(userCfgPath); ok {
			return c, c.Validate()
		}
	}

	// Try local configs directory
	if c, ok := tryFile(filepath.Join("configs", FileName)); ok {
		return c, c.Validate()
	}

	// Use embedded default YAML
	embedded := DefaultRacerConfig()
	if err := yaml.Unmarshal(defaultRacerYAML, &embedded); err != nil {
		return DefaultRacerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, embedded.Validate()
}

func tryFile(path string) (RacerConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RacerConfig{}, false
	}
	cfg := DefaultRacerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RacerConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := UserDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}

// UserDir returns ~/.racer, or empty if home is unavailable.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".racer")
}
