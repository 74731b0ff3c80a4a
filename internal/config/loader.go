package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config file locations relative to the home and working directories.
const (
	configFileName = "clf.yaml"
	userDirName    = ".clf"
)

// SourceEmbedded names the built-in configuration in LoadGame results.
const SourceEmbedded = "embedded"

// LoadGame loads the game configuration and reports where it came from.
// Search order: customPath -> ~/.clf/configs/clf.yaml -> ./configs/clf.yaml -> embedded default.
// Only a broken customPath is an error; the other candidates are skipped
// when missing or unparsable. Fields absent from a file keep their defaults.
func LoadGame(customPath string) (GameConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := readGameFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFileName); userCfgPath != "" {
		if cfg, err := readGameFile(userCfgPath); err == nil {
			return cfg, userCfgPath, nil
		}
	}

	// Try local configs directory
	localPath := filepath.Join("configs", configFileName)
	if cfg, err := readGameFile(localPath); err == nil {
		return cfg, localPath, nil
	}

	// Use embedded default YAML
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(defaultGameYAML, &cfg); err != nil {
		return DefaultGameConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// readGameFile parses one YAML file over the defaults and validates it.
func readGameFile(path string) (GameConfig, error) {
	cfg := DefaultGameConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg GameConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, userDirName, "configs", filename)
}

// userDataPath returns a file path directly under ~/.clf, or empty if home is unavailable.
func userDataPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, userDirName, filename)
}
