// Package config persists the showcase application settings.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/tsukinoko-kun/listkit/internal/models"
)

const appName = "listkit"

// Settings represents the application settings.
type Settings struct {
	Source     models.Source `json:"source" validate:"oneof=demo file docker"`
	TreeFile   string        `json:"tree_file,omitempty" validate:"required_if=Source file"`
	DockerHost string        `json:"docker_host,omitempty"`
	LogLevel   string        `json:"log_level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
	// NestingDepth overrides the indent of nested items, in dp.
	NestingDepth float32 `json:"nesting_depth,omitempty" validate:"gte=0"`
	WindowWidth  int     `json:"window_width" validate:"gte=320"`
	WindowHeight int     `json:"window_height" validate:"gte=240"`

	path string
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// Default returns the settings used when no config file exists.
func Default() *Settings {
	return &Settings{
		Source:       models.SourceDemo,
		LogLevel:     "info",
		WindowWidth:  480,
		WindowHeight: 720,
	}
}

// DefaultPath returns the path of the config file in the user config directory.
func DefaultPath() (string, error) {
	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(userConfigDir, appName, "config.json"), nil
}

// Load reads the settings from path. If the file doesn't exist, the default
// settings are written there and returned.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			settings := Default()
			settings.path = path
			if saveErr := settings.Save(); saveErr != nil {
				return nil, saveErr
			}
			return settings, nil
		}
		return nil, err
	}

	settings := Default()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	settings.path = path

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings in %s: %w", path, err)
	}
	return settings, nil
}

// Validate checks the settings.
func (s *Settings) Validate() error {
	return validatorInstance().Struct(s)
}

// Path returns the file the settings are saved to.
func (s *Settings) Path() string {
	return s.path
}

// Save writes the settings to their config file.
func (s *Settings) Save() error {
	if s.path == "" {
		return errors.New("settings have no path")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0o644)
}
