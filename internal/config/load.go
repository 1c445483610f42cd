package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	appDirName = "wec-replay"
	fileName   = "config.yaml"

	// EnvConfig names a config file when -config is not given.
	EnvConfig = "WECREPLAY_CONFIG"
)

// ErrInvalidConfig wraps every settings check that fails after loading.
var ErrInvalidConfig = errors.New("invalid config")

// Load builds the effective config: defaults, then the first config file
// found, then flags. The result is validated.
func Load() (*Config, error) {
	cfg := Default()

	if path := configSource(); path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// configSource picks the file to load. An explicit -config or
// WECREPLAY_CONFIG path is used even if it does not exist, so a typo fails
// loudly instead of silently falling back to defaults.
func configSource() string {
	if path := ConfigPath(); path != "" {
		return path
	}
	if path := os.Getenv(EnvConfig); path != "" {
		return path
	}
	return findConfigFile()
}

// validate rejects settings the loop cannot run with.
func (c *Config) validate() error {
	switch {
	case c.Window.MinWidth <= 0 || c.Window.MinHeight <= 0:
		return fmt.Errorf("window minimum size must be positive, got %dx%d", c.Window.MinWidth, c.Window.MinHeight)
	case c.Playback.IdleFrameInterval <= 0:
		return fmt.Errorf("playback.idle_frame_interval must be positive, got %v", c.Playback.IdleFrameInterval)
	case c.UI.FontMinPx <= 0 || c.UI.FontMinPx > c.UI.FontMaxPx:
		return fmt.Errorf("ui font range [%g, %g] is invalid", c.UI.FontMinPx, c.UI.FontMaxPx)
	}
	return nil
}

// findConfigFile returns the first existing config next to the datasets or
// in the user config dir.
func findConfigFile() string {
	for _, path := range []string{fileName, UserConfigPath()} {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// ConfigDir returns the per-user directory for replay settings. It falls
// back to the working directory when the OS reports none.
func ConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return appDirName
	}
	return filepath.Join(base, appDirName)
}

// UserConfigPath is where Save writes and where Load looks second.
func UserConfigPath() string {
	return filepath.Join(ConfigDir(), fileName)
}

// loadFromFile merges a YAML file over cfg. Unknown keys are rejected and an
// empty file leaves cfg unchanged.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parsing yaml: %w", err)
	}
	return nil
}
