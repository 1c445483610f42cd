// Package config handles replay configuration loading and management.
package config

import "time"

// Config holds all replay settings.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Playback PlaybackConfig `yaml:"playback"`
	UI       UIConfig       `yaml:"ui"`
	Capture  CaptureConfig  `yaml:"capture"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	MinWidth  int    `yaml:"min_width"`
	MinHeight int    `yaml:"min_height"`
	VSync     bool   `yaml:"vsync"`
}

// PlaybackConfig holds loop timing settings.
type PlaybackConfig struct {
	// IdleFrameInterval bounds the wait while paused or while a button
	// flash is running.
	IdleFrameInterval time.Duration `yaml:"idle_frame_interval"`
}

// UIConfig holds control panel spacing and font sizing.
type UIConfig struct {
	EdgeBorder    float64 `yaml:"edge_border"`
	ButtonSpacing float64 `yaml:"button_spacing"`
	ButtonPadding float64 `yaml:"button_padding"`
	FontMinPx     float64 `yaml:"font_min_px"`
	FontMaxPx     float64 `yaml:"font_max_px"`
}

// CaptureConfig holds screenshot output settings.
type CaptureConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:     "Buoy Simulation",
			Width:     400,
			Height:    540,
			MinWidth:  400,
			MinHeight: 360,
			VSync:     true,
		},
		Playback: PlaybackConfig{
			IdleFrameInterval: 16 * time.Millisecond,
		},
		UI: UIConfig{
			EdgeBorder:    10,
			ButtonSpacing: 5,
			ButtonPadding: 0.2,
			FontMinPx:     30,
			FontMaxPx:     55,
		},
		Capture: CaptureConfig{
			Dir:    "screenshots",
			Prefix: "wec",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// InitialSize returns the window size to open with. The width is widened
// so a rig of the given largest radius fits at scale 1.
func (c *Config) InitialSize(largestRadius float64) (int, int) {
	w := max(c.Window.Width, c.Window.MinWidth)
	h := max(c.Window.Height, c.Window.MinHeight)
	if fit := int(largestRadius * 8); fit > w {
		w = fit
	}
	return w, h
}
