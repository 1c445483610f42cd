// Package main replays a wave energy converter simulation dataset as an
// animated 2D rig with playback, speed and scale controls.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"go.uber.org/zap"

	"github.com/Faultbox/wec-replay/internal/config"
	"github.com/Faultbox/wec-replay/internal/engine/capture"
	"github.com/Faultbox/wec-replay/internal/engine/ui2d"
	"github.com/Faultbox/wec-replay/internal/engine/window"
	"github.com/Faultbox/wec-replay/internal/game"
	"github.com/Faultbox/wec-replay/internal/game/ui"
	"github.com/Faultbox/wec-replay/internal/logger"
	"github.com/Faultbox/wec-replay/pkg/dataset"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	// Parse CLI flags
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	if config.SaveRequested() {
		path, err := cfg.Save()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: saving config: %v\n", err)
			os.Exit(1)
		}
		logger.Info("config saved", zap.String("path", path))
		logger.Sync()
		return
	}

	if err := run(cfg); err != nil {
		if errors.Is(err, config.ErrPickCanceled) {
			logger.Info("no dataset selected")
			logger.Sync()
			return
		}
		logger.Error("replay failed", zap.Error(err))
		logger.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Sync()
}

func run(cfg *config.Config) error {
	path, err := datasetPath()
	if err != nil {
		return err
	}

	data, err := dataset.Load(path)
	if err != nil {
		return err
	}
	if err := dataset.WriteReport(os.Stdout, filepath.Base(path), data.Summary); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	width, height := cfg.InitialSize(max(data.Physical.BuoyRadius, data.Physical.TubeRadius))

	win, err := window.New(window.Config{
		Title:     cfg.Window.Title,
		Width:     width,
		Height:    height,
		MinWidth:  cfg.Window.MinWidth,
		MinHeight: cfg.Window.MinHeight,
		VSync:     cfg.Window.VSync,
	})
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer func() {
		if err := win.Close(); err != nil {
			logger.Warn("window close", zap.Error(err))
		}
	}()

	// UI lays out in window points; the viewport covers the drawable.
	width, height = win.GetSize()

	renderer, err := ui2d.New(width, height)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	defer renderer.Close()

	shots := capture.NewScreenshots(cfg.Capture.Dir, cfg.Capture.Prefix)

	g, err := game.New(game.Config{
		Width:     width,
		Height:    height,
		MinWidth:  cfg.Window.MinWidth,
		MinHeight: cfg.Window.MinHeight,
		IdleFrame: cfg.Playback.IdleFrameInterval,
		Style: ui.Style{
			EdgeBorder:    cfg.UI.EdgeBorder,
			ButtonSpacing: cfg.UI.ButtonSpacing,
			ButtonPadding: cfg.UI.ButtonPadding,
		},
		FontMinPx: cfg.UI.FontMinPx,
		FontMaxPx: cfg.UI.FontMaxPx,
	}, data, NewGLDisplay(win, renderer, shots), window.NewEvents())
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	return g.Run()
}

// datasetPath resolves the dataset from the positional argument, the file
// dialog, or the demo default.
func datasetPath() (string, error) {
	args := config.Args()
	if len(args) == 0 && config.PickRequested() {
		return config.PickDataset()
	}
	return config.ResolveDataset(args, ".")
}
