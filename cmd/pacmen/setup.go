package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pacmen/internal/config"
	"github.com/vovakirdan/pacmen/internal/core"
	"github.com/vovakirdan/pacmen/internal/sprite"
)

// loadConfig loads the configuration file and applies the global flags.
func loadConfig() (config.PacmenConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagInterval != "" {
		d, err := time.ParseDuration(flagInterval)
		if err != nil {
			return cfg, fmt.Errorf("invalid --interval: %w", err)
		}
		cfg.TickInterval = d
	}
	if flagCount >= 0 {
		cfg.InitialCount = flagCount
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger creates the program logger writing to w.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, nil
}

// openLogFile opens --log-file for appending, or returns a discarding
// writer when no file was given. The returned func closes the file.
func openLogFile() (io.Writer, func(), error) {
	if flagLogFile == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// newManager builds a manager from the configuration, with the --spawn
// overrides applied over the configured spawn defaults.
func newManager(cfg config.PacmenConfig, rt core.RuntimeConfig, surface sprite.Surface, logger *log.Logger) *sprite.Manager {
	defaults := cfg.SpawnOptions().Merge(config.ParseSpawnOptions(flagSpawn))

	m := sprite.NewManager(sprite.ManagerConfig{
		Surface:     surface,
		Viewport:    rt.Viewport(),
		Margin:      cfg.Sprite.Margin,
		SpeedFactor: cfg.Sprite.SpeedFactor,
		Scale:       cfg.Sprite.Scale,
		Defaults:    defaults,
		Seed:        rt.Seed,
		Logger:      logger,
	})

	for i := 0; i < cfg.InitialCount; i++ {
		m.SpawnRandom(nil)
	}
	return m
}

// runtimeConfig combines the configuration with a screen size.
func runtimeConfig(cfg config.PacmenConfig, width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:      width,
		ScreenH:      height,
		CellW:        cfg.Viewport.CellWidth,
		CellH:        cfg.Viewport.CellHeight,
		TickInterval: cfg.TickInterval,
		Seed:         flagSeed,
	}
}
