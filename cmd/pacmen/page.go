package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pacmen/internal/core"
	"github.com/vovakirdan/pacmen/internal/platform/tui"
)

func runPage(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	w, closeLog, err := openLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	logger, err := newLogger(w, "pacmen")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size; the model corrects it on the first resize message.
	fallback := core.DefaultConfig()
	width, height := fallback.ScreenW, fallback.ScreenH
	if tw, th, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = tw
		height = th
	}

	rt := runtimeConfig(cfg, width, height)
	surface := tui.NewSurface(rt.CellW, rt.CellH)
	manager := newManager(cfg, rt, surface, logger)

	model := tui.NewModel(manager, surface, tui.Settings{
		Runtime:  rt,
		Controls: cfg.Controls,
		Logger:   logger,
	})

	if err := tui.Run(model); err != nil {
		logger.Error("program failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error running pacmen: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}
