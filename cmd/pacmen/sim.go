package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pacmen/internal/core"
	"github.com/vovakirdan/pacmen/internal/sprite"
)

var (
	flagTicks    int
	flagWidth    int
	flagHeight   int
	flagRealtime bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the sprites without a terminal page",
	Long: `Spawns --count sprites at random, advances them --ticks times and prints
their final state. The viewport is --width x --height cells.

With --realtime the ticks are driven by a timer at the configured interval
instead of as fast as possible; Ctrl+C stops early.

Examples:
  pacmen sim
  pacmen sim --ticks 500 --count 8 --seed 42
  pacmen sim --realtime --ticks 100 --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSimCmd,
}

func init() {
	defaults := core.DefaultConfig()
	simCmd.Flags().IntVar(&flagTicks, "ticks", 100, "Number of ticks to run")
	simCmd.Flags().IntVar(&flagWidth, "width", defaults.ScreenW, "Viewport width in cells")
	simCmd.Flags().IntVar(&flagHeight, "height", defaults.ScreenH, "Viewport height in cells")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Tick on a timer at the configured interval")
}

func runSimCmd(cmd *cobra.Command, _ []string) {
	if err := runSim(cmd); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runSim runs the headless simulation and prints the sprite table.
func runSim(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var logOut io.Writer = os.Stderr
	if flagLogFile != "" {
		w, closeLog, err := openLogFile()
		if err != nil {
			return err
		}
		defer closeLog()
		logOut = w
	}
	logger, err := newLogger(logOut, "pacmen-sim")
	if err != nil {
		return err
	}

	rt := runtimeConfig(cfg, flagWidth, flagHeight)
	manager := newManager(cfg, rt, sprite.NopSurface{}, logger)
	logger.Info("simulating", "sprites", manager.Len(), "ticks", flagTicks, "viewport", manager.Viewport())

	if flagRealtime {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		ctx, cancel := context.WithTimeout(ctx, time.Duration(flagTicks)*cfg.TickInterval)
		defer cancel()

		if err := manager.Run(ctx, cfg.TickInterval); err != nil && !errors.Is(err, context.DeadlineExceeded) {
			logger.Warn("stopped early", "error", err)
		}
	} else {
		for i := 0; i < flagTicks; i++ {
			if err := manager.Tick(); err != nil {
				logger.Error("tick failed", "tick", i, "error", err)
			}
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), spriteTable(manager.Sprites()))
	return nil
}

// spriteTable renders the sprite states as a bordered table.
func spriteTable(sprites []*sprite.PacMan) string {
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "ID", "Position", "Velocity", "Rotation", "Image", "Behavior").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	for i, s := range sprites {
		f := s.Frame()
		t.Row(
			strconv.Itoa(i+1),
			s.ID().String()[:8],
			fmt.Sprintf("(%.1f, %.1f)", s.Position.X, s.Position.Y),
			fmt.Sprintf("(%.1f, %.1f)", s.Velocity.X, s.Velocity.Y),
			fmt.Sprintf("%.0f°", f.Rotation*180/math.Pi),
			strconv.Itoa(f.Image),
			s.Behavior().String(),
		)
	}
	return t.String()
}
