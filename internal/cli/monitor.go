package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/rileyhilliard/systop/internal/config"
	"github.com/rileyhilliard/systop/internal/errors"
	"github.com/rileyhilliard/systop/internal/logger"
	"github.com/rileyhilliard/systop/internal/system"
	"github.com/rileyhilliard/systop/internal/tui"
)

// monitorCommand loads config, takes the first sample, and runs the
// dashboard until the user quits.
func monitorCommand(configPath, intervalOverride, sortOverride string, debug bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	if err := applyOverrides(cfg, intervalOverride, sortOverride, debug); err != nil {
		return err
	}

	if cfg.Debug {
		os.Setenv("SYSTOP_DEBUG", "1")
	}
	log := logger.Default()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New(errors.ErrTerm,
			"systop needs an interactive terminal",
			"Run it directly in a terminal, not through a pipe or redirect")
	}

	applyColorProfile(cfg.Output.Color)

	sampler := system.NewGopsutilSampler()

	// The first sample is fatal on failure: without it there is nothing
	// to show and no core count to size the histories.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	initial, err := sampler.Sample(ctx)
	cancel()
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrSample,
			"Failed to read initial system state",
			"Check that /proc is mounted and systop has permission to read it")
	}

	store := system.NewStore(initial, cfg.HistorySize)
	log.Debug("initial sample: %d cores, %d processes",
		len(initial.PerCoreCPU), len(initial.Processes))

	refreshCtx, stopRefresh := context.WithCancel(context.Background())
	defer stopRefresh()

	refresher := system.NewRefresher(sampler, store, cfg.Interval)
	go refresher.Run(refreshCtx)

	model := tui.NewModel(store, system.NewKillTerminator(),
		system.ParseSortOrder(cfg.Sort), cfg.Interval, cfg.Debug)

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return errors.Wrap(err, "Dashboard exited with an error")
	}

	return nil
}

// loadConfig resolves and loads the config file, falling back to
// defaults when none exists.
func loadConfig(explicit string) (*config.Config, error) {
	path, err := config.Find(explicit)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return config.DefaultConfig(), nil
	}
	return config.Load(path)
}

// applyOverrides layers command-line flags over the loaded config and
// re-validates the result.
func applyOverrides(cfg *config.Config, intervalOverride, sortOverride string, debug bool) error {
	if intervalOverride != "" {
		parsed, err := time.ParseDuration(intervalOverride)
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				fmt.Sprintf("Invalid interval: %s", intervalOverride),
				"Use a valid duration like 500ms, 1s, or 2s")
		}
		cfg.Interval = parsed
	}

	if sortOverride != "" {
		cfg.Sort = sortOverride
	}

	if debug {
		cfg.Debug = true
	}

	return config.Validate(cfg)
}

// applyColorProfile forces lipgloss rendering on or off per config.
// "auto" leaves detection to termenv.
func applyColorProfile(mode string) {
	switch mode {
	case "always":
		lipgloss.SetColorProfile(termenv.TrueColor)
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
