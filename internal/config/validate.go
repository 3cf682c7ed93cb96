package config

import (
	"fmt"
	"time"

	"github.com/rileyhilliard/systop/internal/errors"
)

// MinInterval is the fastest refresh rate allowed. Sampling quicker than
// this costs more CPU than the numbers it produces are worth.
const MinInterval = 100 * time.Millisecond

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Config is nil",
			"This is unexpected - try reloading the configuration.")
	}

	// Check version
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but systop only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Grab the latest systop: https://github.com/rileyhilliard/systop/releases")
	}

	if cfg.Interval < MinInterval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Refresh interval %v is too fast - the minimum is %v", cfg.Interval, MinInterval),
			"Use something like '500ms', '1s', or '2s'.")
	}

	if cfg.HistorySize < 1 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("history_size needs to be at least 1 (got %d)", cfg.HistorySize),
			"The default of 60 keeps one minute of samples at a 1s interval.")
	}

	if err := validateSort(cfg.Sort); err != nil {
		return err
	}

	if err := validateOutput(cfg.Output); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(),
			"Check the 'output' section in your .systop.yaml.")
	}

	return nil
}

// validateSort checks the initial sort order name.
func validateSort(sort string) error {
	validSorts := map[string]bool{
		"cpu": true, "memory": true, "mem": true, "ram": true,
		"pid": true, "name": true, "": true,
	}
	if !validSorts[sort] {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("sort '%s' isn't valid - use 'cpu', 'memory', 'pid', or 'name'", sort),
			"Check the 'sort' key in your .systop.yaml.")
	}
	return nil
}

// validateOutput checks output configuration.
func validateOutput(out OutputConfig) error {
	validColors := map[string]bool{"auto": true, "always": true, "never": true, "": true}
	if !validColors[out.Color] {
		return fmt.Errorf("output.color '%s' isn't valid - use 'auto', 'always', or 'never'", out.Color)
	}
	return nil
}
