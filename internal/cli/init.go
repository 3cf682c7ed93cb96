package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rileyhilliard/systop/internal/config"
	"github.com/rileyhilliard/systop/internal/errors"
)

var initForce bool

// initCmd creates a new .systop.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .systop.yaml configuration",
	Long: `Initialize a new systop configuration file.

Creates a .systop.yaml file in the current directory, walking through
refresh interval, sort order, and color settings with interactive prompts.

Examples:
  systop init
  systop init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initForce)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite existing config without asking")
}

// configFile mirrors Config for YAML output, with the interval as a
// duration string instead of nanoseconds.
type configFile struct {
	Version     int                 `yaml:"version"`
	Interval    string              `yaml:"interval"`
	HistorySize int                 `yaml:"history_size"`
	Sort        string              `yaml:"sort"`
	Debug       bool                `yaml:"debug"`
	Output      config.OutputConfig `yaml:"output"`
}

// initCommand collects settings interactively and writes the config file.
func initCommand(force bool) error {
	configPath := filepath.Join(".", config.ConfigFileName)

	// Check for existing config
	if _, err := os.Stat(configPath); err == nil && !force {
		var overwrite bool

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}

		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	defaults := config.DefaultConfig()
	interval := defaults.Interval.String()
	sort := defaults.Sort
	color := defaults.Output.Color

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Refresh interval").
				Description("How often to sample the system (minimum 100ms)").
				Placeholder("1s").
				Value(&interval).
				Validate(func(s string) error {
					d, err := time.ParseDuration(s)
					if err != nil {
						return fmt.Errorf("not a duration - try 500ms, 1s, or 2s")
					}
					if d < config.MinInterval {
						return fmt.Errorf("minimum interval is %v", config.MinInterval)
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Initial sort order").
				Options(
					huh.NewOption("CPU usage", "cpu"),
					huh.NewOption("Memory usage", "memory"),
					huh.NewOption("PID", "pid"),
					huh.NewOption("Name", "name"),
				).
				Value(&sort),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color output").
				Options(
					huh.NewOption("Auto (disable when piped)", "auto"),
					huh.NewOption("Always", "always"),
					huh.NewOption("Never", "never"),
				).
				Value(&color),
		),
	)

	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Check terminal compatibility")
	}

	out := configFile{
		Version:     config.CurrentConfigVersion,
		Interval:    interval,
		HistorySize: defaults.HistorySize,
		Sort:        sort,
		Debug:       false,
		Output:      config.OutputConfig{Color: color},
	}

	data, err := yaml.Marshal(out)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}

	header := `# systop configuration
# Run 'systop' to start the dashboard
# See: https://github.com/rileyhilliard/systop for documentation

`
	if err := os.WriteFile(configPath, []byte(header+string(data)), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", configPath),
			"Check directory permissions")
	}

	fmt.Printf("Created %s\n\n", configPath)
	fmt.Println("Next steps:")
	fmt.Println("  systop          - Start the dashboard")
	fmt.Println("  systop version  - Show version info")

	return nil
}
