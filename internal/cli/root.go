package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Persistent and root command flags
var (
	configFlag   string
	debugFlag    bool
	intervalFlag string
	sortFlag     string
)

// rootCmd runs the dashboard when invoked without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "systop",
	Short: "Terminal system monitor",
	Long: `systop is a top-like terminal dashboard for the local machine.

It shows per-core CPU usage, memory, and a sortable process table,
refreshed on a fixed interval with a minute of history per metric.

Keyboard shortcuts:
  q / Ctrl+C  Quit
  up/k down/j Select process
  c m p n     Sort by CPU / memory / PID / name
  K           Kill selected process (SIGKILL)
  Enter       Expand selected process
  Esc         Collapse / go back
  ?           Show help

Examples:
  systop
  systop --interval 2s
  systop --sort memory`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return monitorCommand(configFlag, intervalFlag, sortFlag, debugFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")
	rootCmd.Flags().StringVar(&intervalFlag, "interval", "", "refresh interval (e.g., 500ms, 1s, 2s)")
	rootCmd.Flags().StringVar(&sortFlag, "sort", "", "initial sort order: cpu, memory, pid, or name")
}

// Execute runs the root command. Errors are already formatted by the
// structured error type, so they print as-is.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
