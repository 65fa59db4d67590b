package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/egress-cli/internal/adapters/driving/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse [run-id]",
	Short: "Browse a saved run interactively",
	Long: `Opens a terminal browser for the run with the given ID, or for the latest
saved run of the project.

Controls:
  ↑/k, ↓/j       - Move between stairs
  tab, shift+tab - Switch pane (stairs, occupancy, overrides, warnings)
  a              - Toggle the audit trail of the selected stair
  r              - Reload
  ?              - Toggle help
  q              - Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	if runHistory == nil {
		return errors.New("run history not configured")
	}

	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in browser: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	runID := ""
	if len(args) > 0 {
		runID = args[0]
	}

	app, err := tui.NewApp(tui.NewPorts(runHistory), runID, currentProject())
	if err != nil {
		return fmt.Errorf("failed to create browser: %w", err)
	}
	app.WithContext(cmd.Context())

	if err := app.Run(); err != nil {
		return fmt.Errorf("browser error: %w", err)
	}
	return nil
}
