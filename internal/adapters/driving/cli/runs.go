package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/egress-cli/internal/core/domain"
)

var (
	runsLimit int
	runsJSON  bool
	runsAudit bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Inspect saved runs",
	Long:  `Lists and shows runs saved with 'egress run --save'.`,
}

var runsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recent runs of the project",
	Args:    cobra.NoArgs,
	RunE:    runRunsList,
}

var runsShowCmd = &cobra.Command{
	Use:   "show [run-id]",
	Short: "Show a saved run",
	Long:  `Shows the run with the given ID, or the latest run of the project.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRunsShow,
}

func init() {
	runsListCmd.Flags().IntVarP(&runsLimit, "limit", "n", 20, "maximum number of runs")
	runsListCmd.Flags().BoolVar(&runsJSON, "json", false, "output as JSON")
	runsShowCmd.Flags().BoolVar(&runsJSON, "json", false, "output as JSON")
	runsShowCmd.Flags().BoolVar(&runsAudit, "audit", false, "print the audit trail of every derived value")

	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsShowCmd)
	rootCmd.AddCommand(runsCmd)
}

func runRunsList(cmd *cobra.Command, _ []string) error {
	if runHistory == nil {
		return errors.New("run history not configured")
	}

	runs, err := runHistory.List(cmd.Context(), currentProject(), runsLimit)
	if err != nil {
		return fmt.Errorf("listing runs: %w", err)
	}
	if runsJSON {
		return outputJSON(cmd, runs)
	}
	newReport(cmd.OutOrStdout()).summaries(runs)
	return nil
}

func runRunsShow(cmd *cobra.Command, args []string) error {
	if runHistory == nil {
		return errors.New("run history not configured")
	}

	var (
		run *domain.SavedRun
		err error
	)
	if len(args) > 0 {
		run, err = runHistory.Get(cmd.Context(), args[0])
	} else {
		run, err = runHistory.Latest(cmd.Context(), currentProject())
	}
	if err != nil {
		return fmt.Errorf("loading run: %w", err)
	}

	if runsJSON {
		return outputJSON(cmd, run.Result)
	}
	newReport(cmd.OutOrStdout()).run(&run.Result, runsAudit)
	return nil
}
