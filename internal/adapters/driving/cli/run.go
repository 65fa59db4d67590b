package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/egress-cli/internal/core/domain"
)

var (
	runJSON          bool
	runSave          bool
	runSprinklered   bool
	runAudit         bool
	runOverridesFile string
	runMetricsFile   string
)

var runCmd = &cobra.Command{
	Use:   "run <model>",
	Short: "Plan egress stairs for a building model",
	Long: `Resolves occupant loads, sizes a global stair config, seeds stairs at the
structural cores and re-applies overrides in order: additions, moves, property
edits, removals. Overrides come from the model file, then --overrides, then the
project's stored batch.

The model may be YAML or JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().BoolVar(&runJSON, "json", false, "output the full result as JSON")
	runCmd.Flags().BoolVar(&runSave, "save", false, "save the run to history")
	runCmd.Flags().BoolVar(&runSprinklered, "sprinklered", false, "size for a sprinklered building")
	runCmd.Flags().BoolVar(&runAudit, "audit", false, "print the audit trail of every derived value")
	runCmd.Flags().StringVar(&runOverridesFile, "overrides", "", "extra override batch file to apply")
	runCmd.Flags().StringVar(&runMetricsFile, "metrics-file", "", "write run metrics to a Prometheus textfile")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	if planner == nil || modelLoader == nil {
		return errors.New("planner not configured")
	}

	result, model, err := planFile(cmd.Context(), args[0], runOverridesFile, runSprinklered)
	if err != nil {
		return err
	}

	if runSave {
		if err := saveRun(cmd.Context(), args[0], result, model); err != nil {
			return err
		}
	}

	if runMetricsFile != "" && metricsWriter != nil {
		if err := metricsWriter.WriteTextfile(runMetricsFile); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}

	if runJSON {
		return outputJSON(cmd, result)
	}
	newReport(cmd.OutOrStdout()).run(result, runAudit)
	if runSave {
		cmd.Printf("\nSaved run %s\n", result.ID)
	}
	return nil
}

// planFile loads a model and optional extra overrides and plans it.
func planFile(
	ctx context.Context, modelPath, overridesPath string, sprinklered bool,
) (*domain.RunResult, *domain.BuildingModel, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	model, err := modelLoader.LoadModel(ctx, modelPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading model: %w", err)
	}

	if overridesPath != "" {
		extra, err := modelLoader.LoadOverrides(ctx, overridesPath)
		if err != nil {
			return nil, nil, fmt.Errorf("loading overrides: %w", err)
		}
		model.Overrides = model.Overrides.Merge(*extra)
	}

	result, err := planner.Plan(ctx, *model, domain.PlanOptions{
		Project:     currentProject(),
		Sprinklered: sprinklered,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("planning failed: %w", err)
	}
	return result, model, nil
}

func saveRun(ctx context.Context, modelPath string, result *domain.RunResult, model *domain.BuildingModel) error {
	if runHistory == nil {
		return errors.New("run history not configured")
	}
	digest, err := modelLoader.Digest(modelPath)
	if err != nil {
		return fmt.Errorf("hashing model: %w", err)
	}
	if err := runHistory.Save(ctx, result, digest, len(model.Levels)); err != nil {
		return fmt.Errorf("saving run: %w", err)
	}
	return nil
}

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
