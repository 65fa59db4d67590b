package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/egress-cli/internal/core/domain"
)

var (
	overrideX        float64
	overrideY        float64
	overrideZ        float64
	overrideRotation float64
	overrideName     string
	overrideMinWidth float64
	overrideJSON     bool
)

var overrideCmd = &cobra.Command{
	Use:   "override",
	Short: "Manage stored stair overrides",
	Long: `Records edits that are re-applied on every run of the project.

Edits that target an existing stair (move, edit, remove) find it in the
project's latest saved run by ID, ID prefix or name, and store its original
position so the edit still finds the stair after the baseline is regenerated.`,
}

var overrideAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a stair at a position",
	Args:  cobra.NoArgs,
	RunE:  runOverrideAdd,
}

var overrideMoveCmd = &cobra.Command{
	Use:   "move <stair>",
	Short: "Move a stair to a new placement",
	Args:  cobra.ExactArgs(1),
	RunE:  runOverrideMove,
}

var overrideEditCmd = &cobra.Command{
	Use:   "edit <stair>",
	Short: "Rename a stair and set its minimum tread width",
	Args:  cobra.ExactArgs(1),
	RunE:  runOverrideEdit,
}

var overrideRemoveCmd = &cobra.Command{
	Use:     "remove <stair>",
	Aliases: []string{"rm"},
	Short:   "Remove a stair",
	Args:    cobra.ExactArgs(1),
	RunE:    runOverrideRemove,
}

var overrideOccupancyCmd = &cobra.Command{
	Use:   "occupancy <level> <occupants>",
	Short: "Set the occupant load of a level",
	Long: `Stores an occupant load for a level of the latest saved run. The level is
matched by placement and boundary on later runs, so renaming it does not
lose the override.`,
	Args: cobra.ExactArgs(2),
	RunE: runOverrideOccupancy,
}

var overrideListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List stored overrides",
	Args:    cobra.NoArgs,
	RunE:    runOverrideList,
}

var overrideClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drop every stored override of the project",
	Args:  cobra.NoArgs,
	RunE:  runOverrideClear,
}

func init() {
	for _, c := range []*cobra.Command{overrideAddCmd, overrideMoveCmd} {
		c.Flags().Float64Var(&overrideX, "x", 0, "x coordinate in meters")
		c.Flags().Float64Var(&overrideY, "y", 0, "y coordinate in meters")
		c.Flags().Float64Var(&overrideZ, "z", 0, "z coordinate in meters")
	}
	overrideMoveCmd.Flags().Float64Var(&overrideRotation, "rotation", 0, "rotation about +Z in degrees")

	overrideEditCmd.Flags().StringVar(&overrideName, "name", "", "new stair name")
	overrideEditCmd.Flags().Float64Var(&overrideMinWidth, "min-width", 0, "minimum tread width in meters")
	_ = overrideEditCmd.MarkFlagRequired("min-width")

	overrideListCmd.Flags().BoolVar(&overrideJSON, "json", false, "output the batch as JSON")

	overrideCmd.AddCommand(overrideAddCmd)
	overrideCmd.AddCommand(overrideMoveCmd)
	overrideCmd.AddCommand(overrideEditCmd)
	overrideCmd.AddCommand(overrideRemoveCmd)
	overrideCmd.AddCommand(overrideOccupancyCmd)
	overrideCmd.AddCommand(overrideListCmd)
	overrideCmd.AddCommand(overrideClearCmd)
	rootCmd.AddCommand(overrideCmd)
}

func requireEditor() error {
	if overrideEditor == nil {
		return errors.New("override service not configured")
	}
	return nil
}

func point() domain.Vector3 {
	return domain.Vector3{X: overrideX, Y: overrideY, Z: overrideZ}
}

func runOverrideAdd(cmd *cobra.Command, _ []string) error {
	if err := requireEditor(); err != nil {
		return err
	}
	id, err := overrideEditor.AddStair(cmd.Context(), currentProject(), point())
	if err != nil {
		return fmt.Errorf("adding stair: %w", err)
	}
	cmd.Printf("Recorded addition %s at %s\n", id, point())
	return nil
}

func runOverrideMove(cmd *cobra.Command, args []string) error {
	if err := requireEditor(); err != nil {
		return err
	}
	transform := domain.Transform{Origin: point(), Rotation: overrideRotation}
	id, err := overrideEditor.MoveStair(cmd.Context(), currentProject(), args[0], transform)
	if err != nil {
		return fmt.Errorf("moving stair: %w", err)
	}
	cmd.Printf("Recorded move %s: %s to %s\n", id, args[0], transform.Origin)
	return nil
}

func runOverrideEdit(cmd *cobra.Command, args []string) error {
	if err := requireEditor(); err != nil {
		return err
	}
	id, err := overrideEditor.EditStair(cmd.Context(), currentProject(), args[0], overrideName, overrideMinWidth)
	if err != nil {
		return fmt.Errorf("editing stair: %w", err)
	}
	cmd.Printf("Recorded property edit %s for %s\n", id, args[0])
	return nil
}

func runOverrideRemove(cmd *cobra.Command, args []string) error {
	if err := requireEditor(); err != nil {
		return err
	}
	id, err := overrideEditor.RemoveStair(cmd.Context(), currentProject(), args[0])
	if err != nil {
		return fmt.Errorf("removing stair: %w", err)
	}
	cmd.Printf("Recorded removal %s for %s\n", id, args[0])
	return nil
}

func runOverrideOccupancy(cmd *cobra.Command, args []string) error {
	if err := requireEditor(); err != nil {
		return err
	}
	occupants, err := strconv.Atoi(args[1])
	if err != nil || occupants < 0 {
		return fmt.Errorf("%w: occupants must be a non-negative integer, got %q", domain.ErrInvalidInput, args[1])
	}
	id, err := overrideEditor.SetOccupancy(cmd.Context(), currentProject(), args[0], occupants)
	if err != nil {
		return fmt.Errorf("setting occupancy: %w", err)
	}
	cmd.Printf("Recorded occupancy %s: %s has %d occupants\n", id, args[0], occupants)
	return nil
}

func runOverrideList(cmd *cobra.Command, _ []string) error {
	if err := requireEditor(); err != nil {
		return err
	}
	batch, err := overrideEditor.Get(cmd.Context(), currentProject())
	if err != nil {
		return fmt.Errorf("loading overrides: %w", err)
	}
	if overrideJSON {
		return outputJSON(cmd, batch)
	}
	newReport(cmd.OutOrStdout()).batch(currentProject(), batch)
	return nil
}

func runOverrideClear(cmd *cobra.Command, _ []string) error {
	if err := requireEditor(); err != nil {
		return err
	}
	if err := overrideEditor.Clear(cmd.Context(), currentProject()); err != nil {
		return fmt.Errorf("clearing overrides: %w", err)
	}
	cmd.Printf("Cleared overrides for %s\n", currentProject())
	return nil
}
