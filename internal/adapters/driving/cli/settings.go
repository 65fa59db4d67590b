package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/egress-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage the code basis",
	Long: `View and configure the code constants used for sizing and the rules used
to match overrides to regenerated stairs.

Lengths ending in _in are entered in inches.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSet,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset <key>",
	Short: "Restore the default of a setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsReset,
}

var settingsKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List recognised settings keys",
	Args:  cobra.NoArgs,
	RunE:  runSettingsKeys,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	settingsCmd.AddCommand(settingsKeysCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	s, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Code]")
	cmd.Printf("  Sprinklered: %s\n", yesNo(s.Sprinklered))
	cmd.Printf("  Area factor: %.1f sq ft per occupant\n", s.AreaFactor)
	cmd.Printf("  Target riser: %.2f in (%.4f m)\n", domain.MetersToInches(s.TargetRiserHeight), s.TargetRiserHeight)
	cmd.Printf("  Tread depth: %.2f in (%.4f m)\n", domain.MetersToInches(s.TreadDepth), s.TreadDepth)
	cmd.Printf("  Accessible min width: %.2f in (%.4f m)\n",
		domain.MetersToInches(s.AccessibleMinTreadWidth), s.AccessibleMinTreadWidth)
	cmd.Printf("  Accessible landing: %.2f in (%.4f m)\n",
		domain.MetersToInches(s.AccessibleLandingDepth), s.AccessibleLandingDepth)
	cmd.Printf("  Extrusion margin: %.3f m\n", s.ExtrusionMargin)
	cmd.Println()

	cmd.Println("[Matching]")
	cmd.Printf("  Tolerance: %g m\n", s.MatchTolerance)
	cmd.Printf("  Ambiguity: %s\n", s.Ambiguity)

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	if err := settingsService.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}
	cmd.Printf("%s = %s\n", args[0], args[1])
	return nil
}

func runSettingsReset(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	if err := settingsService.Reset(args[0]); err != nil {
		return fmt.Errorf("failed to reset %s: %w", args[0], err)
	}
	cmd.Printf("%s reset to default\n", args[0])
	return nil
}

func runSettingsKeys(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	for _, k := range settingsService.Keys() {
		cmd.Println(k)
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
