package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/egress-cli/internal/core/ports/driving"
)

var (
	sizeOccupants   int
	sizeStairs      int
	sizeRise        float64
	sizeSprinklered bool
	sizeMinWidth    float64
	sizeJSON        bool
)

var sizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Size one stair from an occupant load and rise",
	Long: `Runs the stair sizing calculator on its own: the occupant load of the
busiest level is shared across --stairs stairs and a single flight pair bridges
--rise meters.

--min-width replaces the accessible minimum tread width, as a property
override would.`,
	Args: cobra.NoArgs,
	RunE: runSize,
}

func init() {
	sizeCmd.Flags().IntVarP(&sizeOccupants, "occupants", "o", 0, "occupant load of the busiest level")
	sizeCmd.Flags().IntVarP(&sizeStairs, "stairs", "n", 1, "number of stairs sharing the load")
	sizeCmd.Flags().Float64VarP(&sizeRise, "rise", "r", 0, "floor-to-floor height in meters")
	sizeCmd.Flags().BoolVar(&sizeSprinklered, "sprinklered", false, "size for a sprinklered building")
	sizeCmd.Flags().Float64Var(&sizeMinWidth, "min-width", 0, "minimum tread width in meters")
	sizeCmd.Flags().BoolVar(&sizeJSON, "json", false, "output the config as JSON")
	_ = sizeCmd.MarkFlagRequired("rise")
	rootCmd.AddCommand(sizeCmd)
}

func runSize(cmd *cobra.Command, _ []string) error {
	if sizer == nil {
		return errors.New("sizer not configured")
	}

	cfg, err := sizer.Size(driving.SizeRequest{
		Occupants:     sizeOccupants,
		Stairs:        sizeStairs,
		Rise:          sizeRise,
		Sprinklered:   sizeSprinklered,
		MinTreadWidth: sizeMinWidth,
	})
	if err != nil {
		return fmt.Errorf("sizing failed: %w", err)
	}

	if sizeJSON {
		return outputJSON(cmd, cfg)
	}

	r := newReport(cmd.OutOrStdout())
	r.section("Stair config")
	r.config(cfg, true)
	return nil
}
