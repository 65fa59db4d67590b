// Package cli provides the egress command-line interface.
// It implements a driving adapter following hexagonal architecture principles.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/egress-cli/internal/core/domain"
	"github.com/custodia-labs/egress-cli/internal/core/ports/driven"
	"github.com/custodia-labs/egress-cli/internal/core/ports/driving"
	"github.com/custodia-labs/egress-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// MetricsWriter exports collected run metrics to a node-exporter textfile.
type MetricsWriter interface {
	WriteTextfile(path string) error
}

// Services holds the driving ports the commands run against.
type Services struct {
	Planner  driving.Planner
	Sizer    driving.Sizer
	History  driving.RunHistory
	Editor   driving.OverrideEditor
	Settings driving.SettingsService
	Loader   driven.ModelLoader
	Metrics  MetricsWriter
}

// Injected services. Nil until SetServices is called.
var (
	planner         driving.Planner
	sizer           driving.Sizer
	runHistory      driving.RunHistory
	overrideEditor  driving.OverrideEditor
	settingsService driving.SettingsService
	modelLoader     driven.ModelLoader
	metricsWriter   MetricsWriter
)

var (
	verboseFlag bool
	projectFlag string
)

var rootCmd = &cobra.Command{
	Use:   "egress",
	Short: "Size egress stairs and reconcile stair overrides",
	Long: `egress computes code-compliant egress stair dimensions for a multi-level
building model and re-applies stored stair edits (additions, moves, property
edits and removals) on top of each regenerated baseline.

Every derived number carries an audit trail explaining where it came from.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "print sizing and matching details to stderr")
	rootCmd.PersistentFlags().StringVar(&projectFlag, "project", domain.DefaultProject,
		"project that scopes stored overrides and run history")
}

// SetServices injects the services used by every command.
func SetServices(s Services) {
	planner = s.Planner
	sizer = s.Sizer
	runHistory = s.History
	overrideEditor = s.Editor
	settingsService = s.Settings
	modelLoader = s.Loader
	metricsWriter = s.Metrics
}

// SetVersion overrides the reported version.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func currentProject() string {
	if projectFlag == "" {
		return domain.DefaultProject
	}
	return projectFlag
}
