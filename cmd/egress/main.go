// Command egress sizes egress stairs for building models and re-applies
// stored stair overrides on each run.
package main

import (
	"os"

	"github.com/custodia-labs/egress-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/egress-cli/internal/adapters/driven/metrics"
	"github.com/custodia-labs/egress-cli/internal/adapters/driven/modelfile"
	"github.com/custodia-labs/egress-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/egress-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/egress-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/egress-cli/internal/core/ports/driven"
	"github.com/custodia-labs/egress-cli/internal/core/services"
	"github.com/custodia-labs/egress-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	var configStore driven.ConfigStore
	fileConfig, err := file.NewConfigStore(os.Getenv("EGRESS_CONFIG_DIR"))
	if err != nil {
		logger.Warn("config unavailable, using defaults: %v", err)
		configStore = memory.NewConfigStore()
	} else {
		configStore = fileConfig
	}

	var (
		runStore      driven.RunStore
		overrideStore driven.OverrideStore
	)
	store, err := sqlite.NewStore(os.Getenv("EGRESS_DATA_DIR"))
	if err != nil {
		logger.Warn("run history unavailable, keeping this session in memory: %v", err)
		runStore = memory.NewRunStore()
		overrideStore = memory.NewOverrideStore()
	} else {
		defer store.Close()
		runStore = store.RunStore()
		overrideStore = store.OverrideStore()
	}

	recorder := metrics.NewPrometheusRecorder()
	settings := services.NewSettingsService(configStore)
	planner := services.NewPlannerService(settings, overrideStore, recorder)

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Planner:  planner,
		Sizer:    planner,
		History:  services.NewRunHistoryService(runStore),
		Editor:   services.NewOverrideService(overrideStore, runStore),
		Settings: settings,
		Loader:   modelfile.NewLoader(),
		Metrics:  recorder,
	})

	// Cobra has already printed the error.
	if err := cli.Execute(); err != nil {
		return 1
	}
	return 0
}
