package services

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/egress-cli/internal/core/domain"
	"github.com/custodia-labs/egress-cli/internal/core/ports/driven"
	"github.com/custodia-labs/egress-cli/internal/core/ports/driving"
	"github.com/custodia-labs/egress-cli/internal/logger"
)

// Ensure PlannerService implements the interfaces.
var (
	_ driving.Planner = (*PlannerService)(nil)
	_ driving.Sizer   = (*PlannerService)(nil)
)

// PlannerService runs the egress pipeline: occupancy resolution, global
// sizing, reconciliation of overrides and flight layout.
type PlannerService struct {
	settings  driving.SettingsService
	overrides driven.OverrideStore
	metrics   driven.MetricsRecorder
	now       func() time.Time
}

// NewPlannerService creates a planner. overrides and metrics may be nil.
func NewPlannerService(
	settings driving.SettingsService,
	overrides driven.OverrideStore,
	metrics driven.MetricsRecorder,
) *PlannerService {
	return &PlannerService{
		settings:  settings,
		overrides: overrides,
		metrics:   metrics,
		now:       time.Now,
	}
}

// Plan computes the stairs for model. The model's own overrides apply
// first, followed by any stored for the project.
func (p *PlannerService) Plan(ctx context.Context, model domain.BuildingModel, opts domain.PlanOptions) (*domain.RunResult, error) {
	settings, err := p.settings.Get()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	project := opts.Project
	if project == "" {
		project = domain.DefaultProject
	}

	batch := model.Overrides
	if p.overrides != nil {
		stored, err := p.overrides.Load(ctx, project)
		if err != nil {
			return nil, fmt.Errorf("loading overrides for %s: %w", project, err)
		}
		batch = batch.Merge(stored)
	}

	sprinklered := opts.Sprinklered || model.Sprinklered || settings.Sprinklered
	result := planModel(model, batch, settings, sprinklered)
	result.ID = newID()
	result.Project = project
	result.CreatedAt = p.now().UTC()

	if p.metrics != nil {
		p.metrics.ObserveRun(result)
	}
	return result, nil
}

// Size runs the calculator alone for a single rise and load.
func (p *PlannerService) Size(req driving.SizeRequest) (domain.StairConfig, error) {
	if req.Occupants < 0 || req.Stairs < 1 || !(req.Rise > 0) {
		return domain.StairConfig{}, fmt.Errorf("%w: need occupants >= 0, stairs >= 1 and a positive rise",
			domain.ErrInvalidInput)
	}
	settings, err := p.settings.Get()
	if err != nil {
		return domain.StairConfig{}, fmt.Errorf("loading settings: %w", err)
	}

	records := []domain.OccupancyRecord{
		{LevelName: "lower", Elevation: 0, Occupants: req.Occupants},
		{LevelName: "upper", Elevation: req.Rise, Occupants: req.Occupants},
	}
	global := ComputeGlobalConfig(GlobalInput{
		TotalStairs: req.Stairs,
		Records:     records,
		Sprinklered: req.Sprinklered || settings.Sprinklered,
	}, settings)

	if req.MinTreadWidth > 0 {
		return DeriveConfig(global, ConfigDelta{MinTreadWidth: req.MinTreadWidth}), nil
	}
	return global, nil
}

// planModel is the synchronous core of Plan.
func planModel(model domain.BuildingModel, batch domain.OverrideBatch, settings domain.CodeSettings, sprinklered bool) *domain.RunResult {
	result := &domain.RunResult{}
	if !model.HasVerticalEgress() {
		logger.Info("Model has %d levels; no vertical egress to plan", len(model.Levels))
		result.NoOp = true
		return result
	}

	done := logger.Stage("Occupancy")
	records, warnings := NewOccupancyResolver(settings).ResolveAll(model.Levels, batch.Occupancy)
	result.Occupancy = records
	result.Warnings = warnings
	done()

	seeds := seedsFor(model)
	total := len(seeds) + len(batch.Additions) - len(batch.Removals)

	done = logger.Stage("Sizing")
	global := ComputeGlobalConfig(GlobalInput{
		TotalStairs: total,
		Records:     records,
		Sprinklered: sprinklered,
		CoreCount:   len(model.Cores),
	}, settings)
	result.Global = &global
	logger.Trail(global.Log.Entries())
	done()

	reconciled := NewReconciler(settings).Reconcile(ReconcileInput{
		Seeds:     seeds,
		Global:    global,
		Overrides: batch,
	})
	result.Outcomes = reconciled.Outcomes
	result.Removed = reconciled.Removed

	result.Stairs = make([]domain.PlacedStair, len(reconciled.Stairs))
	for i, rs := range reconciled.Stairs {
		result.Stairs[i] = domain.PlacedStair{
			Stair:  rs.Stair,
			Config: rs.Config,
			Panels: LayoutFlights(rs.Config, rs.Stair.Transform),
		}
	}

	logger.Info("Planned %d stairs (%d overrides applied, %d skipped, %d rejected)",
		len(result.Stairs),
		result.CountOutcomes(domain.OutcomeApplied),
		result.CountOutcomes(domain.OutcomeSkipped),
		result.CountOutcomes(domain.OutcomeRejected))
	return result
}

// seedsFor returns one seed per structural core, or a single seed at the
// first level's centroid when the model has no cores. Seeds are plan
// positions at zero elevation; layout lifts panels to the start elevation.
func seedsFor(model domain.BuildingModel) []Seed {
	if len(model.Cores) == 0 {
		first := model.Levels[0]
		origin := first.Transform.Apply(first.Boundary.Centroid())
		origin.Z = 0
		return []Seed{{Origin: origin, Source: domain.StairOriginLevel}}
	}

	seeds := make([]Seed, len(model.Cores))
	for i, core := range model.Cores {
		seeds[i] = Seed{Name: core.Name, Origin: core.Corner(), Source: domain.StairOriginCore}
	}
	return seeds
}
