package services

import (
	"fmt"

	"github.com/custodia-labs/egress-cli/internal/core/domain"
	"github.com/custodia-labs/egress-cli/internal/logger"
)

// Reconciliation stages. Each stage sees the cumulative effect of every
// stage before it, so the order is part of the result.
const (
	StageSeed       = "seed"
	StageAdditions  = "additions"
	StageMoves      = "moves"
	StageProperties = "properties"
	StageRemovals   = "removals"
)

// Seed is a baseline stair location.
type Seed struct {
	Name   string
	Origin domain.Vector3
	Source domain.StairOrigin
}

// ReconcileInput is one reconciliation run's input.
type ReconcileInput struct {
	Seeds     []Seed
	Global    domain.StairConfig
	Overrides domain.OverrideBatch
}

// ReconciledStair is a surviving stair and the config it was sized from.
type ReconciledStair struct {
	Stair  domain.Stair
	Config domain.StairConfig
}

// ReconcileResult is the final working set and what happened to every
// override.
type ReconcileResult struct {
	Stairs   []ReconciledStair
	Removed  []domain.Stair
	Outcomes []domain.OverrideOutcome
}

// Stage is one named step of the reconciliation pipeline.
type Stage struct {
	Name  string
	apply func(ws *workingSet)
}

// Reconciler applies user overrides on top of a regenerated baseline.
// Overrides find their stair by identity anchor within tolerance; the first
// stair in working-set order wins, and ambiguity is reported according to
// the configured policy.
type Reconciler struct {
	tolerance float64
	policy    domain.AmbiguityPolicy
}

// NewReconciler creates a reconciler for the given settings.
func NewReconciler(settings domain.CodeSettings) *Reconciler {
	return &Reconciler{
		tolerance: settings.MatchTolerance,
		policy:    settings.Ambiguity,
	}
}

// Pipeline returns the stages for in, in execution order.
func (r *Reconciler) Pipeline(in ReconcileInput) []Stage {
	return []Stage{
		{Name: StageSeed, apply: func(ws *workingSet) { r.seed(ws, in.Seeds, in.Global) }},
		{Name: StageAdditions, apply: func(ws *workingSet) { r.add(ws, in.Overrides.Additions, in.Global) }},
		{Name: StageMoves, apply: func(ws *workingSet) { r.move(ws, in.Overrides.Moves) }},
		{Name: StageProperties, apply: func(ws *workingSet) { r.edit(ws, in.Overrides.Properties, in.Global) }},
		{Name: StageRemovals, apply: func(ws *workingSet) { r.remove(ws, in.Overrides.Removals) }},
	}
}

// Reconcile runs every stage against a fresh working set.
func (r *Reconciler) Reconcile(in ReconcileInput) ReconcileResult {
	ws := &workingSet{}
	for _, stage := range r.Pipeline(in) {
		logger.Section("Reconcile: " + stage.Name)
		stage.apply(ws)
		logger.Debug("%d stairs in working set", len(ws.entries))
	}
	return ws.result()
}

func (r *Reconciler) seed(ws *workingSet, seeds []Seed, global domain.StairConfig) {
	for _, s := range seeds {
		stair := ws.create(s.Name, s.Origin, s.Source, global)
		logger.Debug("Seeded %s at %s", stair.Name, s.Origin)
	}
}

func (r *Reconciler) add(ws *workingSet, additions []domain.AdditionOverride, global domain.StairConfig) {
	for _, ovd := range additions {
		stair := ws.create("", ovd.Origin, domain.StairOriginAddition, global)
		stair.AppliedOverrides = append(stair.AppliedOverrides, ovd.ID)
		ws.record(domain.OverrideOutcome{
			OverrideID: ovd.ID,
			Kind:       domain.OverrideKindAddition,
			Status:     domain.OutcomeApplied,
			StairID:    stair.ID,
		})
		logger.Debug("Added %s at %s", stair.Name, ovd.Origin)
	}
}

func (r *Reconciler) move(ws *workingSet, moves []domain.MoveOverride) {
	for _, ovd := range moves {
		e := r.find(ws, domain.OverrideKindMove, ovd.ID, ovd.Identity)
		if e == nil {
			continue
		}
		e.stair.Transform = ovd.Transform
		e.stair.AppliedOverrides = append(e.stair.AppliedOverrides, ovd.ID)
	}
}

func (r *Reconciler) edit(ws *workingSet, edits []domain.PropertyOverride, global domain.StairConfig) {
	for _, ovd := range edits {
		e := r.find(ws, domain.OverrideKindProperty, ovd.ID, ovd.Identity)
		if e == nil {
			continue
		}
		e.config = DeriveConfig(global, ConfigDelta{MinTreadWidth: ovd.MinimumTreadWidth})
		e.stair = applyConfig(e.stair, e.config)
		if ovd.Name != "" {
			e.stair.Name = ovd.Name
		}
		e.stair.AppliedOverrides = append(e.stair.AppliedOverrides, ovd.ID)
	}
}

func (r *Reconciler) remove(ws *workingSet, removals []domain.RemovalOverride) {
	for _, ovd := range removals {
		e := r.find(ws, domain.OverrideKindRemoval, ovd.ID, ovd.Identity)
		if e == nil {
			continue
		}
		e.stair.AppliedOverrides = append(e.stair.AppliedOverrides, ovd.ID)
		ws.drop(e)
	}
}

// find returns the stair an override targets, recording the outcome.
// It returns nil when the override must be skipped.
func (r *Reconciler) find(ws *workingSet, kind domain.OverrideKind, id string, identity domain.Identity) *entry {
	e, candidates := ws.match(identity, r.tolerance)
	outcome := domain.OverrideOutcome{OverrideID: id, Kind: kind, Candidates: candidates}

	switch {
	case candidates == 0:
		outcome.Status = domain.OutcomeSkipped
		logger.Debug("%s override %s matched no stair at %s; skipped", kind, id, identity.OriginalPosition)
		e = nil
	case candidates > 1 && r.policy == domain.AmbiguityReject:
		outcome.Status = domain.OutcomeRejected
		logger.Warn("%s override %s matched %d stairs at %s; rejected", kind, id, candidates, identity.OriginalPosition)
		e = nil
	default:
		outcome.Status = domain.OutcomeApplied
		outcome.StairID = e.stair.ID
		if candidates > 1 {
			logger.Warn("%s override %s matched %d stairs at %s; applied to %s",
				kind, id, candidates, identity.OriginalPosition, e.stair.Name)
		}
	}

	ws.record(outcome)
	return e
}

// applyConfig copies the sized outputs of c onto stair.
func applyConfig(stair domain.Stair, c domain.StairConfig) domain.Stair {
	stair.Footprint = c.Footprint()
	stair.Capacity = c.Capacity
	stair.Load = c.MinLoadPerStair
	stair.MinimumTreadWidth = c.AbsoluteMinTreadWidth
	stair.Audit = c.Log.Entries()
	return stair
}

type entry struct {
	stair  domain.Stair
	config domain.StairConfig
}

// workingSet is owned by one reconciliation run.
type workingSet struct {
	entries  []*entry
	removed  []domain.Stair
	outcomes []domain.OverrideOutcome
	created  int
}

// create adds a stair anchored at origin and returns it for stamping.
func (ws *workingSet) create(name string, origin domain.Vector3, source domain.StairOrigin, c domain.StairConfig) *domain.Stair {
	ws.created++
	if name == "" {
		name = fmt.Sprintf("Stair %d", ws.created)
	}
	anchor := domain.NewIdentity(origin)
	id := StairID(anchor)
	for n := 2; ws.hasID(id); n++ {
		id = stairIDAt(anchor, n)
	}
	e := &entry{
		stair: applyConfig(domain.Stair{
			ID:        id,
			Name:      name,
			Origin:    source,
			Transform: domain.Translation(origin),
			Anchor:    anchor,
		}, c),
		config: c,
	}
	ws.entries = append(ws.entries, e)
	return &e.stair
}

// match returns the first stair whose anchor is within tolerance of
// identity, and how many stairs are.
func (ws *workingSet) match(identity domain.Identity, tolerance float64) (*entry, int) {
	var first *entry
	candidates := 0
	for _, e := range ws.entries {
		if e.stair.Anchor.Matches(identity, tolerance) {
			if first == nil {
				first = e
			}
			candidates++
		}
	}
	return first, candidates
}

func (ws *workingSet) hasID(id string) bool {
	for _, e := range ws.entries {
		if e.stair.ID == id {
			return true
		}
	}
	return false
}

func (ws *workingSet) drop(target *entry) {
	for i, e := range ws.entries {
		if e == target {
			ws.entries = append(ws.entries[:i], ws.entries[i+1:]...)
			ws.removed = append(ws.removed, e.stair)
			return
		}
	}
}

func (ws *workingSet) record(o domain.OverrideOutcome) {
	ws.outcomes = append(ws.outcomes, o)
}

func (ws *workingSet) result() ReconcileResult {
	stairs := make([]ReconciledStair, len(ws.entries))
	for i, e := range ws.entries {
		stairs[i] = ReconciledStair{Stair: e.stair, Config: e.config}
	}
	return ReconcileResult{Stairs: stairs, Removed: ws.removed, Outcomes: ws.outcomes}
}
