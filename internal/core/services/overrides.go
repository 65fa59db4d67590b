package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/egress-cli/internal/core/domain"
	"github.com/custodia-labs/egress-cli/internal/core/ports/driven"
	"github.com/custodia-labs/egress-cli/internal/core/ports/driving"
)

// Ensure OverrideService implements the interface.
var _ driving.OverrideEditor = (*OverrideService)(nil)

// OverrideService authors the persistent override batch of each project.
// Edits that target a stair or level capture its identity from the
// project's latest saved run, the same way a hosting tool captures it from
// the previous regeneration.
type OverrideService struct {
	store driven.OverrideStore
	runs  driven.RunStore
	newID func() string
}

// NewOverrideService creates an override service.
func NewOverrideService(store driven.OverrideStore, runs driven.RunStore) *OverrideService {
	return &OverrideService{
		store: store,
		runs:  runs,
		newID: newID,
	}
}

// Get returns the stored batch.
func (s *OverrideService) Get(ctx context.Context, project string) (domain.OverrideBatch, error) {
	return s.store.Load(ctx, project)
}

// AddStair records a new stair at origin.
func (s *OverrideService) AddStair(ctx context.Context, project string, origin domain.Vector3) (string, error) {
	id := s.newID()
	err := s.update(ctx, project, func(b *domain.OverrideBatch) {
		b.Additions = append(b.Additions, domain.AdditionOverride{ID: id, Origin: origin})
	})
	return id, err
}

// MoveStair records a new placement for a stair, replacing any earlier
// move of the same stair.
func (s *OverrideService) MoveStair(ctx context.Context, project, stairRef string, transform domain.Transform) (string, error) {
	anchor, err := s.anchorFor(ctx, project, stairRef)
	if err != nil {
		return "", err
	}
	id := s.newID()
	err = s.update(ctx, project, func(b *domain.OverrideBatch) {
		moves := b.Moves[:0]
		for _, m := range b.Moves {
			if m.Identity.Key() != anchor.Key() {
				moves = append(moves, m)
			}
		}
		b.Moves = append(moves, domain.MoveOverride{ID: id, Identity: anchor, Transform: transform})
	})
	return id, err
}

// EditStair records a rename and minimum tread width, replacing any earlier
// edit of the same stair.
func (s *OverrideService) EditStair(ctx context.Context, project, stairRef, name string, minTreadWidth float64) (string, error) {
	if !(minTreadWidth > 0) {
		return "", fmt.Errorf("%w: minimum tread width must be positive", domain.ErrInvalidInput)
	}
	anchor, err := s.anchorFor(ctx, project, stairRef)
	if err != nil {
		return "", err
	}
	id := s.newID()
	err = s.update(ctx, project, func(b *domain.OverrideBatch) {
		edits := b.Properties[:0]
		for _, p := range b.Properties {
			if p.Identity.Key() != anchor.Key() {
				edits = append(edits, p)
			}
		}
		b.Properties = append(edits, domain.PropertyOverride{
			ID:                id,
			Identity:          anchor,
			Name:              name,
			MinimumTreadWidth: minTreadWidth,
		})
	})
	return id, err
}

// RemoveStair records the deletion of a stair.
func (s *OverrideService) RemoveStair(ctx context.Context, project, stairRef string) (string, error) {
	anchor, err := s.anchorFor(ctx, project, stairRef)
	if err != nil {
		return "", err
	}
	id := s.newID()
	err = s.update(ctx, project, func(b *domain.OverrideBatch) {
		for _, r := range b.Removals {
			if r.Identity.Key() == anchor.Key() {
				id = r.ID
				return
			}
		}
		b.Removals = append(b.Removals, domain.RemovalOverride{ID: id, Identity: anchor})
	})
	return id, err
}

// SetOccupancy records an occupant load for the named level, replacing any
// earlier load for the same level.
func (s *OverrideService) SetOccupancy(ctx context.Context, project, levelName string, occupants int) (string, error) {
	if occupants < 0 {
		return "", fmt.Errorf("%w: occupants must not be negative", domain.ErrInvalidInput)
	}
	run, err := s.latest(ctx, project)
	if err != nil {
		return "", err
	}
	record, ok := run.Result.OccupancyByLevel(levelName)
	if !ok {
		return "", fmt.Errorf("level %q: %w", levelName, domain.ErrNotFound)
	}

	id := s.newID()
	err = s.update(ctx, project, func(b *domain.OverrideBatch) {
		kept := b.Occupancy[:0]
		for _, o := range b.Occupancy {
			if !sameLevel(o.Identity, record.Identity) {
				kept = append(kept, o)
			}
		}
		b.Occupancy = append(kept, domain.OccupancyOverride{
			ID:        id,
			Identity:  record.Identity,
			Occupants: occupants,
		})
	})
	return id, err
}

// Clear drops every stored override.
func (s *OverrideService) Clear(ctx context.Context, project string) error {
	return s.store.Clear(ctx, project)
}

func (s *OverrideService) update(ctx context.Context, project string, mutate func(*domain.OverrideBatch)) error {
	batch, err := s.store.Load(ctx, project)
	if err != nil {
		return fmt.Errorf("loading overrides: %w", err)
	}
	mutate(&batch)
	if err := s.store.Save(ctx, project, batch); err != nil {
		return fmt.Errorf("saving overrides: %w", err)
	}
	return nil
}

func (s *OverrideService) latest(ctx context.Context, project string) (*domain.SavedRun, error) {
	if s.runs == nil {
		return nil, domain.ErrNoRuns
	}
	return s.runs.Latest(ctx, project)
}

// anchorFor resolves a stair reference against the latest run. A reference
// is a full stair ID, a unique ID prefix, or an exact stair name.
func (s *OverrideService) anchorFor(ctx context.Context, project, ref string) (domain.Identity, error) {
	run, err := s.latest(ctx, project)
	if err != nil {
		return domain.Identity{}, err
	}
	stair, err := findStair(run.Result.Stairs, ref)
	if err != nil {
		return domain.Identity{}, err
	}
	return stair.Anchor, nil
}

func findStair(stairs []domain.PlacedStair, ref string) (*domain.Stair, error) {
	if ref == "" {
		return nil, fmt.Errorf("%w: empty stair reference", domain.ErrInvalidInput)
	}

	var byPrefix, byName []*domain.Stair
	for i := range stairs {
		st := &stairs[i].Stair
		switch {
		case st.ID == ref:
			return st, nil
		case strings.HasPrefix(st.ID, ref):
			byPrefix = append(byPrefix, st)
		case st.Name == ref:
			byName = append(byName, st)
		}
	}

	for _, candidates := range [][]*domain.Stair{byPrefix, byName} {
		switch len(candidates) {
		case 0:
			continue
		case 1:
			return candidates[0], nil
		default:
			return nil, fmt.Errorf("stair %q matches %d stairs: %w", ref, len(candidates), domain.ErrAmbiguousMatch)
		}
	}
	return nil, fmt.Errorf("stair %q: %w", ref, domain.ErrNotFound)
}

func sameLevel(a, b domain.LevelIdentity) bool {
	return a.Transform.IsAlmostEqualTo(b.Transform, domain.DefaultMatchTolerance) &&
		a.Boundary.IsAlmostEqualTo(b.Boundary, domain.DefaultMatchTolerance)
}
