package services

import (
	"fmt"

	"github.com/custodia-labs/egress-cli/internal/core/domain"
	"github.com/custodia-labs/egress-cli/internal/logger"
)

// OccupancyResolver assigns an occupant load to every level, preferring a
// matching prior override and falling back to an area-based default.
type OccupancyResolver struct {
	areaFactor float64
	tolerance  float64
}

// NewOccupancyResolver creates a resolver for the given code settings.
func NewOccupancyResolver(settings domain.CodeSettings) *OccupancyResolver {
	return &OccupancyResolver{
		areaFactor: settings.AreaFactor,
		tolerance:  settings.MatchTolerance,
	}
}

// Resolve returns the occupancy record for one level. The warning is empty
// when a prior override supplied the load.
func (r *OccupancyResolver) Resolve(level domain.Level, prior []domain.OccupancyOverride) (domain.OccupancyRecord, string) {
	record := domain.OccupancyRecord{
		LevelName: level.Name,
		Elevation: level.Elevation,
		Thickness: level.Thickness,
		Identity:  level.Identity(),
	}

	for _, ovd := range prior {
		if ovd.Identity.Matches(level, r.tolerance) {
			record.Occupants = ovd.Occupants
			record.Source = domain.OccupancySourceOverride
			record.OverrideID = ovd.ID
			logger.Debug("Level %q: occupancy %d from override %s", level.Name, ovd.Occupants, ovd.ID)
			return record, ""
		}
	}

	squareFeet := domain.SquareMetersToSquareFeet(level.Area())
	record.Occupants = ceilTolerant(squareFeet / r.areaFactor)
	record.Source = domain.OccupancySourceDefault
	logger.Debug("Level %q: %.0f sq ft at %g sq ft per occupant gives %d occupants",
		level.Name, squareFeet, r.areaFactor, record.Occupants)

	return record, r.defaultWarning()
}

// ResolveAll resolves every level and summarises the warnings by message.
func (r *OccupancyResolver) ResolveAll(levels []domain.Level, prior []domain.OccupancyOverride) ([]domain.OccupancyRecord, []domain.Warning) {
	records := make([]domain.OccupancyRecord, 0, len(levels))
	var messages []string
	for _, level := range levels {
		record, warning := r.Resolve(level, prior)
		records = append(records, record)
		if warning != "" {
			messages = append(messages, warning)
		}
	}
	return records, SummarizeWarnings(messages)
}

func (r *OccupancyResolver) defaultWarning() string {
	return fmt.Sprintf("No occupancy override found; applied the default load factor of %g sq ft per occupant. "+
		"Verify the occupancy classification and override the load where it differs.", r.areaFactor)
}

// SummarizeWarnings collapses identical messages into one warning each,
// counting duplicates. Warnings keep the order of first appearance.
func SummarizeWarnings(messages []string) []domain.Warning {
	var warnings []domain.Warning
	index := make(map[string]int)
	for _, msg := range messages {
		if i, ok := index[msg]; ok {
			warnings[i].Count++
			continue
		}
		index[msg] = len(warnings)
		warnings = append(warnings, domain.Warning{Message: msg, Count: 1})
	}
	return warnings
}
