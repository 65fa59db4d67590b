package services

import (
	"math"
	"sort"

	"github.com/custodia-labs/egress-cli/internal/core/domain"
)

// landingCount is the number of landings every stair is assumed to have.
const landingCount = 2

// roundingEpsilon absorbs floating error before integer rounding so that a
// quotient which is mathematically whole is not pushed to the next integer.
const roundingEpsilon = 1e-9

// GlobalInput is what the calculator needs to size the shared baseline.
type GlobalInput struct {
	// TotalStairs is the number of stairs sharing the building load.
	TotalStairs int

	// Records are the resolved occupancy records, one per level.
	Records []domain.OccupancyRecord

	Sprinklered bool

	// CoreCount is the number of structural cores stairs are seeded from.
	CoreCount int
}

// ConfigDelta is the per-stair change a property override applies.
type ConfigDelta struct {
	// MinTreadWidth replaces the accessible minimum tread width.
	MinTreadWidth float64
}

// ComputeGlobalConfig derives the sizing baseline shared by every stair.
// It is pure: the same input always yields the same config and audit log.
func ComputeGlobalConfig(in GlobalInput, settings domain.CodeSettings) domain.StairConfig {
	c := domain.StairConfig{
		TotalStairs:             max(in.TotalStairs, 1),
		CoreCount:               in.CoreCount,
		TargetRiserHeight:       settings.TargetRiserHeight,
		TreadDepth:              settings.TreadDepth,
		Sprinklered:             in.Sprinklered,
		AccessibleMinTreadWidth: settings.AccessibleMinTreadWidth,
		AbsoluteMinTreadWidth:   settings.AccessibleMinTreadWidth,
		AccessibleLandingDepth:  settings.AccessibleLandingDepth,
	}
	log := domain.NewAuditLog()

	for _, r := range in.Records {
		c.MaxLoad = max(c.MaxLoad, r.Occupants)
	}
	c.MinLoadPerStair = ceilDiv(c.MaxLoad, c.TotalStairs)
	log = log.Append("Maximum occupant load is %d across %d levels; shared by %d stairs, each stair must carry at least %d occupants.",
		c.MaxLoad, len(in.Records), c.TotalStairs, c.MinLoadPerStair)

	c.MaxElevationChange, c.StartElevation = maxElevationChange(in.Records)
	c.ExtrusionHeight = maxElevation(in.Records) + c.MaxElevationChange + settings.ExtrusionMargin
	if len(in.Records) > 0 {
		c.FloorDepth = in.Records[0].Thickness
	}
	log = log.Append("Largest floor-to-floor rise is %.3fm, starting at elevation %.3fm.",
		c.MaxElevationChange, c.StartElevation)

	c.RiserCount = riserCount(c.MaxElevationChange, c.TargetRiserHeight)
	c.TreadCount = max(c.RiserCount-landingCount, 0)
	if c.RiserCount > 0 {
		c.RiserHeight = c.MaxElevationChange / float64(c.RiserCount)
	}
	log = log.Append("%d risers of %.4fm (target %.4fm) give %d treads between %d landings.",
		c.RiserCount, c.RiserHeight, c.TargetRiserHeight, c.TreadCount, landingCount)

	c.WidthFactor = domain.WidthFactor(in.Sprinklered)
	if in.Sprinklered {
		log = log.Append("Building is sprinklered, so the width factor is reduced to %.1f in per occupant.",
			c.WidthFactor)
	}

	c.Log = log
	return deriveDimensions(c)
}

// DeriveConfig returns a new config that keeps base's global truths but
// re-derives every width-dependent dimension against delta. The base is
// never modified; the derived log extends the base log.
func DeriveConfig(base domain.StairConfig, delta ConfigDelta) domain.StairConfig {
	c := base
	c.MinTreadWidthOverridden = true
	c.AbsoluteMinTreadWidth = delta.MinTreadWidth
	c.Log = base.Log.Append("Minimum tread width overridden to %.3fm (%.1f in).",
		delta.MinTreadWidth, domain.MetersToInches(delta.MinTreadWidth))

	if !(delta.MinTreadWidth >= base.AccessibleMinTreadWidth) {
		c.AbsoluteMinTreadWidth = base.AccessibleMinTreadWidth
		c.Log = c.Log.Append("Override is below the accessible minimum of %.3fm and was raised to it.",
			base.AccessibleMinTreadWidth)
	}

	return deriveDimensions(c)
}

// deriveDimensions computes every field that depends on the minimum tread
// width floor: tread width, capacity, landings and the footprint.
func deriveDimensions(c domain.StairConfig) domain.StairConfig {
	c.MinTreadWidth = domain.InchesToMeters(c.WidthFactor * float64(c.MinLoadPerStair))
	c.Log = c.Log.Append("Minimum tread width for %d occupants at %.1f in per occupant is %.3fm (%.1f in).",
		c.MinLoadPerStair, c.WidthFactor, c.MinTreadWidth, domain.MetersToInches(c.MinTreadWidth))

	floorName := "accessible-design minimum"
	if c.MinTreadWidthOverridden {
		floorName = "user-specified minimum"
	}
	c.ResolvedMinTreadWidth = math.Max(c.MinTreadWidth, c.AbsoluteMinTreadWidth)
	if c.MinTreadWidth > c.AbsoluteMinTreadWidth {
		c.Log = c.Log.Append("The calculated width of %.3fm governs over the %s of %.3fm.",
			c.MinTreadWidth, floorName, c.AbsoluteMinTreadWidth)
	} else {
		c.Log = c.Log.Append("The %s of %.3fm governs over the calculated width of %.3fm.",
			floorName, c.AbsoluteMinTreadWidth, c.MinTreadWidth)
	}

	c.TreadWidth = c.ResolvedMinTreadWidth
	c.Capacity = floorTolerant(domain.MetersToInches(c.TreadWidth) / c.WidthFactor)

	c.LandingDepth = c.ResolvedMinTreadWidth
	c.RealLandingDepth = math.Max(c.ResolvedMinTreadWidth, c.AccessibleLandingDepth)

	c.Width = c.ResolvedMinTreadWidth * 2
	c.FirstFlightTreads = (c.TreadCount + 1) / 2
	c.SecondFlightTreads = c.TreadCount / 2
	c.Length = c.RealLandingDepth*2 + c.TreadDepth*float64(c.FirstFlightTreads)

	return c
}

// maxElevationChange returns the largest rise between consecutive levels,
// ordered by elevation, and the elevation of the lower level of that rise.
// Ties keep the first maximum found.
func maxElevationChange(records []domain.OccupancyRecord) (float64, float64) {
	if len(records) == 0 {
		return 0, 0
	}

	elevations := make([]float64, len(records))
	for i, r := range records {
		elevations[i] = r.Elevation
	}
	sort.Float64s(elevations)

	change, start := 0.0, elevations[0]
	for i := 1; i < len(elevations); i++ {
		contender := elevations[i] - elevations[i-1]
		if contender > change {
			change = contender
			start = elevations[i-1]
		}
	}
	return change, start
}

func maxElevation(records []domain.OccupancyRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	highest := records[0].Elevation
	for _, r := range records[1:] {
		highest = math.Max(highest, r.Elevation)
	}
	return highest
}

// riserCount returns the number of risers needed to bridge rise without
// exceeding target. Zero or invalid rises need no risers.
func riserCount(rise, target float64) int {
	if !(rise > 0) || !(target > 0) {
		return 0
	}
	return ceilTolerant(rise / target)
}

func ceilDiv(n, d int) int {
	if d <= 0 || n <= 0 {
		return 0
	}
	return (n + d - 1) / d
}

func ceilTolerant(x float64) int {
	return int(math.Ceil(x - roundingEpsilon))
}

func floorTolerant(x float64) int {
	return int(math.Floor(x + roundingEpsilon))
}
