package domain

import (
	"fmt"
	"math"
)

// AmbiguityPolicy decides what happens when several stairs lie within
// tolerance of one override identity.
type AmbiguityPolicy string

// Available ambiguity policies.
const (
	// AmbiguityFirst applies the override to the first matching stair in
	// working-set order and reports the ambiguity.
	AmbiguityFirst AmbiguityPolicy = "first"

	// AmbiguityReject skips the override and reports it as rejected.
	AmbiguityReject AmbiguityPolicy = "reject"
)

// IsValid returns true if the policy is recognised.
func (p AmbiguityPolicy) IsValid() bool {
	switch p {
	case AmbiguityFirst, AmbiguityReject:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (p AmbiguityPolicy) String() string {
	return string(p)
}

// Code constants. Widths follow IBC 1011.2 and 1011.6; the default area
// factor is the gross floor area per occupant for business use.
const (
	DefaultAreaFactor             = 100.0
	DefaultTargetRiserInches      = 7.0
	DefaultTreadDepthInches       = 11.0
	AccessibleMinTreadWidthInches = 44.0
	AccessibleLandingDepthInches  = 48.0
	DefaultExtrusionMargin        = 1.0

	// WidthFactorUnsprinklered is inches of stair width per occupant.
	WidthFactorUnsprinklered = 0.3

	// WidthFactorSprinklered applies when the building has an automatic
	// sprinkler system.
	WidthFactorSprinklered = 0.2
)

// CodeSettings holds the tunable code basis for a planning run.
// Lengths are meters; AreaFactor is square feet per occupant.
type CodeSettings struct {
	Sprinklered             bool            `json:"sprinklered"`
	AreaFactor              float64         `json:"area_factor"`
	TargetRiserHeight       float64         `json:"target_riser_height"`
	TreadDepth              float64         `json:"tread_depth"`
	AccessibleMinTreadWidth float64         `json:"accessible_min_tread_width"`
	AccessibleLandingDepth  float64         `json:"accessible_landing_depth"`
	ExtrusionMargin         float64         `json:"extrusion_margin"`
	MatchTolerance          float64         `json:"match_tolerance"`
	Ambiguity               AmbiguityPolicy `json:"ambiguity"`
}

// DefaultCodeSettings returns the accessible-design defaults.
func DefaultCodeSettings() CodeSettings {
	return CodeSettings{
		Sprinklered:             false,
		AreaFactor:              DefaultAreaFactor,
		TargetRiserHeight:       InchesToMeters(DefaultTargetRiserInches),
		TreadDepth:              InchesToMeters(DefaultTreadDepthInches),
		AccessibleMinTreadWidth: InchesToMeters(AccessibleMinTreadWidthInches),
		AccessibleLandingDepth:  InchesToMeters(AccessibleLandingDepthInches),
		ExtrusionMargin:         DefaultExtrusionMargin,
		MatchTolerance:          DefaultMatchTolerance,
		Ambiguity:               AmbiguityFirst,
	}
}

// Validate checks the settings are usable for sizing.
func (s CodeSettings) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"area factor", s.AreaFactor},
		{"target riser height", s.TargetRiserHeight},
		{"tread depth", s.TreadDepth},
		{"accessible minimum tread width", s.AccessibleMinTreadWidth},
		{"accessible landing depth", s.AccessibleLandingDepth},
		{"match tolerance", s.MatchTolerance},
	}
	for _, p := range positive {
		if !(p.value > 0) || math.IsInf(p.value, 0) {
			return fmt.Errorf("%w: %s must be positive", ErrInvalidInput, p.name)
		}
	}
	if s.ExtrusionMargin < 0 {
		return fmt.Errorf("%w: extrusion margin must not be negative", ErrInvalidInput)
	}
	if !s.Ambiguity.IsValid() {
		return fmt.Errorf("%w: ambiguity policy %q", ErrInvalidInput, s.Ambiguity)
	}
	return nil
}

// WidthFactor returns the inches-per-occupant factor for the sprinkler state.
func WidthFactor(sprinklered bool) float64 {
	if sprinklered {
		return WidthFactorSprinklered
	}
	return WidthFactorUnsprinklered
}
