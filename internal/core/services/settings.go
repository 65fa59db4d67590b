package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/egress-cli/internal/core/domain"
	"github.com/custodia-labs/egress-cli/internal/core/ports/driven"
	"github.com/custodia-labs/egress-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage. Lengths marked _in are stored in
// inches and converted to meters on read.
const (
	keySprinklered       = "code.sprinklered"
	keyAreaFactor        = "code.area_factor"
	keyTargetRiser       = "code.target_riser_in"
	keyTreadDepth        = "code.tread_depth_in"
	keyAccessibleWidth   = "code.accessible_min_width_in"
	keyAccessibleLanding = "code.accessible_landing_in"
	keyExtrusionMargin   = "code.extrusion_margin"
	keyMatchTolerance    = "match.tolerance"
	keyAmbiguity         = "match.ambiguity"
)

var settingsKeys = []string{
	keySprinklered,
	keyAreaFactor,
	keyTargetRiser,
	keyTreadDepth,
	keyAccessibleWidth,
	keyAccessibleLanding,
	keyExtrusionMargin,
	keyMatchTolerance,
	keyAmbiguity,
}

// SettingsService manages the code basis stored in the config store.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get returns the stored settings with defaults for anything unset.
func (s *SettingsService) Get() (domain.CodeSettings, error) {
	d := domain.DefaultCodeSettings()

	settings := domain.CodeSettings{
		Sprinklered:             s.getBool(keySprinklered, d.Sprinklered),
		AreaFactor:              s.getFloat(keyAreaFactor, d.AreaFactor),
		TargetRiserHeight:       s.getInches(keyTargetRiser, d.TargetRiserHeight),
		TreadDepth:              s.getInches(keyTreadDepth, d.TreadDepth),
		AccessibleMinTreadWidth: s.getInches(keyAccessibleWidth, d.AccessibleMinTreadWidth),
		AccessibleLandingDepth:  s.getInches(keyAccessibleLanding, d.AccessibleLandingDepth),
		ExtrusionMargin:         s.getFloat(keyExtrusionMargin, d.ExtrusionMargin),
		MatchTolerance:          s.getFloat(keyMatchTolerance, d.MatchTolerance),
		Ambiguity:               d.Ambiguity,
	}
	if policy := domain.AmbiguityPolicy(s.configStore.GetString(keyAmbiguity)); policy.IsValid() {
		settings.Ambiguity = policy
	}

	if err := settings.Validate(); err != nil {
		return domain.CodeSettings{}, fmt.Errorf("settings in %s: %w", s.configStore.Path(), err)
	}
	return settings, nil
}

// Set parses value for key, checks the resulting settings are valid and
// persists it.
func (s *SettingsService) Set(key, value string) error {
	typed, err := parseSetting(key, strings.TrimSpace(value))
	if err != nil {
		return err
	}

	previous, existed := s.configStore.Get(key)
	if err := s.configStore.Set(key, typed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	if _, err := s.Get(); err != nil {
		// Put the previous value back so a bad value is never left stored.
		if existed {
			_ = s.configStore.Set(key, previous)
		} else {
			_ = s.configStore.Delete(key)
		}
		return err
	}
	return nil
}

// Reset removes a stored setting.
func (s *SettingsService) Reset(key string) error {
	if !isSettingsKey(key) {
		return fmt.Errorf("%w: %s", domain.ErrUnknownSetting, key)
	}
	return s.configStore.Delete(key)
}

// Keys returns every recognised key in display order.
func (s *SettingsService) Keys() []string {
	return append([]string(nil), settingsKeys...)
}

func parseSetting(key, value string) (any, error) {
	switch key {
	case keySprinklered:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s expects true or false", domain.ErrInvalidInput, key)
		}
		return b, nil
	case keyAmbiguity:
		policy := domain.AmbiguityPolicy(value)
		if !policy.IsValid() {
			return nil, fmt.Errorf("%w: %s expects %q or %q", domain.ErrInvalidInput, key,
				domain.AmbiguityFirst, domain.AmbiguityReject)
		}
		return policy.String(), nil
	case keyAreaFactor, keyTargetRiser, keyTreadDepth, keyAccessibleWidth,
		keyAccessibleLanding, keyExtrusionMargin, keyMatchTolerance:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s expects a number", domain.ErrInvalidInput, key)
		}
		return f, nil
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownSetting, key)
	}
}

func isSettingsKey(key string) bool {
	for _, k := range settingsKeys {
		if k == key {
			return true
		}
	}
	return false
}

func (s *SettingsService) getBool(key string, fallback bool) bool {
	if _, ok := s.configStore.Get(key); !ok {
		return fallback
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getFloat(key string, fallback float64) float64 {
	if _, ok := s.configStore.Get(key); !ok {
		return fallback
	}
	return s.configStore.GetFloat(key)
}

// getInches reads a value stored in inches and returns meters.
func (s *SettingsService) getInches(key string, fallback float64) float64 {
	if _, ok := s.configStore.Get(key); !ok {
		return fallback
	}
	return domain.InchesToMeters(s.configStore.GetFloat(key))
}
