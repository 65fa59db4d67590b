package driving

import "github.com/custodia-labs/egress-cli/internal/core/domain"

// SettingsService manages the code basis used for planning.
type SettingsService interface {
	// Get returns current settings with defaults filled in.
	Get() (domain.CodeSettings, error)

	// Set parses and stores one setting by key.
	Set(key, value string) error

	// Reset removes a stored setting so its default applies.
	Reset(key string) error

	// Keys returns every recognised settings key in display order.
	Keys() []string
}
