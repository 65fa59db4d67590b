package domain

// BuildingModel is the planning input supplied by the hosting application.
type BuildingModel struct {
	Name        string           `json:"name" yaml:"name"`
	Sprinklered bool             `json:"sprinklered" yaml:"sprinklered"`
	Levels      []Level          `json:"levels" yaml:"levels" validate:"dive"`
	Cores       []StructuralCore `json:"cores" yaml:"cores" validate:"dive"`
	Overrides   OverrideBatch    `json:"overrides" yaml:"overrides"`
}

// HasVerticalEgress reports whether the model has enough levels for a stair
// to connect. Fewer than two levels is a no-op, not an error.
func (m BuildingModel) HasVerticalEgress() bool {
	return len(m.Levels) >= 2
}
