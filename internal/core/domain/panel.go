package domain

// PanelKind distinguishes landings from treads.
type PanelKind string

// Panel kinds.
const (
	PanelLanding PanelKind = "landing"
	PanelTread   PanelKind = "tread"
)

// Panel is one rectangular landing or tread placed in model space.
type Panel struct {
	Kind PanelKind `json:"kind"`

	// Index is the tread number, or zero for landings.
	Index int `json:"index"`

	// Footprint is the panel rectangle in local space.
	Footprint Polygon `json:"footprint"`

	Transform Transform `json:"transform"`
}

// Outline returns the footprint placed in model space.
func (p Panel) Outline() Polygon {
	return p.Footprint.Transformed(p.Transform)
}
