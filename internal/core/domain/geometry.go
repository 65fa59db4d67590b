package domain

import (
	"encoding/json"
	"fmt"
	"math"
)

// Vector3 is a point or offset in model space. Units are meters.
type Vector3 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Add returns v + o.
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o.
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Length returns the Euclidean length of v.
func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// IsAlmostEqualTo reports whether every axis of v is within tolerance of o.
func (v Vector3) IsAlmostEqualTo(o Vector3, tolerance float64) bool {
	return math.Abs(v.X-o.X) <= tolerance &&
		math.Abs(v.Y-o.Y) <= tolerance &&
		math.Abs(v.Z-o.Z) <= tolerance
}

// String returns a compact representation of v.
func (v Vector3) String() string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}

// Transform places local geometry in model space: a rotation in degrees
// about the +Z axis followed by a translation to Origin.
type Transform struct {
	Origin   Vector3 `json:"origin" yaml:"origin"`
	Rotation float64 `json:"rotation" yaml:"rotation"`
}

// Translation returns a transform that only moves geometry by offset.
func Translation(offset Vector3) Transform {
	return Transform{Origin: offset}
}

// Apply maps a local point into model space.
func (t Transform) Apply(p Vector3) Vector3 {
	if t.Rotation == 0 {
		return p.Add(t.Origin)
	}
	rad := t.Rotation * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Vector3{
		X: p.X*cos - p.Y*sin + t.Origin.X,
		Y: p.X*sin + p.Y*cos + t.Origin.Y,
		Z: p.Z + t.Origin.Z,
	}
}

// Then returns the transform equivalent to applying t and then next.
func (t Transform) Then(next Transform) Transform {
	return Transform{
		Origin:   next.Apply(t.Origin),
		Rotation: t.Rotation + next.Rotation,
	}
}

// IsAlmostEqualTo reports whether both transforms place geometry identically
// within tolerance.
func (t Transform) IsAlmostEqualTo(o Transform, tolerance float64) bool {
	return t.Origin.IsAlmostEqualTo(o.Origin, tolerance) &&
		math.Abs(t.Rotation-o.Rotation) <= tolerance
}

// Polygon is a closed planar loop. The closing edge is implied.
// It serializes as a bare list of vertices.
type Polygon struct {
	Vertices []Vector3 `validate:"min=3"`
}

// MarshalJSON encodes the polygon as its vertex list.
func (p Polygon) MarshalJSON() ([]byte, error) {
	if p.Vertices == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(p.Vertices)
}

// UnmarshalJSON decodes a vertex list.
func (p *Polygon) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &p.Vertices)
}

// MarshalYAML encodes the polygon as its vertex list.
func (p Polygon) MarshalYAML() (any, error) {
	if p.Vertices == nil {
		return []Vector3{}, nil
	}
	return p.Vertices, nil
}

// UnmarshalYAML decodes a vertex list.
func (p *Polygon) UnmarshalYAML(unmarshal func(any) error) error {
	return unmarshal(&p.Vertices)
}

// Rectangle returns the axis-aligned rectangle spanning min and max,
// counter-clockwise from min, at min's elevation.
func Rectangle(min, max Vector3) Polygon {
	return Polygon{Vertices: []Vector3{
		{X: min.X, Y: min.Y, Z: min.Z},
		{X: max.X, Y: min.Y, Z: min.Z},
		{X: max.X, Y: max.Y, Z: min.Z},
		{X: min.X, Y: max.Y, Z: min.Z},
	}}
}

// signedArea returns the XY shoelace area; positive when counter-clockwise.
func (p Polygon) signedArea() float64 {
	n := len(p.Vertices)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := range n {
		a := p.Vertices[i]
		b := p.Vertices[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// Area returns the absolute plan area of the polygon.
func (p Polygon) Area() float64 {
	return math.Abs(p.signedArea())
}

// Centroid returns the area centroid of the polygon. Degenerate polygons
// fall back to the vertex average.
func (p Polygon) Centroid() Vector3 {
	n := len(p.Vertices)
	if n == 0 {
		return Vector3{}
	}

	var z float64
	for _, v := range p.Vertices {
		z += v.Z
	}
	z /= float64(n)

	area := p.signedArea()
	if math.Abs(area) < 1e-12 {
		var sum Vector3
		for _, v := range p.Vertices {
			sum = sum.Add(v)
		}
		return Vector3{X: sum.X / float64(n), Y: sum.Y / float64(n), Z: z}
	}

	var cx, cy float64
	for i := range n {
		a := p.Vertices[i]
		b := p.Vertices[(i+1)%n]
		cross := a.X*b.Y - b.X*a.Y
		cx += (a.X + b.X) * cross
		cy += (a.Y + b.Y) * cross
	}
	return Vector3{X: cx / (6 * area), Y: cy / (6 * area), Z: z}
}

// Bounds returns the minimum and maximum corners of the polygon.
func (p Polygon) Bounds() (Vector3, Vector3) {
	if len(p.Vertices) == 0 {
		return Vector3{}, Vector3{}
	}
	lo, hi := p.Vertices[0], p.Vertices[0]
	for _, v := range p.Vertices[1:] {
		lo = Vector3{X: math.Min(lo.X, v.X), Y: math.Min(lo.Y, v.Y), Z: math.Min(lo.Z, v.Z)}
		hi = Vector3{X: math.Max(hi.X, v.X), Y: math.Max(hi.Y, v.Y), Z: math.Max(hi.Z, v.Z)}
	}
	return lo, hi
}

// Transformed returns a copy of the polygon with every vertex mapped by t.
func (p Polygon) Transformed(t Transform) Polygon {
	out := make([]Vector3, len(p.Vertices))
	for i, v := range p.Vertices {
		out[i] = t.Apply(v)
	}
	return Polygon{Vertices: out}
}

// IsAlmostEqualTo reports whether both polygons have the same vertices in
// the same order, each within tolerance.
func (p Polygon) IsAlmostEqualTo(o Polygon, tolerance float64) bool {
	if len(p.Vertices) != len(o.Vertices) {
		return false
	}
	for i := range p.Vertices {
		if !p.Vertices[i].IsAlmostEqualTo(o.Vertices[i], tolerance) {
			return false
		}
	}
	return true
}
