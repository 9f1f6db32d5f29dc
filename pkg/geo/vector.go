// Package geo provides the vector and color primitives shared by the
// geodesic engine, scene objects, and renderer.
package geo

import (
	"encoding/json"
	"math"
)

// Vec3 is a triple of double-precision components plus an opaque patch id.
// The patch id is not an algebraic quantity: it rides along for the
// convenience of objects that need to tag a vector without a side channel,
// and is carried from the left operand by every binary operator below.
type Vec3 struct {
	X, Y, Z float64
	PatchID int
}

// vec3JSON is Vec3's wire form: PatchID never crosses the JSON boundary,
// since it is meaningful only as a runtime tag propagated by the vector
// operators, not as configuration data.
type vec3JSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// MarshalJSON encodes only the X/Y/Z components.
func (v Vec3) MarshalJSON() ([]byte, error) {
	return json.Marshal(vec3JSON{X: v.X, Y: v.Y, Z: v.Z})
}

// UnmarshalJSON decodes X/Y/Z components, leaving PatchID at zero.
func (v *Vec3) UnmarshalJSON(b []byte) error {
	var w vec3JSON
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	v.X, v.Y, v.Z = w.X, w.Y, w.Z
	return nil
}


// NewVec3 builds a Vec3 with no patch id.
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the componentwise sum, tagged with v's patch id.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z, PatchID: v.PatchID}
}

// Sub returns the componentwise difference, tagged with v's patch id.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z, PatchID: v.PatchID}
}

// Neg returns the negation of v.
func (v Vec3) Neg() Vec3 {
	return Vec3{X: -v.X, Y: -v.Y, Z: -v.Z, PatchID: v.PatchID}
}

// Scale returns v scaled by a.
func (v Vec3) Scale(a float64) Vec3 {
	return Vec3{X: v.X * a, Y: v.Y * a, Z: v.Z * a, PatchID: v.PatchID}
}

// Div returns v divided by a.
func (v Vec3) Div(a float64) Vec3 {
	return Vec3{X: v.X / a, Y: v.Y / a, Z: v.Z / a, PatchID: v.PatchID}
}

// Dot returns the dot product of v and other.
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product v x other, tagged with v's patch id.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X:       v.Y*other.Z - v.Z*other.Y,
		Y:       v.Z*other.X - v.X*other.Z,
		Z:       v.X*other.Y - v.Y*other.X,
		PatchID: v.PatchID,
	}
}

// Len2 returns the squared Euclidean length of v.
func (v Vec3) Len2() float64 {
	return v.Dot(v)
}

// Len returns the Euclidean length of v.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.Len2())
}

// Normalize returns v scaled to unit length. The result is undefined for
// the zero vector: callers must not normalize a zero-length vector.
func (v Vec3) Normalize() Vec3 {
	return v.Div(v.Len())
}

// WithPatchID returns v with its patch id replaced.
func (v Vec3) WithPatchID(id int) Vec3 {
	v.PatchID = id
	return v
}
