// Package camera implements a pinhole camera: a position, a unit forward
// axis, and two image-plane basis vectors scaled so that image coordinates
// in [-0.5, 0.5]^2 map linearly onto ray directions before renormalization.
package camera

import (
	"fmt"
	"math"

	"github.com/brightlin/rnray/pkg/geo"
)

// Camera is immutable after construction except that callers may mutate
// Pos directly between frames of an animation. Binding a Camera to a
// render pass (Renderer.StartRender) is by reference: mutating it while a
// pass is in flight is undefined.
type Camera struct {
	Pos    geo.Vec3
	Axis   geo.Vec3
	Up     geo.Vec3
	Across geo.Vec3
	Ratio  float64
}

// New builds a Camera from a field-of-view angle fovDeg (full angle, not
// half), a world-space forward direction dir, a world-up hint, and an
// aspect ratio (width/height). upHint need not be perpendicular to dir; it
// is projected into the plane orthogonal to the (normalized) forward axis.
func New(pos, dir, upHint geo.Vec3, fovDeg, ratio float64) (Camera, error) {
	axis := dir.Normalize()
	a := math.Tan(fovDeg / 2 * math.Pi / 180)

	nRaw := upHint.Sub(axis.Scale(axis.Dot(upHint)))
	if nRaw.Len2() == 0 {
		return Camera{}, fmt.Errorf("camera: up hint is parallel to the forward direction")
	}
	n := nRaw.Normalize()

	return Camera{
		Pos:    pos,
		Axis:   axis,
		Up:     n.Scale(a),
		Across: axis.Cross(n).Normalize().Scale(a * ratio),
		Ratio:  ratio,
	}, nil
}

// RayDirection returns the (unnormalized, then normalized) world-space ray
// direction for image coordinates (a, b) in [-0.5, 0.5]^2.
func (c Camera) RayDirection(a, b float64) geo.Vec3 {
	return c.Axis.Add(c.Across.Scale(a)).Add(c.Up.Scale(b)).Normalize()
}
