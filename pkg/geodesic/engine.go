// Package geodesic integrates photon world-lines one affine step at a time
// under a chosen spacetime metric.
package geodesic

import "github.com/brightlin/rnray/pkg/geo"

// Ray is a point on a geodesic: the pixel (and sub-sample index) that owns
// it, and its world-space position. Concrete engines may stash their own
// private state (velocity, conserved quantities) in the unexported fields
// below; only code in this package reads or writes them. Objects and the
// renderer only ever see X, Y, Index and Pos.
type Ray struct {
	X, Y  int
	Index int
	Pos   geo.Vec3

	// v and c are private to the Reissner-Nordstrom engine: Cartesian
	// velocity and the conserved quantity |pos x v|^2. A hypothetical
	// second engine with different private state would add its own
	// fields here rather than reusing these.
	v geo.Vec3
	c float64
}

// Engine is the polymorphic contract the ray-marcher drives. Implementations
// must be pure with respect to their own configuration: IterateRay may be
// called many thousands of times per pixel and must not allocate in steady
// state.
type Engine interface {
	// AllocScratch returns two scratch Ray slots the renderer will
	// alternate between for a single pixel. The engine owns this storage;
	// it need not be distinct across pixels or sub-samples, since the
	// renderer never holds onto a pair past a single calculatePoint call.
	AllocScratch(x, y, index int) (prev, next *Ray)

	// FireRay seeds out with an initial world-space position and
	// direction. pos and dir are given in whatever coordinates this
	// engine accepts (the Reissner-Nordstrom engine takes pos in
	// spherical coordinates and dir in the local orthonormal frame).
	// Returns an error only for a caller-detectable misconfiguration;
	// ok is the expected case.
	FireRay(pos, dir geo.Vec3, out *Ray) error

	// IterateRay advances one integration step from in into out. step is
	// the zero-based index of this step within the current pixel, for
	// engines whose step behavior depends on it (the base engine ignores
	// it).
	IterateRay(step int, in, out *Ray) error
}
