package object

import (
	"math"
	"testing"

	"github.com/brightlin/rnray/pkg/geo"
	"github.com/brightlin/rnray/pkg/geodesic"
)

func ray(pos geo.Vec3) *geodesic.Ray {
	return &geodesic.Ray{Pos: pos}
}

func TestSphereHitTestCrossing(t *testing.T) {
	s := &Sphere{Center: geo.NewVec3(0, 0, 0), Radius: 1, Color: geo.Color{R: 255, A: 255}}

	prev := ray(geo.NewVec3(0, 0, 0.5))
	next := ray(geo.NewVec3(0, 0, 1.5))

	got := s.HitTest(prev, next)
	if !got.Hit {
		t.Fatalf("expected a hit crossing the surface outward")
	}
	if got.Color != s.Color {
		t.Errorf("Color = %v, want %v", got.Color, s.Color)
	}
	if got.Distance <= 0 {
		t.Errorf("Distance = %v, want > 0", got.Distance)
	}
}

// TestSphereHitTestSymmetry checks the entering/leaving distances on a
// non-radial segment against the entry parameter l a chord-intersection
// solve would give: forward distance ~= l*|segment|, and swapping endpoints
// gives ~= (1-l)*|segment|. Sphere.HitTest approximates this via the
// radial sign-change distance rather than solving for l directly, so the
// two are only approximately equal.
func TestSphereHitTestSymmetry(t *testing.T) {
	s := &Sphere{Center: geo.NewVec3(0, 0, 0), Radius: 1, Color: geo.Color{R: 255, A: 255}}

	pos1 := geo.NewVec3(0.95, 0, 0.1)
	pos2 := geo.NewVec3(1.05, 0, 0.15)

	l, ok := entryParameter(pos1, pos2, s.Radius)
	if !ok {
		t.Fatalf("entryParameter found no root for this segment")
	}
	segLen := pos2.Sub(pos1).Len()

	forward := s.HitTest(ray(pos1), ray(pos2))
	backward := s.HitTest(ray(pos2), ray(pos1))
	if !forward.Hit || !backward.Hit {
		t.Fatalf("expected a hit in both directions, got forward=%v backward=%v", forward.Hit, backward.Hit)
	}

	const tol = 0.01
	if wantForward := l * segLen; math.Abs(forward.Distance-wantForward) > tol {
		t.Errorf("forward distance = %v, want ~%v", forward.Distance, wantForward)
	}
	if wantBackward := (1 - l) * segLen; math.Abs(backward.Distance-wantBackward) > tol {
		t.Errorf("backward distance = %v, want ~%v", backward.Distance, wantBackward)
	}
}

func TestSphereHitTestMiss(t *testing.T) {
	s := &Sphere{Center: geo.NewVec3(0, 0, 0), Radius: 1, Color: geo.Color{R: 255, A: 255}}

	prev := ray(geo.NewVec3(0, 0, 2))
	next := ray(geo.NewVec3(0, 0, 3))

	if got := s.HitTest(prev, next); got.Hit {
		t.Errorf("expected no hit for a segment entirely outside the sphere, got %v", got)
	}
}
