package geodesic_test

import (
	"math"
	"testing"

	"github.com/brightlin/rnray/pkg/geo"
	"github.com/brightlin/rnray/pkg/geodesic"
)

func TestFlatSpaceIsStraightLine(t *testing.T) {
	const dlambda = 0.01
	engine := geodesic.NewReissnerEngine(0, 0, dlambda, 1)

	pos := geo.NewVec3(7, math.Pi/2, 0)
	dir := geo.NewVec3(0, 1, 0)

	prev, next := engine.AllocScratch(0, 0, 0)
	if err := engine.FireRay(pos, dir, prev); err != nil {
		t.Fatalf("FireRay: %v", err)
	}

	pos0 := prev.Pos
	if err := engine.IterateRay(0, prev, next); err != nil {
		t.Fatalf("IterateRay: %v", err)
	}

	// Recover v0 by comparing the first two points, since v is private
	// to the engine: for rg=rq=0 the leapfrog's velocity never changes.
	v0 := next.Pos.Sub(pos0).Div(dlambda)

	const steps = 50
	for i := 1; i < steps; i++ {
		if err := engine.IterateRay(i, next, prev); err != nil {
			t.Fatalf("IterateRay step %d: %v", i, err)
		}
		prev, next = next, prev
	}

	want := pos0.Add(v0.Scale(dlambda * steps))
	got := next.Pos

	const tol = 1e-9
	if math.Abs(got.X-want.X) > tol || math.Abs(got.Y-want.Y) > tol || math.Abs(got.Z-want.Z) > tol {
		t.Errorf("after %d steps, pos = %v, want %v", steps, got, want)
	}
}

func TestConservedQuantityMatchesFireRay(t *testing.T) {
	engine := geodesic.NewReissnerEngine(0.5, 0.5, 0.01, 1)

	pos := geo.NewVec3(7, math.Pi/2, 0)
	dir := geo.NewVec3(0, 1, 0.3)

	prev, next := engine.AllocScratch(0, 0, 0)
	if err := engine.FireRay(pos, dir, prev); err != nil {
		t.Fatalf("FireRay: %v", err)
	}

	// C is private; verify it is preserved across iteration instead, by
	// checking |pos x v|^2 stays close to its initial value over a
	// handful of steps (drift is the expected error metric, not exact
	// equality, since v changes but C is carried forward unrecomputed).
	wantC := prev.Pos.Cross(dirToVelocityApprox(engine, pos, dir)).Len2()

	if err := engine.IterateRay(0, prev, next); err != nil {
		t.Fatalf("IterateRay: %v", err)
	}

	for i := 0; i < 20; i++ {
		if err := engine.IterateRay(i, next, prev); err != nil {
			t.Fatalf("IterateRay: %v", err)
		}
		prev, next = next, prev
	}

	gotC := next.Pos.Cross(next.Pos.Sub(prev.Pos).Div(0.01)).Len2()
	if math.Abs(gotC-wantC)/wantC > 0.5 {
		t.Errorf("conserved quantity drifted too far: got %v, want near %v", gotC, wantC)
	}
}

// dirToVelocityApprox recomputes the Cartesian velocity FireRay would have
// produced, for comparison purposes only (v itself is engine-private).
func dirToVelocityApprox(engine *geodesic.ReissnerEngine, pos, dir geo.Vec3) geo.Vec3 {
	r, theta, phi := pos.X, pos.Y, pos.Z
	st, ct := math.Sincos(theta)
	sp, cp := math.Sincos(phi)
	f := math.Sqrt(1 - engine.Rg/r + engine.Rq2/(r*r))
	return geo.NewVec3(
		-dir.X*sp-(dir.Z*ct+dir.Y*f*st)*cp,
		dir.X*cp-(dir.Z*ct+dir.Y*f*st)*sp,
		dir.Z*st-dir.Y*f*ct,
	).Scale(engine.Omega)
}

func TestOuterHorizon(t *testing.T) {
	cases := []struct {
		rg, rq2 float64
		wantR   float64
		wantOK  bool
	}{
		// rq^2 == rg^2/4: the two horizons merge at rg/2.
		{rg: 0.5, rq2: 0.0625, wantR: 0.25, wantOK: true},
		{rg: 0.5, rq2: 0.5, wantR: 0, wantOK: false}, // rq^2 > rg^2/4
		{rg: 0, rq2: 0, wantR: 0, wantOK: true},
	}

	for _, c := range cases {
		r, ok := geodesic.OuterHorizon(c.rg, c.rq2)
		if ok != c.wantOK {
			t.Errorf("OuterHorizon(%v, %v) ok = %v, want %v", c.rg, c.rq2, ok, c.wantOK)
			continue
		}
		if ok && math.Abs(r-c.wantR) > 1e-9 {
			t.Errorf("OuterHorizon(%v, %v) = %v, want %v", c.rg, c.rq2, r, c.wantR)
		}
	}
}
