package object

import (
	"math"

	"github.com/brightlin/rnray/pkg/geo"
	"github.com/brightlin/rnray/pkg/geodesic"
)

// StripedSphere is a sphere checkered into alternating colors by theta and
// phi division counts.
type StripedSphere struct {
	Center     geo.Vec3  `json:"center"`
	Radius     float64   `json:"radius"`
	Color1     geo.Color `json:"color1"`
	Color2     geo.Color `json:"color2"`
	PhiDiv     int       `json:"phiDivisions"`
	ThetaDiv   int       `json:"thetaDivisions"`
	phiPatch   float64
	thetaPatch float64
}

func (s *StripedSphere) init() {
	s.phiPatch = 2 * math.Pi / float64(s.PhiDiv)
	s.thetaPatch = math.Pi / float64(s.ThetaDiv)
}

// HitTest reports a hit when the segment crosses the sphere's surface, and
// picks the entry point's theta/phi checker cell for the color.
func (s *StripedSphere) HitTest(prev, next *geodesic.Ray) geo.HitTestResult {
	pos1 := prev.Pos.Sub(s.Center)
	pos2 := next.Pos.Sub(s.Center)
	r1 := pos1.Len()
	r2 := pos2.Len()

	if !((r1 < s.Radius && r2 > s.Radius) || (r1 > s.Radius && r2 < s.Radius)) {
		return geo.HitTestResult{}
	}

	l, ok := entryParameter(pos1, pos2, s.Radius)
	if !ok {
		return geo.HitTestResult{}
	}

	hit := pos1.Add(pos2.Sub(pos1).Scale(l))
	sph := geo.CartesianToSpherical(hit)

	i := int(sph.Y/s.thetaPatch) % 2
	j := int(sph.Z/s.phiPatch) % 2

	c := s.Color2
	if (i^j)&1 == 1 {
		c = s.Color1
	}

	segment := next.Pos.Sub(prev.Pos)
	return geo.HitTestResult{Hit: true, Color: c, Distance: l * segment.Len()}
}

// entryParameter solves a*l^2 + b*l + c = 0 for the segment parameter where
// |pos1 + l*(pos2-pos1)| == radius, a = |pos1|^2+|pos2|^2-2*pos1.pos2,
// b = 2*(pos1.pos2 - |pos1|^2), c = |pos1|^2 - radius^2, returning the
// smaller root that lies in [0, 1].
func entryParameter(pos1, pos2 geo.Vec3, radius float64) (float64, bool) {
	dot := pos1.Dot(pos2)
	a := pos1.Len2() + pos2.Len2() - 2*dot
	b := 2 * (dot - pos1.Len2())
	c := pos1.Len2() - radius*radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 || a == 0 {
		return 0, false
	}
	sqrtDisc := math.Sqrt(discriminant)
	l0 := (-b - sqrtDisc) / (2 * a)
	l1 := (-b + sqrtDisc) / (2 * a)
	if l0 > l1 {
		l0, l1 = l1, l0
	}

	if l0 >= 0 && l0 <= 1 {
		return l0, true
	}
	if l1 >= 0 && l1 <= 1 {
		return l1, true
	}
	return 0, false
}
