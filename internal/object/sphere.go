package object

import (
	"github.com/brightlin/rnray/pkg/geo"
	"github.com/brightlin/rnray/pkg/geodesic"
)

// Sphere is a solid sphere with a single flat color.
type Sphere struct {
	Center geo.Vec3  `json:"center"`
	Radius float64   `json:"radius"`
	Color  geo.Color `json:"color"`
}

// HitTest reports a hit when prev and next lie on opposite sides of the
// sphere's surface (exactly one of them inside). Distance is measured from
// prev, as |r1 - R| where r1 = |prev - center|.
func (s *Sphere) HitTest(prev, next *geodesic.Ray) geo.HitTestResult {
	r1 := prev.Pos.Sub(s.Center).Len()
	r2 := next.Pos.Sub(s.Center).Len()

	switch {
	case r1 < s.Radius && r2 > s.Radius:
		return geo.HitTestResult{Hit: true, Color: s.Color, Distance: s.Radius - r1}
	case r1 > s.Radius && r2 < s.Radius:
		return geo.HitTestResult{Hit: true, Color: s.Color, Distance: r1 - s.Radius}
	default:
		return geo.HitTestResult{}
	}
}
