package object

import (
	"math"

	"github.com/brightlin/rnray/pkg/geo"
	"github.com/brightlin/rnray/pkg/geodesic"
)

// Disc is a flat annulus on the z=0 plane, checkered by azimuthal division.
type Disc struct {
	InnerRadius float64   `json:"innerRadius"`
	OuterRadius float64   `json:"outerRadius"`
	Color1      geo.Color `json:"color1"`
	Color2      geo.Color `json:"color2"`
	Div         int       `json:"divisions"`
	patch       float64
}

func (d *Disc) init() {
	d.patch = 2 * math.Pi / float64(d.Div)
}

// HitTest reports a hit when the segment crosses the z=0 plane within the
// disc's annulus.
func (d *Disc) HitTest(prev, next *geodesic.Ray) geo.HitTestResult {
	z1, z2 := prev.Pos.Z, next.Pos.Z
	if (z1 > 0) == (z2 > 0) {
		return geo.HitTestResult{}
	}

	l := z1 / (z1 - z2)
	p := prev.Pos.Add(next.Pos.Sub(prev.Pos).Scale(l))

	rho := math.Hypot(p.X, p.Y)
	if rho <= d.InnerRadius || rho >= d.OuterRadius {
		return geo.HitTestResult{}
	}

	idx := int((math.Atan2(p.Y, p.X)+math.Pi)/d.patch) % 2
	c := d.Color1
	if idx == 1 {
		c = d.Color2
	}

	segment := next.Pos.Sub(prev.Pos)
	return geo.HitTestResult{Hit: true, Color: c, Distance: l * segment.Len()}
}
