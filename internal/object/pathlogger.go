package object

import (
	"github.com/brightlin/rnray/pkg/geo"
	"github.com/brightlin/rnray/pkg/geodesic"
	"github.com/rs/zerolog/log"
)

// PathLogger never reports a hit; it exists purely to log the geodesic
// position of one chosen pixel on every integration step, for debugging a
// single ray's trajectory without disturbing the rendered scene.
type PathLogger struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// HitTest logs prev's position when the segment belongs to the configured
// pixel, and always reports no hit.
func (p *PathLogger) HitTest(prev, next *geodesic.Ray) geo.HitTestResult {
	if prev.X == p.X && prev.Y == p.Y {
		log.Debug().Int("x", prev.X).Int("y", prev.Y).
			Float64("px", prev.Pos.X).Float64("py", prev.Pos.Y).Float64("pz", prev.Pos.Z).
			Msg("geodesic step")
	}
	return geo.HitTestResult{}
}
