package object

import (
	"fmt"
	"math"

	"github.com/brightlin/rnray/pkg/geo"
	"github.com/brightlin/rnray/pkg/geodesic"
)

// ImageLoader loads a bitmap from a path. Satisfied by internal/host's
// bitmap loader; kept as a function type here so this package never imports
// the host package (and never needs to know about BMP/PNG decoding).
type ImageLoader func(path string) (width, height int, pixels []geo.Color, err error)

// textureLoader is overridden in tests; production code sets it once via
// SetImageLoader during program startup.
var textureLoader ImageLoader

// SetImageLoader installs the bitmap loader used to resolve
// TexturedSphere.Path into a Texture. Call once, from main, before
// unmarshalling any scene documents that reference texture files.
func SetImageLoader(loader ImageLoader) {
	textureLoader = loader
}

// TexturedSphere is a sphere whose surface color comes from an
// equirectangularly-mapped bitmap rather than a flat/checker color.
type TexturedSphere struct {
	Center  geo.Vec3 `json:"center"`
	Radius  float64  `json:"radius"`
	Path    string   `json:"texture"`
	Phase   float64  `json:"phase"`
	texture *Texture
}

func (s *TexturedSphere) init() error {
	if textureLoader == nil {
		return fmt.Errorf("texturedSphere %q: no image loader installed", s.Path)
	}
	w, h, pixels, err := textureLoader(s.Path)
	if err != nil {
		return fmt.Errorf("texturedSphere: loading %q: %w", s.Path, err)
	}
	s.texture = &Texture{Width: w, Height: h, Pixels: pixels}
	return nil
}

// HitTest reports a hit when the segment crosses the sphere's surface,
// sampling the texture at the entry point's equirectangular u/v.
func (s *TexturedSphere) HitTest(prev, next *geodesic.Ray) geo.HitTestResult {
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
	theta, phi := sph.Y, sph.Z

	u := math.Mod(phi+s.Phase, 2*math.Pi) / (2 * math.Pi) * float64(s.texture.Width)
	if u < 0 {
		u += float64(s.texture.Width)
	}
	v := (1 - math.Cos(theta)) / 2 * float64(s.texture.Height)

	segment := next.Pos.Sub(prev.Pos)
	return geo.HitTestResult{Hit: true, Color: s.texture.Sample(u, v), Distance: l * segment.Len()}
}
