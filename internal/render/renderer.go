// Package render implements the per-pixel ray-marcher: for each pixel it
// builds an initial ray, drives the geodesic engine step by step, and
// queries every scene object for the nearest hit.
package render

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/brightlin/rnray/internal/camera"
	"github.com/brightlin/rnray/internal/object"
	"github.com/brightlin/rnray/internal/screen"
	"github.com/brightlin/rnray/pkg/geo"
	"github.com/brightlin/rnray/pkg/geodesic"
)

// defaultMaxSteps is the integration cap per pixel. Callers rendering
// scenes with deep lensing may raise it to ~200,000.
const defaultMaxSteps = 10000

// Renderer walks a geodesic per pixel against an ordered list of scene
// objects, writing results into a Screen. It is single-threaded and
// cooperative: StepRender processes a bounded number of scanlines and
// returns, so a caller (a UI event loop, or internal/host.Driver) stays
// free to poll for cancellation between calls.
type Renderer struct {
	Engine    geodesic.Engine
	Screen    *screen.Screen
	MaxSteps  int
	AntiAlias bool

	objects []object.Object
	cam     *camera.Camera
	renderY int
	log     zerolog.Logger
}

// New constructs a Renderer over the given screen and engine, with the
// default integration cap applied.
func New(s *screen.Screen, engine geodesic.Engine) *Renderer {
	return &Renderer{
		Engine:   engine,
		Screen:   s,
		MaxSteps: defaultMaxSteps,
		log:      log.Logger,
	}
}

// AddObject appends obj to the scene this renderer queries.
func (r *Renderer) AddObject(obj object.Object) {
	r.objects = append(r.objects, obj)
}

// StartRender binds the camera for subsequent StepRender calls and rewinds
// the row cursor to the top of the image.
func (r *Renderer) StartRender(c *camera.Camera) {
	r.cam = c
	r.renderY = 0
}

// ResetRender rewinds the row cursor without rebinding the camera.
func (r *Renderer) ResetRender() {
	r.renderY = 0
}

// StepRender renders up to `rows` additional scanlines. It returns true if
// rows remain after this call, false once the image is complete. Progress
// is monotonic: repeated calls accumulate rather than restart.
func (r *Renderer) StepRender(rows int) bool {
	maxSteps := r.MaxSteps

	for rows > 0 && r.renderY < r.Screen.Height {
		y := r.renderY
		for x := 0; x < r.Screen.Width; x++ {
			var c geo.Color
			if r.AntiAlias {
				c = r.calculatePixelAA(x, y, maxSteps)
			} else {
				c = r.calculatePixel(x, y, maxSteps)
			}
			*r.Screen.PixelAt(x, y) = c
		}
		r.renderY++
		rows--
	}

	done := r.renderY >= r.Screen.Height
	if done {
		r.log.Debug().Int("height", r.Screen.Height).Msg("render pass complete")
	}
	return !done
}

// calculatePixel renders the pixel at its own center, with no anti-aliasing.
func (r *Renderer) calculatePixel(x, y, maxSteps int) geo.Color {
	a := float64(x)/float64(r.Screen.Width) - 0.5
	b := 0.5 - float64(y)/float64(r.Screen.Height)
	return r.calculatePoint(x, y, 0, a, b, maxSteps)
}

// calculatePixelAA renders the pixel as the mean of 4 sub-rays offset by
// +/-0.25 of a pixel in each axis (2x2 box anti-aliasing).
func (r *Renderer) calculatePixelAA(x, y, maxSteps int) geo.Color {
	a := float64(x)/float64(r.Screen.Width) - 0.5
	b := 0.5 - float64(y)/float64(r.Screen.Height)
	da := 0.25 / float64(r.Screen.Width)
	db := 0.25 / float64(r.Screen.Height)

	var mixer geo.ColorMixer
	mixer.AddSample(r.calculatePoint(x, y, 0, a-da, b-db, maxSteps))
	mixer.AddSample(r.calculatePoint(x, y, 1, a-da, b+db, maxSteps))
	mixer.AddSample(r.calculatePoint(x, y, 2, a+da, b+db, maxSteps))
	mixer.AddSample(r.calculatePoint(x, y, 3, a+da, b-db, maxSteps))
	return mixer.Finish()
}

// calculatePoint drives the engine step by step for one sub-ray, querying
// every object on each segment and returning the nearest hit's color, or
// the zero color if no object claims a hit before maxSteps is exhausted
// (callers are expected to include an outer sky object to bound this).
func (r *Renderer) calculatePoint(x, y, index int, a, b float64, maxSteps int) geo.Color {
	dir := r.cam.RayDirection(a, b)

	prev, next := r.Engine.AllocScratch(x, y, index)
	prev.X, prev.Y, prev.Index = x, y, index
	next.X, next.Y, next.Index = x, y, index

	if err := r.Engine.FireRay(r.cam.Pos, dir, prev); err != nil {
		r.log.Warn().Err(err).Int("x", x).Int("y", y).Msg("fireRay failed")
		return geo.Color{}
	}
	if err := r.Engine.IterateRay(0, prev, next); err != nil {
		r.log.Warn().Err(err).Int("x", x).Int("y", y).Msg("iterateRay failed")
		return geo.Color{}
	}

	var best geo.HitTestResult
	for step := 0; step < maxSteps; step++ {
		found := false
		for _, obj := range r.objects {
			candidate := obj.HitTest(prev, next)
			if candidate.Hit && (!found || candidate.Distance < best.Distance) {
				found = true
				best = candidate
			}
		}
		if found {
			return best.Color
		}

		if err := r.Engine.IterateRay(step, next, prev); err != nil {
			r.log.Warn().Err(err).Int("x", x).Int("y", y).Msg("iterateRay failed")
			return best.Color
		}
		prev, next = next, prev
	}

	r.log.Debug().Int("x", x).Int("y", y).Msg("maxSteps exhausted without a hit")
	return best.Color
}
