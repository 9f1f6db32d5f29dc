// Package config decodes the on-disk documents that describe a render: a
// per-scene JSON document (engine parameters, camera, objects) and a
// per-animation YAML manifest (a parameter sweep across frames).
package config

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/brightlin/rnray/internal/camera"
	"github.com/brightlin/rnray/internal/scene"
	"github.com/brightlin/rnray/pkg/geo"
	"github.com/brightlin/rnray/pkg/geodesic"
)

// EngineConfig is the JSON shape of a Reissner-Nordstrom engine.
type EngineConfig struct {
	Rg      float64 `json:"rg"`
	Rq      float64 `json:"rq"`
	DLambda float64 `json:"dLambda"`
	Omega   float64 `json:"omega"`
}

// Build constructs the concrete engine this configuration describes.
func (e EngineConfig) Build() *geodesic.ReissnerEngine {
	return geodesic.NewReissnerEngine(e.Rg, e.Rq, e.DLambda, e.Omega)
}

// CameraConfig is the JSON shape of a pinhole camera: a position in the
// engine's input coordinates (spherical (r, theta, phi) for the
// Reissner-Nordstrom engine), a forward direction, a world-up hint, and a
// field-of-view angle.
type CameraConfig struct {
	Pos    geo.Vec3 `json:"position"`
	Dir    geo.Vec3 `json:"direction"`
	Up     geo.Vec3 `json:"up"`
	FovDeg float64  `json:"fovDegrees"`
}

// Build constructs a camera.Camera for the given image aspect ratio.
func (c CameraConfig) Build(ratio float64) (camera.Camera, error) {
	return camera.New(c.Pos, c.Dir, c.Up, c.FovDeg, ratio)
}

// Document is a complete scene document: image dimensions, engine
// parameters, camera, and the object list.
type Document struct {
	Width  int          `json:"width"`
	Height int          `json:"height"`
	Engine EngineConfig `json:"engine"`
	Camera CameraConfig `json:"camera"`
	Scene  scene.Scene  `json:"scene"`

	AntiAlias bool `json:"antiAlias"`
	MaxSteps  int  `json:"maxSteps"`
}

// DecodeDocument decodes a scene document from r.
func DecodeDocument(r io.Reader) (*Document, error) {
	doc := &Document{}
	if err := json.NewDecoder(r).Decode(doc); err != nil {
		return nil, fmt.Errorf("config: decoding scene document: %w", err)
	}
	if doc.Width <= 0 || doc.Height <= 0 {
		return nil, fmt.Errorf("config: width and height must be positive, got %dx%d", doc.Width, doc.Height)
	}
	return doc, nil
}
