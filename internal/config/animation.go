package config

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Animation is a YAML manifest describing a parameter sweep across frames: a
// camera azimuth swept linearly between ThetaStart and ThetaEnd over Frames
// frames, each rendered from Scene and saved to OutputPattern (a printf
// pattern taking the frame index).
type Animation struct {
	Scene         string  `yaml:"scene"`
	Frames        int     `yaml:"frames"`
	StartFrame    int     `yaml:"startFrame"`
	ThetaStart    float64 `yaml:"thetaStart"`
	ThetaEnd      float64 `yaml:"thetaEnd"`
	OutputPattern string  `yaml:"outputPattern"`
}

// LoadAnimation decodes an animation manifest from r.
func LoadAnimation(r io.Reader) (*Animation, error) {
	a := &Animation{}
	if err := yaml.NewDecoder(r).Decode(a); err != nil {
		return nil, fmt.Errorf("config: decoding animation manifest: %w", err)
	}
	if a.Frames <= 0 {
		return nil, fmt.Errorf("config: animation frames must be positive, got %d", a.Frames)
	}
	return a, nil
}

// CameraPhiAt returns the swept camera azimuth for frame i, linearly
// interpolated between ThetaStart and ThetaEnd over Frames frames.
func (a *Animation) CameraPhiAt(i int) float64 {
	return a.ThetaStart + float64(i)/float64(a.Frames)*(a.ThetaEnd-a.ThetaStart)
}

// OutputPath formats OutputPattern with the frame index.
func (a *Animation) OutputPath(i int) string {
	return fmt.Sprintf(a.OutputPattern, i)
}
