// Package screen holds the renderer's output pixel buffer.
package screen

import "github.com/brightlin/rnray/pkg/geo"

// Screen is a dense, row-major (y*width+x) grid of Colors.
type Screen struct {
	Width, Height int
	pixels        []geo.Color
}

// New constructs a Screen of the given dimensions with every pixel set to
// the default opaque black.
func New(width, height int) *Screen {
	s := &Screen{Width: width, Height: height, pixels: make([]geo.Color, width*height)}
	s.Clear()
	return s
}

// PixelAt returns a mutable reference to the pixel at (x, y).
func (s *Screen) PixelAt(x, y int) *geo.Color {
	return &s.pixels[y*s.Width+x]
}

// Clear resets every pixel to opaque black.
func (s *Screen) Clear() {
	for i := range s.pixels {
		s.pixels[i] = geo.Black
	}
}
