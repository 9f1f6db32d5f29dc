// Package host implements the host services the rendering core treats as
// external collaborators: bitmap load/save and the driver loop that keeps a
// render pass running on a background goroutine while a caller polls for
// completion or cancellation. None of this is consulted by pkg/geodesic,
// internal/object, internal/camera, or internal/render.
package host

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/bmp"

	"github.com/brightlin/rnray/internal/screen"
	"github.com/brightlin/rnray/pkg/geo"
)

// LoadImage decodes an image file (BMP, PNG, or anything else
// image.Decode's registered formats cover) into a flat row-major Color
// slice, for TexturedSphere's equirectangular sampling. It matches
// object.ImageLoader's signature so it can be installed directly via
// object.SetImageLoader.
func LoadImage(path string) (width, height int, pixels []geo.Color, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("host: opening %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("host: decoding %s: %w", path, err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := make([]geo.Color, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			out[y*w+x] = geo.Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
		}
	}
	return w, h, out, nil
}

// SaveBMP writes the screen's pixel buffer as an uncompressed BMP file, the
// default animation-frame output format.
func SaveBMP(s *screen.Screen, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("host: creating %s: %w", path, err)
	}
	defer f.Close()

	if err := bmp.Encode(f, screenToImage(s)); err != nil {
		return fmt.Errorf("host: encoding %s: %w", path, err)
	}
	return nil
}

// SavePNG writes the screen's pixel buffer as a PNG file, kept alongside
// BMP for callers that prefer it.
func SavePNG(s *screen.Screen, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("host: creating %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, screenToImage(s)); err != nil {
		return fmt.Errorf("host: encoding %s: %w", path, err)
	}
	return nil
}

func screenToImage(s *screen.Screen) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.Width, s.Height))
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			c := *s.PixelAt(x, y)
			img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
		}
	}
	return img
}
