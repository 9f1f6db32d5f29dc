package geo_test

import (
	"testing"

	"github.com/brightlin/rnray/pkg/geo"
)

func TestColorMixerIdentity(t *testing.T) {
	c := geo.Color{R: 12, G: 34, B: 56, A: 255}

	for _, n := range []int{1, 2, 4} {
		var mixer geo.ColorMixer
		for i := 0; i < n; i++ {
			mixer.AddSample(c)
		}
		if got := mixer.Finish(); got != c {
			t.Errorf("averaging %d copies of %v gave %v", n, c, got)
		}
	}
}

func TestColorMixerAverage(t *testing.T) {
	var mixer geo.ColorMixer
	mixer.AddSample(geo.Color{R: 0, G: 0, B: 0, A: 255})
	mixer.AddSample(geo.Color{R: 255, G: 255, B: 255, A: 255})

	got := mixer.Finish()
	want := geo.Color{R: 127, G: 127, B: 127, A: 255}
	if got != want {
		t.Errorf("Finish() = %v, want %v", got, want)
	}
}

func TestWideColorNoOverflow(t *testing.T) {
	c := geo.Color{R: 255, G: 255, B: 255, A: 255}
	w := geo.WidenColor(c).Add(geo.WidenColor(c)).Add(geo.WidenColor(c))

	if w.R != 765 {
		t.Errorf("sum of three 255 channels = %d, want 765 (would overflow uint8)", w.R)
	}
}
