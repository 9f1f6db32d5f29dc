package object

import "github.com/brightlin/rnray/pkg/geo"

// Texture is a row-major bitmap of 8-bit colors sampled by equirectangular
// u/v coordinates.
type Texture struct {
	Width, Height int
	Pixels        []geo.Color
}

func (t *Texture) at(x, y int) geo.Color {
	x = clampInt(x, 0, t.Width-1)
	y = clampInt(y, 0, t.Height-1)
	return t.Pixels[y*t.Width+x]
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sample bilinearly interpolates the four texels surrounding continuous
// coordinates (u, v), promoting each to a WideColor accumulator so the
// weighted sum never overflows an 8-bit channel mid-computation.
func (t *Texture) Sample(u, v float64) geo.Color {
	x0 := int(u)
	y0 := int(v)
	fx := u - float64(x0)
	fy := v - float64(y0)

	c00 := geo.WidenColor(t.at(x0, y0))
	c10 := geo.WidenColor(t.at(x0+1, y0))
	c01 := geo.WidenColor(t.at(x0, y0+1))
	c11 := geo.WidenColor(t.at(x0+1, y0+1))

	const scale = 1 << 8
	wx1 := uint32(fx * scale)
	wx0 := scale - wx1
	wy1 := uint32(fy * scale)
	wy0 := scale - wy1

	top := c00.Scale(wx0, 1).Add(c10.Scale(wx1, 1))
	bottom := c01.Scale(wx0, 1).Add(c11.Scale(wx1, 1))
	mixed := top.Scale(wy0, 1).Add(bottom.Scale(wy1, 1))
	return mixed.Scale(1, scale*scale).Color()
}
