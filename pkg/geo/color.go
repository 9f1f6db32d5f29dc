package geo

// Color is an 8-bit RGBA pixel. The zero value is transparent black
// (A == 0): callers that want the default black, opaque-alpha value should
// use Black.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// Black is the default opaque black pixel.
var Black = Color{R: 0, G: 0, B: 0, A: 255}

// WideColor accumulates RGBA channels at 32-bit precision so sums and
// scaled sums don't overflow the way repeated uint8 addition would.
type WideColor struct {
	R, G, B, A uint32
}

// WidenColor promotes an 8-bit Color into a WideColor accumulator.
func WidenColor(c Color) WideColor {
	return WideColor{R: uint32(c.R), G: uint32(c.G), B: uint32(c.B), A: uint32(c.A)}
}

// Add returns the componentwise sum of two wide colors.
func (w WideColor) Add(other WideColor) WideColor {
	return WideColor{R: w.R + other.R, G: w.G + other.G, B: w.B + other.B, A: w.A + other.A}
}

// Scale multiplies every channel by a rational num/den, rounding down.
// Used for bilinear texture interpolation weights expressed as integers.
func (w WideColor) Scale(num, den uint32) WideColor {
	return WideColor{R: w.R * num / den, G: w.G * num / den, B: w.B * num / den, A: w.A * num / den}
}

// Color truncates a WideColor back down to 8-bit channels. Callers are
// responsible for keeping each channel within [0, 255] beforehand.
func (w WideColor) Color() Color {
	return Color{R: uint8(w.R), G: uint8(w.G), B: uint8(w.B), A: uint8(w.A)}
}

// ColorMixer accumulates samples for box-filter anti-aliasing. The zero
// value is ready to use.
type ColorMixer struct {
	sum   WideColor
	count uint32
}

// AddSample folds another Color into the running average.
func (m *ColorMixer) AddSample(c Color) {
	m.sum = m.sum.Add(WidenColor(c))
	m.count++
}

// Finish returns the per-channel integer average of every sample added so
// far. It must only be called once at least one sample has been added.
func (m *ColorMixer) Finish() Color {
	n := uint32(m.count)
	return Color{
		R: uint8(m.sum.R / n),
		G: uint8(m.sum.G / n),
		B: uint8(m.sum.B / n),
		A: uint8(m.sum.A / n),
	}
}
