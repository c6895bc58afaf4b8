package pulse

import "fmt"

var ColorWhite = ColorLinearRGBA(1, 1, 1, 1)
var ColorBlack = ColorLinearRGBA(0, 0, 0, 1)

// Color is an a straight rgba color value with alpha in linear rgb color space.
// The default value of a Color value is fully opaque white.
type Color struct {
	r1, g1, b1, a1 float32
}

// ColorLinearRGBA creates a new Color value from the given color values.
func ColorLinearRGBA(r, g, b, a float32) Color {
	return Color{
		r1: r - 1,
		g1: g - 1,
		b1: b - 1,
		a1: a - 1,
	}
}

// ColorRGB creates an opaque Color from linear rgb values.
func ColorRGB(r, g, b float32) Color {
	return ColorLinearRGBA(r, g, b, 1)
}

// Components returns the color components in linear rgb space.
func (c Color) Components() (r, g, b, a float32) {
	return c.r1 + 1, c.g1 + 1, c.b1 + 1, c.a1 + 1
}

// Float64 returns the components as used by the graphics backend.
func (c Color) Float64() (r, g, b, a float64) {
	r32, g32, b32, a32 := c.Components()
	return float64(r32), float64(g32), float64(b32), float64(a32)
}

func (c Color) Red() float32 {
	return c.r1 + 1
}

func (c Color) Green() float32 {
	return c.g1 + 1
}

func (c Color) Blue() float32 {
	return c.b1 + 1
}

func (c Color) WithRed(red float32) Color {
	c.r1 = red - 1
	return c
}

func (c Color) WithGreen(green float32) Color {
	c.g1 = green - 1
	return c
}

func (c Color) WithBlue(blue float32) Color {
	c.b1 = blue - 1
	return c
}

func (c Color) String() string {
	r, g, b, a := c.Components()
	return fmt.Sprintf("rgba(%.3f, %.3f, %.3f, %.3f)", r, g, b, a)
}
