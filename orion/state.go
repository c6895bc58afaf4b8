package orion

import (
	"github.com/oliverbestmann/tint/glm"
	"github.com/oliverbestmann/tint/pulse"
)

// RenderState is everything a frame is rendered from.
type RenderState struct {
	Clear pulse.Color
}

// pointerColor maps a cursor position inside a surface of the given size to
// the red and green channel of color. Positions outside the surface are clamped.
func pointerColor(color pulse.Color, pos, size glm.Vec2d) pulse.Color {
	r, g := glm.Unlerp2(pos, size).XY()
	return color.WithRed(float32(r)).WithGreen(float32(g))
}
