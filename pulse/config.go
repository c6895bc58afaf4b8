package pulse

import (
	"fmt"
	"strings"
)

type Format uint8

const (
	// FormatBGRA8UnormSRGB is the only format surfaces are created with.
	// Clear colors are given in linear space and encoded by the hardware.
	FormatBGRA8UnormSRGB Format = iota
)

func (f Format) String() string {
	switch f {
	case FormatBGRA8UnormSRGB:
		return "bgra8unorm-srgb"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

type PresentMode uint8

const (
	PresentModeFifo PresentMode = iota
	PresentModeMailbox
	PresentModeImmediate
)

var presentModeNames = []string{
	PresentModeFifo:      "fifo",
	PresentModeMailbox:   "mailbox",
	PresentModeImmediate: "immediate",
}

func (p PresentMode) String() string {
	if int(p) < len(presentModeNames) {
		return presentModeNames[p]
	}

	return fmt.Sprintf("PresentMode(%d)", uint8(p))
}

func ParsePresentMode(name string) (PresentMode, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	for idx, modeName := range presentModeNames {
		if modeName == name {
			return PresentMode(idx), nil
		}
	}

	return PresentModeFifo, fmt.Errorf("unknown present mode %q", name)
}

// SurfaceConfig describes the presentation chain of a surface.
// Width and Height are physical pixels.
type SurfaceConfig struct {
	Width, Height uint32
	Format        Format
	PresentMode   PresentMode
}

// Empty reports whether the surface has no area and can not be configured.
func (c SurfaceConfig) Empty() bool {
	return c.Width == 0 || c.Height == 0
}
