package gpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/tint/pulse"
)

// SurfaceSource is a window a surface can be created for.
type SurfaceSource interface {
	SurfaceDescriptor() *wgpu.SurfaceDescriptor
	FramebufferSize() (uint32, uint32)
}

type Options struct {
	PresentMode          pulse.PresentMode
	ForceFallbackAdapter bool
}

// Initialize requests a device for the surface of the given window and
// configures its presentation chain for the current framebuffer size.
// The window must outlive the returned manager.
func Initialize(window SurfaceSource, opts Options) (*pulse.Manager, error) {
	ctx, err := NewContext(window.SurfaceDescriptor(), ContextOptions{
		ForceFallbackAdapter: opts.ForceFallbackAdapter,
	})

	if err != nil {
		return nil, fmt.Errorf("initialize webgpu: %w", err)
	}

	width, height := window.FramebufferSize()

	manager := pulse.NewManager(NewSurface(ctx), pulse.SurfaceConfig{
		Width:       width,
		Height:      height,
		Format:      pulse.FormatBGRA8UnormSRGB,
		PresentMode: opts.PresentMode,
	})

	return manager, nil
}
