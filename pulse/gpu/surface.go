package gpu

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/tint/pulse"
)

// Surface drives the presentation chain of a Context. It implements pulse.Backend.
type Surface struct {
	*Context

	surfaceConfig *wgpu.SurfaceConfiguration
}

var _ pulse.Backend = (*Surface)(nil)

func NewSurface(ctx *Context) *Surface {
	// Print the available render formats
	caps := ctx.Surface.GetCapabilities(ctx.Adapter)
	slog.Info("Available surface formats", slog.Any("formats", caps.Formats))

	// zero value lets the implementation pick
	var alphaMode wgpu.CompositeAlphaMode
	if len(caps.AlphaModes) > 0 {
		alphaMode = caps.AlphaModes[0]
	}

	return &Surface{
		Context: ctx,
		surfaceConfig: &wgpu.SurfaceConfiguration{
			Usage:     wgpu.TextureUsageRenderAttachment,
			Format:    wgpu.TextureFormatBGRA8UnormSrgb,
			AlphaMode: alphaMode,
		},
	}
}

// Configure recreates the presentation chain, the previous one is
// dropped by the surface.
func (s *Surface) Configure(config pulse.SurfaceConfig) {
	s.surfaceConfig.Width = config.Width
	s.surfaceConfig.Height = config.Height
	s.surfaceConfig.Format = textureFormatOf(config.Format)
	s.surfaceConfig.PresentMode = presentModeOf(config.PresentMode)

	s.Context.Surface.Configure(s.Adapter, s.Device, s.surfaceConfig)
}

func (s *Surface) Acquire() (pulse.Frame, error) {
	texture, err := currentTexture(s.Context.Surface.GetCurrentTexture())
	if err != nil {
		return nil, err
	}

	view, err := texture.CreateView(nil)
	if err != nil {
		texture.Release()
		return nil, err
	}

	return &frame{
		device:  s.Device,
		queue:   s.Queue,
		surface: s.Context.Surface,
		texture: texture,
		view:    view,
	}, nil
}

// currentTexture checks the result of GetCurrentTexture. The bindings drop
// the Lost, Outdated and Timeout statuses and return a texture without a
// native handle and no error. Reconfiguring the surface recovers from each
// of them, so it is reported as a lost surface.
func currentTexture(texture *wgpu.Texture, err error) (*wgpu.Texture, error) {
	switch {
	case err != nil:
		return nil, err
	case !hasNativeHandle(texture):
		return nil, fmt.Errorf("%w: no current texture", pulse.ErrSurfaceLost)
	default:
		return texture, nil
	}
}

// hasNativeHandle reports whether texture wraps a native texture. The handle
// is not exported by the bindings, reading its nil-ness needs reflection.
func hasNativeHandle(texture *wgpu.Texture) bool {
	if texture == nil {
		return false
	}

	ref := reflect.ValueOf(texture).Elem().FieldByName("ref")
	return !ref.IsValid() || ref.Kind() != reflect.Pointer || !ref.IsNil()
}

func textureFormatOf(format pulse.Format) wgpu.TextureFormat {
	switch format {
	case pulse.FormatBGRA8UnormSRGB:
		return wgpu.TextureFormatBGRA8UnormSrgb
	default:
		panic("unsupported surface format " + format.String())
	}
}

func presentModeOf(mode pulse.PresentMode) wgpu.PresentMode {
	switch mode {
	case pulse.PresentModeMailbox:
		return wgpu.PresentModeMailbox
	case pulse.PresentModeImmediate:
		return wgpu.PresentModeImmediate
	default:
		return wgpu.PresentModeFifo
	}
}
