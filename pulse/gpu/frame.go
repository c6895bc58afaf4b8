package gpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/tint/pulse"
)

type frame struct {
	device  *wgpu.Device
	queue   *wgpu.Queue
	surface *wgpu.Surface

	texture *wgpu.Texture
	view    *wgpu.TextureView
}

func (f *frame) Clear(color pulse.Color) error {
	enc, err := f.device.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{
		Label: "Render Encoder",
	})

	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}

	defer enc.Release()

	r, g, b, a := color.Float64()

	// a single color attachment, no depth or stencil
	pass := enc.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "ClearFrame",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       f.view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: wgpu.Color{R: r, G: g, B: b, A: a},
			},
		},
	})

	passGuard := NewReleaseGuard(pass)
	defer passGuard.Release()

	if err := pass.End(); err != nil {
		return fmt.Errorf("end render pass: %w", err)
	}

	passGuard.Release()

	// encode into a command buffer
	buf, err := enc.Finish(&wgpu.CommandBufferDescriptor{Label: "ClearFrame"})
	if err != nil {
		return fmt.Errorf("finish command buffer: %w", err)
	}

	defer buf.Release()

	f.queue.Submit(buf)

	return nil
}

func (f *frame) Present() {
	f.surface.Present()

	// we do not need to release the texture if present was successful
	f.texture = nil
}

func (f *frame) Release() {
	if f.view != nil {
		f.view.Release()
		f.view = nil
	}

	if f.texture != nil {
		f.texture.Release()
		f.texture = nil
	}
}

type Releaser interface {
	Release()
}

// ReleaseGuard releases its delegate on early returns. Release may be
// called more than once.
type ReleaseGuard struct {
	delegate Releaser
}

func NewReleaseGuard(delegate Releaser) ReleaseGuard {
	return ReleaseGuard{delegate: delegate}
}

func (r *ReleaseGuard) Release() {
	if r.delegate != nil {
		r.delegate.Release()
		r.delegate = nil
	}
}
