//go:build !js

// Package desktop implements a glimpse.Window on top of glfw.
package desktop

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/oliverbestmann/tint/glimpse"
)

func init() {
	// glfw must only be called from the main thread
	runtime.LockOSThread()
}

type Window struct {
	win  *glfw.Window
	pump glimpse.Pump
}

var _ glimpse.Window = (*Window)(nil)

func NewWindow(width, height int, title string) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}

	// the surface is driven by webgpu, not by an opengl context
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}

	w := &Window{win: window}

	configureInput(window, &w.pump)

	fbWidth, fbHeight := w.FramebufferSize()
	slog.Info("Window created",
		slog.String("title", title),
		slog.Int("width", int(fbWidth)),
		slog.Int("height", int(fbHeight)),
	)

	return w, nil
}

func (w *Window) FramebufferSize() (uint32, uint32) {
	width, height := w.win.GetFramebufferSize()
	return uint32(max(width, 0)), uint32(max(height, 0))
}

// SurfaceDescriptor returns the native surface of the window. The window
// must be terminated only after every surface created from it was released.
func (w *Window) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(w.win)
}

func (w *Window) RequestRedraw() {
	w.pump.RequestRedraw()
}

func (w *Window) Terminate() {
	w.win.Destroy()
	glfw.Terminate()
}

func (w *Window) Run(handler glimpse.Handler) error {
	var flow glimpse.ControlFlow

	for !flow.ShouldExit() {
		if width, height := w.FramebufferSize(); width == 0 || height == 0 {
			// minimized, nothing to present until the window comes back
			glfw.WaitEvents()
		} else {
			glfw.PollEvents()
		}

		w.pump.Cycle(handler, &flow)
	}

	return flow.Err()
}

func configureInput(window *glfw.Window, pump *glimpse.Pump) {
	window.SetFramebufferSizeCallback(func(_win *glfw.Window, width, height int) {
		pump.Push(glimpse.Resize{
			Width:  uint32(max(width, 0)),
			Height: uint32(max(height, 0)),
		})
	})

	window.SetContentScaleCallback(func(win *glfw.Window, x, y float32) {
		slog.Debug("Content scale changed", slog.Float64("x", float64(x)), slog.Float64("y", float64(y)))

		width, height := win.GetFramebufferSize()
		pump.Push(glimpse.Resize{
			Width:        uint32(max(width, 0)),
			Height:       uint32(max(height, 0)),
			ScaleChanged: true,
		})
	})

	window.SetCursorPosCallback(func(win *glfw.Window, xpos float64, ypos float64) {
		// glfw reports the cursor in screen coordinates,
		// convert to framebuffer pixels
		scaleX, scaleY := framebufferScale(win)

		pump.Push(glimpse.PointerMove{
			X: xpos * scaleX,
			Y: ypos * scaleY,
		})
	})

	window.SetKeyCallback(func(_win *glfw.Window, glfwKey glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		key, ok := keyOf(glfwKey)
		if !ok {
			slog.Warn("Unknown key code",
				slog.Int("scancode", scancode),
				slog.String("key", glfw.GetKeyName(glfwKey, scancode)),
			)

			return
		}

		pump.Push(glimpse.KeyInput{Key: key, Action: actionOf(action)})
	})

	window.SetCloseCallback(func(win *glfw.Window) {
		// the handler decides when to stop the loop
		win.SetShouldClose(false)
		pump.Push(glimpse.CloseRequest{})
	})
}

func framebufferScale(win *glfw.Window) (float64, float64) {
	width, height := win.GetSize()
	fbWidth, fbHeight := win.GetFramebufferSize()

	if width <= 0 || height <= 0 {
		return 1, 1
	}

	return float64(fbWidth) / float64(width), float64(fbHeight) / float64(height)
}

func actionOf(action glfw.Action) glimpse.Action {
	switch action {
	case glfw.Release:
		return glimpse.Release
	case glfw.Repeat:
		return glimpse.Repeat
	default:
		return glimpse.Press
	}
}

var glfwToKey = map[glfw.Key]glimpse.Key{
	glfw.KeyEscape:    glimpse.KeyEscape,
	glfw.KeyEnter:     glimpse.KeyEnter,
	glfw.KeySpace:     glimpse.KeySpace,
	glfw.KeyTab:       glimpse.KeyTab,
	glfw.KeyBackspace: glimpse.KeyBackspace,
	glfw.KeyDelete:    glimpse.KeyDelete,
	glfw.KeyLeft:      glimpse.KeyLeft,
	glfw.KeyRight:     glimpse.KeyRight,
	glfw.KeyUp:        glimpse.KeyUp,
	glfw.KeyDown:      glimpse.KeyDown,
}

func keyOf(glfwKey glfw.Key) (key glimpse.Key, ok bool) {
	if glfwKey >= glfw.KeyA && glfwKey <= glfw.KeyZ {
		return glimpse.KeyA + glimpse.Key(glfwKey-glfw.KeyA), true
	}

	key, ok = glfwToKey[glfwKey]
	return
}
