// Package app wires the desktop window, the webgpu device and the frame loop.
package app

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/tint/glimpse/desktop"
	"github.com/oliverbestmann/tint/orion"
	"github.com/oliverbestmann/tint/pulse/gpu"
)

// Run opens the window and runs the frame loop until the window is closed
// or the cancel key is pressed. Errors are fatal.
func Run(opts orion.Options) error {
	opts = opts.WithDefaults()

	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	if err := gpu.SetLogLevel(opts.WgpuLogLevel); err != nil {
		return err
	}

	win, err := desktop.NewWindow(
		opts.WindowWidth,
		opts.WindowHeight,
		opts.WindowTitle,
	)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	// deferred first, runs last: the window outlives the surface
	defer win.Terminate()

	manager, err := gpu.Initialize(win, gpu.Options{
		PresentMode:          opts.PresentModeValue(),
		ForceFallbackAdapter: opts.ForceFallbackAdapter,
	})
	if err != nil {
		return err
	}

	defer manager.Release()

	controller := orion.NewController(manager, win, opts)

	if err := win.Run(controller.Handler()); err != nil {
		return err
	}

	frames := controller.Frames()
	slog.Info("Frame loop finished", slog.Uint64("frames", frames.FrameCount))

	return nil
}
