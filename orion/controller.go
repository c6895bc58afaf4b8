package orion

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/tint/glimpse"
	"github.com/oliverbestmann/tint/glm"
	"github.com/oliverbestmann/tint/pulse"
)

// Presenter is the part of the pulse.Manager the controller drives.
type Presenter interface {
	Size() (uint32, uint32)
	Reconfigure(width, height uint32)
	AcquireAndPresent(color pulse.Color) error
}

// RedrawRequester schedules redraws, usually the glimpse.Window.
type RedrawRequester interface {
	RequestRedraw()
}

// Controller maps window events onto the presenter. All of its
// state is owned by the event loop, it must not be shared.
type Controller struct {
	presenter Presenter
	window    RedrawRequester
	updater   Updater
	cancelKey glimpse.Key

	state  RenderState
	frames FrameTimes
}

func NewController(presenter Presenter, window RedrawRequester, opts Options) *Controller {
	opts = opts.WithDefaults()

	color := opts.ClearColor

	return &Controller{
		presenter: presenter,
		window:    window,
		updater:   opts.Updater,
		cancelKey: opts.CancelKeyValue(),
		state: RenderState{
			Clear: pulse.ColorRGB(color[0], color[1], color[2]),
		},
	}
}

// State returns the current render state.
func (c *Controller) State() RenderState {
	return c.state
}

func (c *Controller) Frames() FrameTimes {
	return c.frames
}

// Dispatch handles a single event and reports whether the event was consumed.
func (c *Controller) Dispatch(ev glimpse.Event, flow *glimpse.ControlFlow) bool {
	switch ev := ev.(type) {
	case glimpse.PointerMove:
		width, height := c.presenter.Size()

		c.state.Clear = pointerColor(
			c.state.Clear,
			glm.Vec2d{ev.X, ev.Y},
			glm.Vec2Of[float64](glm.Vec2u{width, height}),
		)

		return true

	case glimpse.Resize:
		slog.Debug("Resize surface",
			slog.Int("width", int(ev.Width)),
			slog.Int("height", int(ev.Height)),
			slog.Bool("scaleChanged", ev.ScaleChanged),
		)

		c.presenter.Reconfigure(ev.Width, ev.Height)
		return true

	case glimpse.CloseRequest:
		slog.Info("Close requested")
		flow.Exit()
		return true

	case glimpse.KeyInput:
		if ev.Key == c.cancelKey && ev.Pressed() {
			slog.Info("Cancel key pressed", slog.String("key", ev.Key.String()))
			flow.Exit()
			return true
		}

		return false

	case glimpse.Idle:
		c.window.RequestRedraw()
		return true

	case glimpse.RedrawRequest:
		if err := c.redraw(); err != nil {
			flow.Fail(err)
		}

		return true

	default:
		return false
	}
}

// Handler adapts Dispatch to a glimpse.Handler.
func (c *Controller) Handler() glimpse.Handler {
	return func(ev glimpse.Event, flow *glimpse.ControlFlow) {
		c.Dispatch(ev, flow)
	}
}

// redraw updates and renders one frame. Only fatal errors are returned.
func (c *Controller) redraw() error {
	if err := c.updater.Update(&c.state); err != nil {
		return fmt.Errorf("update: %w", err)
	}

	err := c.presenter.AcquireAndPresent(c.state.Clear)
	switch {
	case err == nil:
		if c.frames.Tick() {
			slog.Debug("Frame stats",
				slog.Uint64("frames", c.frames.FrameCount),
				slog.Float64("fps", c.frames.FPS()),
				slog.Duration("max", c.frames.MaxDuration),
				slog.String("clear", c.state.Clear.String()),
			)
		}

		return nil

	case errors.Is(err, pulse.ErrSurfaceLost):
		// rebuild the chain, the next frame will try again
		width, height := c.presenter.Size()
		slog.Debug("Surface lost, reconfigure",
			slog.Int("width", int(width)),
			slog.Int("height", int(height)),
		)

		c.presenter.Reconfigure(width, height)
		return nil

	case errors.Is(err, pulse.ErrSurfaceOutOfMemory):
		return fmt.Errorf("present frame: %w", err)

	case pulse.IsTransient(err):
		slog.Debug("Dropped frame", slog.String("reason", err.Error()))
		return nil

	default:
		return fmt.Errorf("present frame: %w", err)
	}
}
