// Package gpu implements the pulse.Backend on top of webgpu.
package gpu

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/tint/pulse"
)

var forceFallbackAdapter = os.Getenv("WGPU_FORCE_FALLBACK_ADAPTER") == "1"

// SetLogLevel configures the logging of the native webgpu library.
// Valid levels are off, error, warn, info, debug and trace. An empty level
// falls back to the WGPU_LOG_LEVEL environment variable.
func SetLogLevel(level string) error {
	if level == "" {
		level = os.Getenv("WGPU_LOG_LEVEL")
	}

	logLevel, ok, err := logLevelOf(level)
	if err != nil {
		return err
	}

	if ok {
		wgpu.SetLogLevel(logLevel)
	}

	return nil
}

// logLevelOf parses a log level name. ok is false for an empty
// name, the default of the library is kept then.
func logLevelOf(level string) (logLevel wgpu.LogLevel, ok bool, err error) {
	switch strings.ToUpper(level) {
	case "":
		return 0, false, nil
	case "OFF":
		return wgpu.LogLevelOff, true, nil
	case "ERROR":
		return wgpu.LogLevelError, true, nil
	case "WARN":
		return wgpu.LogLevelWarn, true, nil
	case "INFO":
		return wgpu.LogLevelInfo, true, nil
	case "DEBUG":
		return wgpu.LogLevelDebug, true, nil
	case "TRACE":
		return wgpu.LogLevelTrace, true, nil
	default:
		return 0, false, fmt.Errorf("unknown wgpu log level %q", level)
	}
}

// Context encapsulates the low level state of the webgpu context,
// this includes the Device, Surface and active Adapter
type Context struct {
	*wgpu.Device
	*wgpu.Queue
	Surface *wgpu.Surface
	Adapter *wgpu.Adapter
}

type ContextOptions struct {
	ForceFallbackAdapter bool
}

// NewContext creates a surface for the given descriptor and requests an adapter
// and a device that can render to it. Blocks until both are available.
func NewContext(sd *wgpu.SurfaceDescriptor, opts ContextOptions) (st *Context, err error) {
	defer func() {
		if err != nil && st != nil {
			st.Release()
			st = nil
		}
	}()

	st = &Context{}

	// create the webgpu instance
	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	// create a Surface based on the window
	st.Surface = instance.CreateSurface(sd)

	// create an adapter that can render to the Surface
	st.Adapter, err = instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: forceFallbackAdapter || opts.ForceFallbackAdapter,
		CompatibleSurface:    st.Surface,
	})

	if err != nil {
		return st, fmt.Errorf("%w: %w", pulse.ErrNoAdapter, err)
	}

	// get a Device with the default settings
	st.Device, err = st.Adapter.RequestDevice(nil)
	if err != nil {
		return st, fmt.Errorf("%w: %w", pulse.ErrNoDevice, err)
	}

	st.Queue = st.Device.GetQueue()

	slog.Info("Graphics device initialized",
		slog.Bool("fallbackAdapter", forceFallbackAdapter || opts.ForceFallbackAdapter),
	)

	return st, nil
}

func (d *Context) Release() {
	if d.Queue != nil {
		d.Queue.Release()
		d.Queue = nil
	}

	if d.Device != nil {
		d.Device.Release()
		d.Device = nil
	}

	if d.Adapter != nil {
		d.Adapter.Release()
		d.Adapter = nil
	}

	if d.Surface != nil {
		d.Surface.Release()
		d.Surface = nil
	}
}
