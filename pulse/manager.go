package pulse

import (
	"fmt"
	"log/slog"
)

// Backend is the graphics api driven by the Manager. Implementations own the
// surface, the device and the queue.
type Backend interface {
	// Configure (re)creates the presentation chain. The previous chain,
	// if any, is replaced.
	Configure(config SurfaceConfig)

	// Acquire returns the next presentable frame.
	Acquire() (Frame, error)

	Release()
}

// Frame is a single presentable image. It is only valid for one call to
// Manager.AcquireAndPresent.
type Frame interface {
	// Clear records a render pass that clears the whole frame
	// and submits it to the queue.
	Clear(color Color) error

	// Present hands the frame to the presentation engine.
	Present()

	// Release frees the frame without presenting it. Calling Release
	// after Present is a no-op.
	Release()
}

// Manager owns the graphics device and the presentation chain of a single surface.
type Manager struct {
	backend    Backend
	config     SurfaceConfig
	configured bool
}

// NewManager wraps an initialized backend. The surface is configured
// for the given size right away.
func NewManager(backend Backend, config SurfaceConfig) *Manager {
	m := &Manager{backend: backend, config: config}
	m.Reconfigure(config.Width, config.Height)
	return m
}

// Size returns the last known physical size of the surface.
func (m *Manager) Size() (uint32, uint32) {
	return m.config.Width, m.config.Height
}

func (m *Manager) Config() SurfaceConfig {
	return m.config
}

// Configured reports whether the surface currently has a presentation chain.
func (m *Manager) Configured() bool {
	return m.configured
}

// Reconfigure rebuilds the presentation chain for the given physical size.
// Calling it repeatedly with the same size yields the same configuration.
// An empty size only records the size, frames are dropped until the
// surface has an area again. After Release only the size is recorded.
func (m *Manager) Reconfigure(width, height uint32) {
	m.config.Width = width
	m.config.Height = height

	if m.backend == nil {
		slog.Debug("Manager was released, skip configure")
		m.configured = false
		return
	}

	if m.config.Empty() {
		slog.Debug("Surface has no area, skip configure",
			slog.Int("width", int(width)),
			slog.Int("height", int(height)),
		)

		m.configured = false
		return
	}

	slog.Debug("Configure surface",
		slog.Int("width", int(width)),
		slog.Int("height", int(height)),
		slog.String("format", m.config.Format.String()),
		slog.String("presentMode", m.config.PresentMode.String()),
	)

	m.backend.Configure(m.config)
	m.configured = true
}

// AcquireAndPresent clears the next frame to color and presents it.
// It returns one of the surface errors if no frame could be acquired,
// see IsTransient.
func (m *Manager) AcquireAndPresent(color Color) error {
	if !m.configured {
		return ErrSurfaceOutdated
	}

	frame, err := m.backend.Acquire()
	if err != nil {
		return fmt.Errorf("acquire frame: %w", ClassifyAcquireError(err))
	}

	defer frame.Release()

	if err := frame.Clear(color); err != nil {
		return fmt.Errorf("clear frame: %w", err)
	}

	frame.Present()

	return nil
}

func (m *Manager) Release() {
	if m.backend != nil {
		m.backend.Release()
		m.backend = nil
	}

	m.configured = false
}
