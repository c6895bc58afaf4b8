package pulse

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	configs []SurfaceConfig

	// errors returned by the next calls to Acquire, consumed in order
	acquireErrors []error

	// error returned by Frame.Clear
	clearErr error

	frames   []*fakeFrame
	released bool
}

func (b *fakeBackend) Configure(config SurfaceConfig) {
	b.configs = append(b.configs, config)
}

func (b *fakeBackend) Acquire() (Frame, error) {
	if len(b.acquireErrors) > 0 {
		err := b.acquireErrors[0]
		b.acquireErrors = b.acquireErrors[1:]

		if err != nil {
			return nil, err
		}
	}

	frame := &fakeFrame{clearErr: b.clearErr, config: b.configs[len(b.configs)-1]}
	b.frames = append(b.frames, frame)
	return frame, nil
}

func (b *fakeBackend) Release() {
	b.released = true
}

// liveFrames counts frames that were neither presented nor released.
func (b *fakeBackend) liveFrames() int {
	var count int
	for _, frame := range b.frames {
		if !frame.presented && !frame.released {
			count++
		}
	}

	return count
}

type fakeFrame struct {
	config    SurfaceConfig
	clearErr  error
	cleared   []Color
	presented bool
	released  bool
}

func (f *fakeFrame) Clear(color Color) error {
	if f.clearErr != nil {
		return f.clearErr
	}

	f.cleared = append(f.cleared, color)
	return nil
}

func (f *fakeFrame) Present() {
	f.presented = true
}

func (f *fakeFrame) Release() {
	if !f.presented {
		f.released = true
	}
}

func newTestManager(width, height uint32) (*Manager, *fakeBackend) {
	backend := &fakeBackend{}

	manager := NewManager(backend, SurfaceConfig{
		Width:       width,
		Height:      height,
		Format:      FormatBGRA8UnormSRGB,
		PresentMode: PresentModeFifo,
	})

	return manager, backend
}

func TestManagerConfiguresOnCreation(t *testing.T) {
	manager, backend := newTestManager(800, 600)

	require.Len(t, backend.configs, 1)
	assert.Equal(t, uint32(800), backend.configs[0].Width)
	assert.Equal(t, uint32(600), backend.configs[0].Height)
	assert.Equal(t, FormatBGRA8UnormSRGB, backend.configs[0].Format)
	assert.True(t, manager.Configured())
}

func TestReconfigureThenPresentSucceeds(t *testing.T) {
	sizes := [][2]uint32{{1, 1}, {640, 480}, {1920, 1080}, {3840, 2160}, {1, 4096}}

	for _, size := range sizes {
		manager, backend := newTestManager(100, 100)

		manager.Reconfigure(size[0], size[1])

		color := ColorRGB(0.1, 0.2, 0.3)
		require.NoError(t, manager.AcquireAndPresent(color))

		frame := backend.frames[len(backend.frames)-1]
		assert.True(t, frame.presented)
		assert.Equal(t, []Color{color}, frame.cleared)
		assert.Equal(t, size[0], frame.config.Width)
		assert.Equal(t, size[1], frame.config.Height)
	}
}

func TestReconfigureIsIdempotent(t *testing.T) {
	manager, backend := newTestManager(800, 600)

	before := manager.Config()

	for range 10 {
		manager.Reconfigure(800, 600)
	}

	assert.Equal(t, before, manager.Config())

	// every chain is rebuilt with the exact same configuration
	for _, config := range backend.configs {
		assert.Equal(t, before, config)
	}

	require.NoError(t, manager.AcquireAndPresent(ColorBlack))
	assert.Zero(t, backend.liveFrames())
}

func TestReconfigureEmptySurface(t *testing.T) {
	manager, backend := newTestManager(800, 600)

	manager.Reconfigure(0, 600)
	assert.False(t, manager.Configured())
	assert.Len(t, backend.configs, 1)

	width, height := manager.Size()
	assert.Equal(t, uint32(0), width)
	assert.Equal(t, uint32(600), height)

	// frames are dropped without touching the backend
	err := manager.AcquireAndPresent(ColorBlack)
	assert.ErrorIs(t, err, ErrSurfaceOutdated)
	assert.True(t, IsTransient(err))
	assert.Empty(t, backend.frames)

	manager.Reconfigure(1024, 768)
	assert.True(t, manager.Configured())
	require.NoError(t, manager.AcquireAndPresent(ColorBlack))
}

func TestLostSurfaceRecovers(t *testing.T) {
	manager, backend := newTestManager(800, 600)
	backend.acquireErrors = []error{errors.New("surface texture status: Lost")}

	err := manager.AcquireAndPresent(ColorWhite)
	require.ErrorIs(t, err, ErrSurfaceLost)
	assert.True(t, IsTransient(err))

	// reconfigure with the previous size and retry
	width, height := manager.Size()
	manager.Reconfigure(width, height)

	require.NoError(t, manager.AcquireAndPresent(ColorWhite))
	assert.Len(t, backend.configs, 2)
	assert.Equal(t, backend.configs[0], backend.configs[1])
}

func TestOutOfMemoryIsFatal(t *testing.T) {
	manager, backend := newTestManager(800, 600)
	backend.acquireErrors = []error{errors.New("OutOfMemory")}

	err := manager.AcquireAndPresent(ColorWhite)
	require.ErrorIs(t, err, ErrSurfaceOutOfMemory)
	assert.False(t, IsTransient(err))
}

func TestClearFailureReleasesFrame(t *testing.T) {
	manager, backend := newTestManager(800, 600)
	backend.clearErr = errors.New("encoder invalid")

	err := manager.AcquireAndPresent(ColorWhite)
	require.Error(t, err)
	assert.False(t, IsTransient(err))

	require.Len(t, backend.frames, 1)
	assert.True(t, backend.frames[0].released)
	assert.False(t, backend.frames[0].presented)
}

func TestFramesAreNotRetained(t *testing.T) {
	manager, backend := newTestManager(800, 600)

	for range 5 {
		require.NoError(t, manager.AcquireAndPresent(ColorBlack))
	}

	assert.Len(t, backend.frames, 5)
	assert.Zero(t, backend.liveFrames())
}

func TestManagerRelease(t *testing.T) {
	manager, backend := newTestManager(800, 600)
	manager.Release()
	manager.Release()

	assert.True(t, backend.released)
	assert.False(t, manager.Configured())
}

func TestReconfigureAfterRelease(t *testing.T) {
	manager, backend := newTestManager(800, 600)
	manager.Release()

	assert.NotPanics(t, func() { manager.Reconfigure(1024, 768) })
	assert.False(t, manager.Configured())
	assert.Len(t, backend.configs, 1)

	width, height := manager.Size()
	assert.Equal(t, uint32(1024), width)
	assert.Equal(t, uint32(768), height)

	assert.ErrorIs(t, manager.AcquireAndPresent(ColorBlack), ErrSurfaceOutdated)
}

func TestClassifyAcquireError(t *testing.T) {
	cases := map[string]error{
		"Lost":                                 ErrSurfaceLost,
		"surface texture status: Lost":         ErrSurfaceLost,
		"OutOfMemory":                          ErrSurfaceOutOfMemory,
		"surface texture status: OutOfMemory":  ErrSurfaceOutOfMemory,
		"Timeout":                              ErrSurfaceTimeout,
		"Outdated":                             ErrSurfaceOutdated,
		"surface texture status: Outdated (2)": ErrSurfaceOutdated,

		"wgpu.(*Surface).GetCurrentTexture(): Parent device is lost": ErrDeviceLost,
		"Device lost":                                                ErrDeviceLost,
	}

	for text, expected := range cases {
		classified := ClassifyAcquireError(errors.New(text))
		assert.ErrorIs(t, classified, expected, text)
		assert.Contains(t, classified.Error(), text)
	}

	assert.NoError(t, ClassifyAcquireError(nil))

	// already classified errors are kept as is
	wrapped := ClassifyAcquireError(ErrSurfaceTimeout)
	assert.Equal(t, ErrSurfaceTimeout, wrapped)
}

func TestClassifyAcquireErrorKeepsUnknownErrors(t *testing.T) {
	for _, text := range []string{"failed to acquire texture", "out of memory", "lostness"} {
		failure := errors.New(text)

		classified := ClassifyAcquireError(failure)
		assert.Equal(t, failure, classified, text)
		assert.False(t, IsTransient(classified), text)
	}
}

func TestDeviceLostIsFatal(t *testing.T) {
	manager, backend := newTestManager(800, 600)
	backend.acquireErrors = []error{errors.New("wgpu.(*Surface).GetCurrentTexture(): Parent device is lost")}

	err := manager.AcquireAndPresent(ColorWhite)
	require.ErrorIs(t, err, ErrDeviceLost)
	assert.NotErrorIs(t, err, ErrSurfaceLost)
	assert.False(t, IsTransient(err))
}

func TestPresentModes(t *testing.T) {
	for _, mode := range []PresentMode{PresentModeFifo, PresentModeMailbox, PresentModeImmediate} {
		parsed, err := ParsePresentMode(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, parsed)
	}

	_, err := ParsePresentMode("vsync")
	assert.Error(t, err)
}

func TestColor(t *testing.T) {
	var zero Color
	assert.Equal(t, ColorWhite, zero)

	color := ColorRGB(0.1, 0.2, 0.3).WithRed(0.5).WithGreen(0.75)
	r, g, b, a := color.Components()
	assert.Equal(t, float32(0.5), r)
	assert.Equal(t, float32(0.75), g)
	assert.InDelta(t, 0.3, b, 1e-6)
	assert.Equal(t, float32(1), a)

	assert.Equal(t, "rgba(0.500, 0.750, 0.300, 1.000)", color.String())
}
