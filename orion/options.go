package orion

import (
	"errors"
	"fmt"
	"os"

	"github.com/oliverbestmann/tint/glimpse"
	"github.com/oliverbestmann/tint/pulse"
	"gopkg.in/yaml.v3"
)

type Options struct {
	WindowWidth  int    `yaml:"window_width"`
	WindowHeight int    `yaml:"window_height"`
	WindowTitle  string `yaml:"window_title"`

	// initial clear color in linear rgb. The blue channel stays fixed
	// while the red and green channels follow the cursor.
	ClearColor [3]float32 `yaml:"clear_color"`

	// one of fifo, mailbox or immediate
	PresentMode string `yaml:"present_mode"`

	// name of the key that terminates the loop, see glimpse.ParseKey
	CancelKey string `yaml:"cancel_key"`

	ForceFallbackAdapter bool   `yaml:"force_fallback_adapter"`
	WgpuLogLevel         string `yaml:"wgpu_log_level"`

	// called once per frame before rendering, optional
	Updater Updater `yaml:"-"`
}

func DefaultOptions() Options {
	return Options{
		WindowWidth:  1000,
		WindowHeight: 600,
		WindowTitle:  "Tint",
		ClearColor:   [3]float32{0.1, 0.2, 0.3},
		PresentMode:  pulse.PresentModeFifo.String(),
		CancelKey:    glimpse.KeyEscape.String(),
	}
}

// LoadOptions reads options from a yaml file. Values missing in
// the file keep their defaults.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()

	buf, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("read options: %w", err)
	}

	if err := yaml.Unmarshal(buf, &opts); err != nil {
		return opts, fmt.Errorf("parse options %q: %w", path, err)
	}

	if err := opts.Validate(); err != nil {
		return opts, fmt.Errorf("options %q: %w", path, err)
	}

	return opts, nil
}

// WithDefaults fills in defaults for all unset options.
func (opts Options) WithDefaults() Options {
	defaults := DefaultOptions()

	if opts.WindowWidth == 0 {
		opts.WindowWidth = defaults.WindowWidth
	}

	if opts.WindowHeight == 0 {
		opts.WindowHeight = defaults.WindowHeight
	}

	if opts.WindowTitle == "" {
		opts.WindowTitle = defaults.WindowTitle
	}

	if opts.PresentMode == "" {
		opts.PresentMode = defaults.PresentMode
	}

	if opts.CancelKey == "" {
		opts.CancelKey = defaults.CancelKey
	}

	if opts.Updater == nil {
		opts.Updater = noopUpdater{}
	}

	return opts
}

func (opts Options) Validate() error {
	var errs []error

	if opts.WindowWidth < 0 || opts.WindowHeight < 0 {
		errs = append(errs, fmt.Errorf("window size must not be negative: %dx%d", opts.WindowWidth, opts.WindowHeight))
	}

	if opts.PresentMode != "" {
		if _, err := pulse.ParsePresentMode(opts.PresentMode); err != nil {
			errs = append(errs, err)
		}
	}

	if opts.CancelKey != "" {
		if _, err := glimpse.ParseKey(opts.CancelKey); err != nil {
			errs = append(errs, fmt.Errorf("cancel key: %w", err))
		}
	}

	for idx, value := range opts.ClearColor {
		if value < 0 || value > 1 {
			errs = append(errs, fmt.Errorf("clear color channel %d out of range: %v", idx, value))
		}
	}

	return errors.Join(errs...)
}

// CancelKeyValue returns the parsed cancel key, defaulting to escape.
func (opts Options) CancelKeyValue() glimpse.Key {
	key, err := glimpse.ParseKey(opts.CancelKey)
	if err != nil {
		return glimpse.KeyEscape
	}

	return key
}

// PresentModeValue returns the parsed present mode, defaulting to fifo.
func (opts Options) PresentModeValue() pulse.PresentMode {
	mode, _ := pulse.ParsePresentMode(opts.PresentMode)
	return mode
}
