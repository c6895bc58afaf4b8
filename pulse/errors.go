package pulse

import (
	"errors"
	"slices"
	"strings"
	"unicode"
)

var (
	ErrNoAdapter = errors.New("no compatible graphics adapter")
	ErrNoDevice  = errors.New("no graphics device")

	// ErrSurfaceLost signals that the presentation chain must be
	// reconfigured before the next frame can be acquired.
	ErrSurfaceLost = errors.New("surface lost")

	// ErrSurfaceOutOfMemory is fatal, there is no way to recover from it.
	ErrSurfaceOutOfMemory = errors.New("surface out of memory")

	// ErrDeviceLost is fatal, the device and everything created from it is gone.
	ErrDeviceLost = errors.New("device lost")

	ErrSurfaceOutdated = errors.New("surface outdated")
	ErrSurfaceTimeout  = errors.New("surface timeout")
)

// IsTransient reports whether err only drops the current frame. A lost
// surface is transient once it got reconfigured.
func IsTransient(err error) bool {
	return errors.Is(err, ErrSurfaceLost) ||
		errors.Is(err, ErrSurfaceOutdated) ||
		errors.Is(err, ErrSurfaceTimeout)
}

// ClassifyAcquireError maps the error reported when acquiring a surface texture
// to one of the surface errors. Only the surface status names Lost, Outdated,
// Timeout and OutOfMemory are recognized. A lost device is reported as
// ErrDeviceLost, anything else is returned unclassified and is fatal.
func ClassifyAcquireError(err error) error {
	if err == nil {
		return nil
	}

	if surfaceErrorKind(err) != nil || errors.Is(err, ErrDeviceLost) {
		return err
	}

	words := strings.FieldsFunc(strings.ToLower(err.Error()), func(ch rune) bool {
		return !unicode.IsLetter(ch)
	})

	if slices.Contains(words, "device") && slices.Contains(words, "lost") {
		return &acquireError{kind: ErrDeviceLost, cause: err}
	}

	for _, word := range words {
		if kind, ok := surfaceStatusNames[word]; ok {
			return &acquireError{kind: kind, cause: err}
		}
	}

	return err
}

var surfaceStatusNames = map[string]error{
	"lost":        ErrSurfaceLost,
	"outdated":    ErrSurfaceOutdated,
	"timeout":     ErrSurfaceTimeout,
	"outofmemory": ErrSurfaceOutOfMemory,
}

type acquireError struct {
	kind  error
	cause error
}

func (e *acquireError) Error() string {
	return e.kind.Error() + ": " + e.cause.Error()
}

func (e *acquireError) Unwrap() []error {
	return []error{e.kind, e.cause}
}

var surfaceErrors = []error{ErrSurfaceLost, ErrSurfaceOutOfMemory, ErrSurfaceOutdated, ErrSurfaceTimeout}

// surfaceErrorKind returns the surface error err wraps, or nil.
func surfaceErrorKind(err error) error {
	for _, kind := range surfaceErrors {
		if errors.Is(err, kind) {
			return kind
		}
	}

	return nil
}
