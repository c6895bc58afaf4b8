package glm

import "golang.org/x/exp/constraints"

type float interface {
	constraints.Float
}

type numeric interface {
	float | constraints.Unsigned
}

// Clamp limits value to the closed range [lo, hi].
func Clamp[T numeric](value, lo, hi T) T {
	return min(max(value, lo), hi)
}

// Unlerp maps value from [0, extent] onto [0, 1]. The result is clamped,
// an empty extent maps everything to zero.
func Unlerp[T float](value, extent T) T {
	if extent <= 0 {
		return 0
	}

	return Clamp(value/extent, 0, 1)
}
