package glm

type Vec2[T numeric] [2]T

// Vec2Of converts the components of another vector type.
func Vec2Of[T, S numeric](other Vec2[S]) Vec2[T] {
	return Vec2[T]{T(other[0]), T(other[1])}
}

func (lhs Vec2[T]) XY() (x, y T) {
	x = lhs[0]
	y = lhs[1]
	return
}

// Unlerp2 maps a position inside the rectangle [0, extent] onto the unit square.
func Unlerp2[T float](pos, extent Vec2[T]) Vec2[T] {
	return Vec2[T]{
		Unlerp(pos[0], extent[0]),
		Unlerp(pos[1], extent[1]),
	}
}
