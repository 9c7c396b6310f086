package ballistics

import "github.com/taigrr/intercept/pkg/fmath"

// Conversions between the canonical Vec and fixed-size host arrays. Widening
// pads with zeros and narrowing drops trailing components; nothing else
// changes, so a round trip through a wider type is lossless.

// FromArray2 embeds a 2D vector.
func FromArray2[T fmath.Float](a [2]T) Vec[T] {
	return Vec[T]{a[0], a[1]}
}

// FromArray3 embeds a 3D vector.
func FromArray3[T fmath.Float](a [3]T) Vec[T] {
	return Vec[T]{a[0], a[1], a[2]}
}

// FromArray4 wraps a 4D vector.
func FromArray4[T fmath.Float](a [4]T) Vec[T] {
	return Vec[T](a)
}

// FromSlice embeds up to four leading components of s.
func FromSlice[T fmath.Float](s []T) Vec[T] {
	var v Vec[T]
	copy(v[:], s)
	return v
}

// Array2 returns the first two components.
func (a Vec[T]) Array2() [2]T {
	return [2]T{a[0], a[1]}
}

// Array3 returns the first three components.
func (a Vec[T]) Array3() [3]T {
	return [3]T{a[0], a[1], a[2]}
}

// Array4 returns all four components.
func (a Vec[T]) Array4() [4]T {
	return [4]T(a)
}

// Convert changes the precision of v, saturating out-of-range components.
func Convert[To, From fmath.Float](v Vec[From]) Vec[To] {
	return Vec[To]{
		fmath.Convert[To](v[0]),
		fmath.Convert[To](v[1]),
		fmath.Convert[To](v[2]),
		fmath.Convert[To](v[3]),
	}
}

// ConvertMotion changes the precision of every vector in m.
func ConvertMotion[To, From fmath.Float](m MotionState[From]) MotionState[To] {
	return MotionState[To]{
		ToTarget:               Convert[To](m.ToTarget),
		TargetVelocity:         Convert[To](m.TargetVelocity),
		ProjectileAcceleration: Convert[To](m.ProjectileAcceleration),
		TargetAcceleration:     Convert[To](m.TargetAcceleration),
	}
}

// ConvertSpec changes the precision of a firing spec.
func ConvertSpec[To, From fmath.Float](s FiringSpec[From]) FiringSpec[To] {
	return FiringSpec[To]{
		mode:      s.mode,
		speed:     fmath.Convert[To](s.speed),
		direction: Convert[To](s.direction),
	}
}
