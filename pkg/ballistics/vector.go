package ballistics

import "github.com/taigrr/intercept/pkg/fmath"

// Vec is the canonical vector every solver works on. Two and three
// dimensional inputs are embedded with trailing zero components.
type Vec[T fmath.Float] [4]T

// V2 creates a Vec from two components.
func V2[T fmath.Float](x, y T) Vec[T] {
	return Vec[T]{x, y}
}

// V3 creates a Vec from three components.
func V3[T fmath.Float](x, y, z T) Vec[T] {
	return Vec[T]{x, y, z}
}

// V4 creates a Vec from four components.
func V4[T fmath.Float](x, y, z, w T) Vec[T] {
	return Vec[T]{x, y, z, w}
}

// NaNVec returns a vector with every component set to NaN.
func NaNVec[T fmath.Float]() Vec[T] {
	n := fmath.NaN[T]()
	return Vec[T]{n, n, n, n}
}

// Add returns the vector sum a + b.
func (a Vec[T]) Add(b Vec[T]) Vec[T] {
	return Vec[T]{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

// Sub returns the vector difference a - b.
func (a Vec[T]) Sub(b Vec[T]) Vec[T] {
	return Vec[T]{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

// Scale returns the scalar product a * s.
func (a Vec[T]) Scale(s T) Vec[T] {
	return Vec[T]{a[0] * s, a[1] * s, a[2] * s, a[3] * s}
}

// Div returns the scalar division a / s.
func (a Vec[T]) Div(s T) Vec[T] {
	return Vec[T]{a[0] / s, a[1] / s, a[2] / s, a[3] / s}
}

// Dot returns the dot product a · b.
func (a Vec[T]) Dot(b Vec[T]) T {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}

// LenSq returns the squared length.
func (a Vec[T]) LenSq() T {
	return a.Dot(a)
}

// Len returns the length.
func (a Vec[T]) Len() T {
	return fmath.Sqrt(a.LenSq())
}

// Normalize returns the unit vector in the same direction, or the zero
// vector if a has no length.
func (a Vec[T]) Normalize() Vec[T] {
	l := a.Len()
	if l == 0 {
		return Vec[T]{}
	}
	return a.Div(l)
}

// Reject returns the component of a orthogonal to the unit vector dir.
func (a Vec[T]) Reject(dir Vec[T]) Vec[T] {
	return a.Sub(dir.Scale(a.Dot(dir)))
}

// IsNaN reports whether any component is NaN.
func (a Vec[T]) IsNaN() bool {
	for _, c := range a {
		if fmath.IsNaN(c) {
			return true
		}
	}
	return false
}

// IsFinite reports whether every component is finite.
func (a Vec[T]) IsFinite() bool {
	for _, c := range a {
		if !fmath.IsFinite(c) {
			return false
		}
	}
	return true
}
