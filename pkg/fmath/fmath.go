// Package fmath provides the floating-point capability the solvers are
// generic over. Every function computes in the caller's precision: float32
// inputs are rounded back to float32 after each library call.
package fmath

import (
	"math"
	"unsafe"
)

// Float is satisfied by single and double precision types.
type Float interface {
	~float32 | ~float64
}

func single[T Float]() bool {
	var x T
	return unsafe.Sizeof(x) == 4
}

// Epsilon returns the machine epsilon of T.
func Epsilon[T Float]() T {
	if single[T]() {
		eps := 0x1p-23
		return T(eps)
	}
	eps := 0x1p-52
	return T(eps)
}

// MaxFinite returns the largest finite value of T.
func MaxFinite[T Float]() T {
	if single[T]() {
		m := float64(math.MaxFloat32)
		return T(m)
	}
	m := math.MaxFloat64
	return T(m)
}

// NaN returns a quiet NaN of type T.
func NaN[T Float]() T {
	return T(math.NaN())
}

// Inf returns positive infinity if sign >= 0, negative infinity if sign < 0.
func Inf[T Float](sign int) T {
	return T(math.Inf(sign))
}

// IsNaN reports whether x is NaN.
func IsNaN[T Float](x T) bool {
	return math.IsNaN(float64(x))
}

// IsInf reports whether x is an infinity of either sign.
func IsInf[T Float](x T) bool {
	return math.IsInf(float64(x), 0)
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite[T Float](x T) bool {
	return !IsNaN(x) && !IsInf(x)
}

// Abs returns |x|.
func Abs[T Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Max returns the larger of a and b. NaN is ignored if the other value is a number.
func Max[T Float](a, b T) T {
	if a > b || IsNaN(b) {
		return a
	}
	return b
}

// Copysign returns a value with the magnitude of x and the sign of y.
func Copysign[T Float](x, y T) T {
	return T(math.Copysign(float64(x), float64(y)))
}

// Sqrt returns the square root of x.
func Sqrt[T Float](x T) T {
	return T(math.Sqrt(float64(x)))
}

// Cbrt returns the real cube root of x.
func Cbrt[T Float](x T) T {
	return T(math.Cbrt(float64(x)))
}

// Cos returns the cosine of x.
func Cos[T Float](x T) T {
	return T(math.Cos(float64(x)))
}

// Acos returns the arccosine of x, with x clamped to [-1, 1].
func Acos[T Float](x T) T {
	switch {
	case x > 1:
		x = 1
	case x < -1:
		x = -1
	}
	return T(math.Acos(float64(x)))
}

// Convert changes precision with saturation: finite values outside the range
// of To clamp to its largest finite magnitude, NaN and infinities carry over.
func Convert[To, From Float](x From) To {
	f := float64(x)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return To(f)
	}
	limit := float64(MaxFinite[To]())
	switch {
	case f > limit:
		return To(limit)
	case f < -limit:
		return To(-limit)
	}
	return To(f)
}
