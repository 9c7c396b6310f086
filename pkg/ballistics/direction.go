package ballistics

import (
	"github.com/taigrr/intercept/pkg/fmath"
	"github.com/taigrr/intercept/pkg/roots"
)

// maxRefine bounds the Newton steps taken on each line crossing.
const maxRefine = 2

// crossingTol is the largest transverse miss, relative to the size of the
// engagement at that time, still counted as on the firing line.
func crossingTol[T fmath.Float]() T {
	return 16 * fmath.Sqrt(fmath.Epsilon[T]())
}

// offAxis is the target's offset from the firing line over time,
// w(t) = r + v*t - k*t^2/2 with every term orthogonal to the line.
type offAxis[T fmath.Float] struct {
	r, v, k Vec[T]
}

func (o offAxis[T]) at(t T) Vec[T] {
	return o.r.Add(o.v.Scale(t)).Sub(o.k.Scale(t * t / 2))
}

// lineCrossings returns the times at which the target lies on the firing
// line. The direction-mode quartic is |w(t)|^2, a sum of squares, so each of
// those times is a double root that round-off can push off the real axis.
// They are found instead among the stationary points of |w|^2, the roots of
// its derivative, keeping those where w itself vanishes.
func lineCrossings[T fmath.Float](spec FiringSpec[T], m MotionState[T]) []T {
	dir := spec.direction
	o := offAxis[T]{
		r: m.ToTarget.Reject(dir),
		v: m.TargetVelocity.Reject(dir),
		k: m.RelativeAcceleration().Reject(dir),
	}
	p := Coefficients(spec, m)

	// Rounding in the projection scales with the full vectors, not with
	// their transverse parts.
	r, v, k := m.ToTarget.Len(), m.TargetVelocity.Len(), m.RelativeAcceleration().Len()
	tol := crossingTol[T]()

	var out []T
	for _, t := range roots.Cubic(4*p[0], 3*p[1], 2*p[2], p[3]) {
		t = o.refine(t)
		at := fmath.Abs(t)
		if o.at(t).Len() <= tol*(r+v*at+k*at*at/2) {
			out = append(out, t)
		}
	}
	return out
}

// refine takes Newton steps on d|w|^2/dt evaluated from the vectors, which
// keeps the precision the expanded coefficients lose. A step is kept only if
// it brings the target closer to the line.
func (o offAxis[T]) refine(t T) T {
	best := o.at(t).LenSq()
	for range maxRefine {
		w := o.at(t)
		dw := o.v.Sub(o.k.Scale(t))
		g := w.Dot(dw)
		dg := dw.LenSq() - w.Dot(o.k)
		if g == 0 || dg == 0 {
			break
		}
		next := t - g/dg
		n := o.at(next).LenSq()
		if !(n < best) {
			break
		}
		t, best = next, n
	}
	return t
}
