package ballistics

import (
	"github.com/taigrr/intercept/pkg/fmath"
	"github.com/taigrr/intercept/pkg/roots"
)

// FiringMode selects which quantity of the shot is fixed.
type FiringMode uint8

const (
	// ModeSpeed fixes the projectile speed; its direction is solved for.
	ModeSpeed FiringMode = iota
	// ModeDirection fixes the firing direction; its speed is solved for.
	ModeDirection
)

func (m FiringMode) String() string {
	switch m {
	case ModeSpeed:
		return "speed"
	case ModeDirection:
		return "direction"
	default:
		return "unknown"
	}
}

// FiringSpec fixes either the projectile speed or its direction, never both.
// The zero value fires at speed zero.
type FiringSpec[T fmath.Float] struct {
	mode      FiringMode
	speed     T
	direction Vec[T]
}

// WithSpeed fixes the projectile speed. A negative speed is accepted and
// enters the equations squared; solvers report it as a warning.
func WithSpeed[T fmath.Float](speed T) FiringSpec[T] {
	return FiringSpec[T]{mode: ModeSpeed, speed: speed}
}

// WithDirection fixes the firing direction. dir is normalized. A zero dir
// removes nothing from the relative motion, so only times at which the target
// drifts onto the shooter itself are solutions.
func WithDirection[T fmath.Float](dir Vec[T]) FiringSpec[T] {
	return FiringSpec[T]{mode: ModeDirection, direction: dir.Normalize()}
}

// Mode reports which quantity is fixed.
func (s FiringSpec[T]) Mode() FiringMode { return s.mode }

// Speed returns the fixed speed and whether the spec is speed constrained.
func (s FiringSpec[T]) Speed() (T, bool) { return s.speed, s.mode == ModeSpeed }

// Direction returns the fixed unit direction and whether the spec is
// direction constrained.
func (s FiringSpec[T]) Direction() (Vec[T], bool) { return s.direction, s.mode == ModeDirection }

// MotionState describes the engagement in the shooter's frame at time zero.
type MotionState[T fmath.Float] struct {
	ToTarget               Vec[T] // target position relative to the shooter
	TargetVelocity         Vec[T]
	ProjectileAcceleration Vec[T]
	TargetAcceleration     Vec[T]
}

// RelativeAcceleration returns projectile minus target acceleration.
func (m MotionState[T]) RelativeAcceleration() Vec[T] {
	return m.ProjectileAcceleration.Sub(m.TargetAcceleration)
}

// Polynomial holds [a, b, c, d, e] of a*t^4 + b*t^3 + c*t^2 + d*t + e.
type Polynomial[T fmath.Float] [5]T

// Eval returns the polynomial value at t.
func (p Polynomial[T]) Eval(t T) T {
	return (((p[0]*t+p[1])*t+p[2])*t+p[3])*t + p[4]
}

// IsFinite reports whether every coefficient is finite.
func (p Polynomial[T]) IsFinite() bool {
	for _, c := range p {
		if !fmath.IsFinite(c) {
			return false
		}
	}
	return true
}

// Roots returns the distinct real roots in ascending order.
func (p Polynomial[T]) Roots() []T {
	return roots.Quartic(p[0], p[1], p[2], p[3], p[4])
}

// Coefficients builds the interception quartic for a firing spec.
//
// In speed mode the roots are the times at which a projectile at the given
// speed, under its own acceleration, can cover the displacement to the
// accelerating target: |r + v*t - k*t^2/2|^2 = s^2*t^2 with k the relative
// acceleration. In direction mode the same expansion is applied to the
// components orthogonal to the firing direction with s = 0, so the roots are
// the times at which the target drifts onto the firing line.
func Coefficients[T fmath.Float](spec FiringSpec[T], m MotionState[T]) Polynomial[T] {
	k := m.RelativeAcceleration()
	v := m.TargetVelocity
	r := m.ToTarget

	var speed T
	if dir, ok := spec.Direction(); ok {
		k, v, r = k.Reject(dir), v.Reject(dir), r.Reject(dir)
	} else {
		speed = spec.speed
	}

	return Polynomial[T]{
		k.LenSq() / 4,
		-k.Dot(v),
		v.LenSq() - k.Dot(r) - speed*speed,
		2 * v.Dot(r),
		r.LenSq(),
	}
}
