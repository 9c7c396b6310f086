// Package ballistics predicts where and when a projectile under constant
// acceleration can meet a target that is itself accelerating, and with which
// firing velocity.
//
// Every computation is a pure function of its arguments. Missing solutions
// are reported as data: an empty slice from the All* methods, NaN from
// BestImpactTime, and a NaN vector from the vector-valued Best* methods.
// Suspicious inputs are reported to an optional Sink and never abort a call.
package ballistics

import (
	"slices"

	"github.com/taigrr/intercept/pkg/fmath"
)

const messagePrefix = "ballistics: "

// Solution describes one way to hit the target.
type Solution[T fmath.Float] struct {
	Time           T
	ImpactPosition Vec[T]
	FiringVelocity Vec[T]
}

// Solver computes interceptions in precision T. The zero value is ready to
// use and discards diagnostics. A Solver is immutable and safe for concurrent
// use as long as its Sink is.
type Solver[T fmath.Float] struct {
	sink Sink
}

// Option configures a Solver.
type Option func(*solverOptions)

type solverOptions struct {
	sink Sink
}

// WithSink routes diagnostics to s.
func WithSink(s Sink) Option {
	return func(o *solverOptions) {
		o.sink = s
	}
}

// NewSolver creates a Solver.
func NewSolver[T fmath.Float](opts ...Option) Solver[T] {
	var o solverOptions
	for _, opt := range opts {
		opt(&o)
	}
	return Solver[T]{sink: o.sink}
}

func (s Solver[T]) report(level Level, msg string) {
	if s.sink == nil {
		return
	}
	s.sink.Report(Diagnostic{Level: level, Message: messagePrefix + msg})
}

func (s Solver[T]) checkSpec(op string, spec FiringSpec[T]) {
	if speed, ok := spec.Speed(); ok && speed < 0 {
		s.report(LevelWarning, op+": negative projectile speed")
	}
}

// AllImpactTimes returns every interception time t > 0 in ascending order.
func (s Solver[T]) AllImpactTimes(spec FiringSpec[T], m MotionState[T]) []T {
	s.checkSpec("AllImpactTimes", spec)
	return impactTimes(spec, m)
}

// BestImpactTime returns the earliest interception time, or NaN if the target
// cannot be reached.
func (s Solver[T]) BestImpactTime(spec FiringSpec[T], m MotionState[T]) T {
	s.checkSpec("BestImpactTime", spec)
	return first(impactTimes(spec, m))
}

// ImpactPosition returns where the target is at time t, relative to the
// shooter's position at time zero.
func (s Solver[T]) ImpactPosition(t T, m MotionState[T]) Vec[T] {
	return m.ToTarget.Add(Displacement(t, m.TargetVelocity, m.TargetAcceleration))
}

// FiringVelocity returns the launch velocity that puts the projectile on the
// target at time t. It is defined for t > 0 only; other values yield a NaN
// vector and an error diagnostic.
func (s Solver[T]) FiringVelocity(t T, m MotionState[T]) Vec[T] {
	if t <= 0 {
		s.report(LevelError, "FiringVelocity: zero or negative impact time, returned NaN vector")
		return NaNVec[T]()
	}
	return firingVelocity(t, m)
}

// BestImpactPosition returns the impact position of the earliest
// interception, or a NaN vector if there is none.
func (s Solver[T]) BestImpactPosition(spec FiringSpec[T], m MotionState[T]) Vec[T] {
	s.checkSpec("BestImpactPosition", spec)
	t := first(impactTimes(spec, m))
	if fmath.IsNaN(t) {
		return NaNVec[T]()
	}
	return s.ImpactPosition(t, m)
}

// BestFiringVelocity returns the firing velocity of the earliest
// interception, or a NaN vector if there is none.
func (s Solver[T]) BestFiringVelocity(spec FiringSpec[T], m MotionState[T]) Vec[T] {
	s.checkSpec("BestFiringVelocity", spec)
	t := first(impactTimes(spec, m))
	if fmath.IsNaN(t) {
		return NaNVec[T]()
	}
	return firingVelocity(t, m)
}

// AllImpactPositions maps ImpactPosition over AllImpactTimes.
func (s Solver[T]) AllImpactPositions(spec FiringSpec[T], m MotionState[T]) []Vec[T] {
	s.checkSpec("AllImpactPositions", spec)
	times := impactTimes(spec, m)
	out := make([]Vec[T], len(times))
	for i, t := range times {
		out[i] = s.ImpactPosition(t, m)
	}
	return out
}

// AllFiringVelocities maps FiringVelocity over AllImpactTimes.
func (s Solver[T]) AllFiringVelocities(spec FiringSpec[T], m MotionState[T]) []Vec[T] {
	s.checkSpec("AllFiringVelocities", spec)
	times := impactTimes(spec, m)
	out := make([]Vec[T], len(times))
	for i, t := range times {
		out[i] = firingVelocity(t, m)
	}
	return out
}

// Solve returns every interception with its impact position and firing
// velocity, earliest first.
func (s Solver[T]) Solve(spec FiringSpec[T], m MotionState[T]) []Solution[T] {
	s.checkSpec("Solve", spec)
	times := impactTimes(spec, m)
	out := make([]Solution[T], len(times))
	for i, t := range times {
		out[i] = Solution[T]{
			Time:           t,
			ImpactPosition: s.ImpactPosition(t, m),
			FiringVelocity: firingVelocity(t, m),
		}
	}
	return out
}

// Displacement returns how far a body starting with velocity v and constant
// acceleration a travels in time t.
func Displacement[T fmath.Float](t T, v, a Vec[T]) Vec[T] {
	return v.Add(a.Scale(t / 2)).Scale(t)
}

func impactTimes[T fmath.Float](spec FiringSpec[T], m MotionState[T]) []T {
	var rs []T
	if spec.mode == ModeDirection {
		rs = lineCrossings(spec, m)
	} else {
		rs = Coefficients(spec, m).Roots()
	}
	times := make([]T, 0, len(rs))
	for _, r := range rs {
		if r > 0 {
			times = append(times, r)
		}
	}
	slices.Sort(times)
	return slices.Compact(times)
}

func firingVelocity[T fmath.Float](t T, m MotionState[T]) Vec[T] {
	return m.ToTarget.Div(t).
		Add(m.TargetVelocity).
		Sub(m.RelativeAcceleration().Scale(t / 2))
}

func first[T fmath.Float](times []T) T {
	if len(times) == 0 {
		return fmath.NaN[T]()
	}
	return times[0]
}

// Package-level shortcuts using a Solver that discards diagnostics.

// AllImpactTimes calls Solver.AllImpactTimes on a zero Solver.
func AllImpactTimes[T fmath.Float](spec FiringSpec[T], m MotionState[T]) []T {
	return Solver[T]{}.AllImpactTimes(spec, m)
}

// BestImpactTime calls Solver.BestImpactTime on a zero Solver.
func BestImpactTime[T fmath.Float](spec FiringSpec[T], m MotionState[T]) T {
	return Solver[T]{}.BestImpactTime(spec, m)
}

// ImpactPosition calls Solver.ImpactPosition on a zero Solver.
func ImpactPosition[T fmath.Float](t T, m MotionState[T]) Vec[T] {
	return Solver[T]{}.ImpactPosition(t, m)
}

// FiringVelocity calls Solver.FiringVelocity on a zero Solver.
func FiringVelocity[T fmath.Float](t T, m MotionState[T]) Vec[T] {
	return Solver[T]{}.FiringVelocity(t, m)
}

// BestImpactPosition calls Solver.BestImpactPosition on a zero Solver.
func BestImpactPosition[T fmath.Float](spec FiringSpec[T], m MotionState[T]) Vec[T] {
	return Solver[T]{}.BestImpactPosition(spec, m)
}

// BestFiringVelocity calls Solver.BestFiringVelocity on a zero Solver.
func BestFiringVelocity[T fmath.Float](spec FiringSpec[T], m MotionState[T]) Vec[T] {
	return Solver[T]{}.BestFiringVelocity(spec, m)
}

// AllImpactPositions calls Solver.AllImpactPositions on a zero Solver.
func AllImpactPositions[T fmath.Float](spec FiringSpec[T], m MotionState[T]) []Vec[T] {
	return Solver[T]{}.AllImpactPositions(spec, m)
}

// AllFiringVelocities calls Solver.AllFiringVelocities on a zero Solver.
func AllFiringVelocities[T fmath.Float](spec FiringSpec[T], m MotionState[T]) []Vec[T] {
	return Solver[T]{}.AllFiringVelocities(spec, m)
}

// Solve calls Solver.Solve on a zero Solver.
func Solve[T fmath.Float](spec FiringSpec[T], m MotionState[T]) []Solution[T] {
	return Solver[T]{}.Solve(spec, m)
}
