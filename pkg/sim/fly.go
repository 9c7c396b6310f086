package sim

import (
	"errors"
	"fmt"
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/taigrr/intercept/pkg/ballistics"
)

// ErrBadFlight is returned when a flight cannot be stepped.
var ErrBadFlight = errors.New("sim: invalid flight")

// Result is the outcome of replaying one shot.
type Result struct {
	Steps         int
	ProjectileEnd ballistics.Vec[float64]
	TargetEnd     ballistics.Vec[float64]
	// Miss is the distance between projectile and target after the last step.
	Miss float64
}

// Fly launches a projectile from the origin with velocity and steps both it
// and the target, in at most three dimensions, at roughly fps frames per second until impactTime. The step
// is shortened so a whole number of frames ends exactly at impactTime.
//
// harmonica integrates with explicit Euler, so each body lags its exact path
// by a*t*dt/2. MissBound gives the resulting upper bound on Miss.
func Fly(m ballistics.MotionState[float64], velocity ballistics.Vec[float64], impactTime float64, fps int) (Result, error) {
	if !(impactTime > 0) || math.IsInf(impactTime, 0) {
		return Result{}, fmt.Errorf("%w: impact time %v", ErrBadFlight, impactTime)
	}
	if fps <= 0 {
		return Result{}, fmt.Errorf("%w: fps %d", ErrBadFlight, fps)
	}
	if !velocity.IsFinite() || !m.ToTarget.IsFinite() {
		return Result{}, fmt.Errorf("%w: non-finite state", ErrBadFlight)
	}
	for _, v := range []ballistics.Vec[float64]{velocity, m.ToTarget, m.TargetVelocity, m.ProjectileAcceleration, m.TargetAcceleration} {
		if v[3] != 0 {
			return Result{}, fmt.Errorf("%w: fourth component %v", ErrBadFlight, v[3])
		}
	}

	steps := int(math.Ceil(impactTime * float64(fps)))
	dt := impactTime / float64(steps)

	projectile := harmonica.NewProjectile(dt, harmonica.Point{}, ToVector(velocity), ToVector(m.ProjectileAcceleration))
	target := harmonica.NewProjectile(dt, ToPoint(m.ToTarget), ToVector(m.TargetVelocity), ToVector(m.TargetAcceleration))

	for range steps {
		projectile.Update()
		target.Update()
	}

	res := Result{
		Steps:         steps,
		ProjectileEnd: FromPoint(projectile.Position()),
		TargetEnd:     FromPoint(target.Position()),
	}
	res.Miss = res.ProjectileEnd.Sub(res.TargetEnd).Len()
	return res, nil
}

// MissBound is the largest Miss that Fly can report for an exact solution,
// given the step count it used.
func MissBound(m ballistics.MotionState[float64], impactTime float64, steps int) float64 {
	dt := impactTime / float64(steps)
	return m.RelativeAcceleration().Len() * impactTime * dt / 2
}
