package sim

import (
	"github.com/taigrr/intercept/pkg/ballistics"
)

// Turret aims fixed-speed projectiles from Position at a moving target.
type Turret struct {
	Position     ballistics.Vec[float64]
	Speed        float64
	Acceleration ballistics.Vec[float64]
	Solver       ballistics.Solver[float64]
}

// Aim is what a turret sees in one frame.
type Aim struct {
	Motion ballistics.MotionState[float64]
	Times  []float64
	// Crosshairs holds the impact positions of at most the first two
	// solutions, relative to the turret.
	Crosshairs []ballistics.Vec[float64]
	Velocities []ballistics.Vec[float64]
}

// Track solves against a target with the given state.
func (t Turret) Track(pos, vel, acc ballistics.Vec[float64]) Aim {
	m := ballistics.MotionState[float64]{
		ToTarget:               pos.Sub(t.Position),
		TargetVelocity:         vel,
		ProjectileAcceleration: t.Acceleration,
		TargetAcceleration:     acc,
	}
	a := Aim{
		Motion: m,
		Times:  t.Solver.AllImpactTimes(ballistics.WithSpeed(t.Speed), m),
	}
	for i, tm := range a.Times {
		if i < 2 {
			a.Crosshairs = append(a.Crosshairs, t.Solver.ImpactPosition(tm, m))
		}
		a.Velocities = append(a.Velocities, t.Solver.FiringVelocity(tm, m))
	}
	return a
}

// TrackSpring solves against a spring-driven target.
func (t Turret) TrackSpring(target *SpringTarget) Aim {
	return t.Track(target.Position(), target.Velocity(), target.Acceleration())
}
