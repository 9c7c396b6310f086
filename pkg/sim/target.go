package sim

import (
	"github.com/charmbracelet/harmonica"

	"github.com/taigrr/intercept/pkg/ballistics"
)

// axis is one coordinate of a spring-driven body.
type axis struct {
	pos, vel float64
	spring   harmonica.Spring
}

// SpringTarget is a planar target that chases a goal point on damped
// springs, giving it a velocity and acceleration that change every frame.
type SpringTarget struct {
	x, y axis
	goal ballistics.Vec[float64]
	acc  ballistics.Vec[float64]
	dt   float64
}

// NewSpringTarget places a target at start. Frequency and damping follow
// harmonica.NewSpring.
func NewSpringTarget(fps int, start ballistics.Vec[float64], frequency, damping float64) *SpringTarget {
	dt := harmonica.FPS(fps)
	return &SpringTarget{
		x:    axis{pos: start[0], spring: harmonica.NewSpring(dt, frequency, damping)},
		y:    axis{pos: start[1], spring: harmonica.NewSpring(dt, frequency, damping)},
		goal: start,
		dt:   dt,
	}
}

// SetGoal retargets the springs.
func (t *SpringTarget) SetGoal(goal ballistics.Vec[float64]) {
	t.goal = goal
}

// Step advances one frame.
func (t *SpringTarget) Step() {
	prev := t.Velocity()
	t.x.pos, t.x.vel = t.x.spring.Update(t.x.pos, t.x.vel, t.goal[0])
	t.y.pos, t.y.vel = t.y.spring.Update(t.y.pos, t.y.vel, t.goal[1])
	t.acc = t.Velocity().Sub(prev).Div(t.dt)
}

// Position returns the current position.
func (t *SpringTarget) Position() ballistics.Vec[float64] {
	return ballistics.V2(t.x.pos, t.y.pos)
}

// Velocity returns the current velocity.
func (t *SpringTarget) Velocity() ballistics.Vec[float64] {
	return ballistics.V2(t.x.vel, t.y.vel)
}

// Acceleration returns the velocity change over the last frame per second.
func (t *SpringTarget) Acceleration() ballistics.Vec[float64] {
	return t.acc
}
