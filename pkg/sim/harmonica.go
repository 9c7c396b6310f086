// Package sim replays interception solutions frame by frame with
// harmonica's projectile integrator, and drives the moving target of the
// turret demo with harmonica springs.
package sim

import (
	"github.com/charmbracelet/harmonica"

	"github.com/taigrr/intercept/pkg/ballistics"
)

// ToPoint converts the first three components of v to a harmonica.Point.
func ToPoint(v ballistics.Vec[float64]) harmonica.Point {
	return harmonica.Point{X: v[0], Y: v[1], Z: v[2]}
}

// ToVector converts the first three components of v to a harmonica.Vector.
func ToVector(v ballistics.Vec[float64]) harmonica.Vector {
	return harmonica.Vector{X: v[0], Y: v[1], Z: v[2]}
}

// FromPoint converts a harmonica.Point back to a canonical vector.
func FromPoint(p harmonica.Point) ballistics.Vec[float64] {
	return ballistics.V3(p.X, p.Y, p.Z)
}

// FromVector converts a harmonica.Vector back to a canonical vector.
func FromVector(v harmonica.Vector) ballistics.Vec[float64] {
	return ballistics.V3(v.X, v.Y, v.Z)
}
