// Package math3d provides the float64 vector and rotation types intercept
// exchanges with callers. The solvers work on their own canonical vector;
// these types live at the edges and convert through fixed-size arrays.
package math3d

// Vec3 represents a 3D vector.
type Vec3 struct {
	X, Y, Z float64
}

// V3 creates a new Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Vec3FromArray creates a Vec3 from its components.
func Vec3FromArray(a [3]float64) Vec3 {
	return Vec3{a[0], a[1], a[2]}
}

// Array returns the components in order.
func (a Vec3) Array() [3]float64 {
	return [3]float64{a.X, a.Y, a.Z}
}

// Forward returns the world forward vector (0, 0, -1).
func Forward() Vec3 {
	return Vec3{0, 0, -1}
}

// Sub returns the vector difference a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func (a Vec3) String() string {
	return formatComponents(a.X, a.Y, a.Z)
}
