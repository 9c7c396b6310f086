package math3d

// Vec4 represents a 4D vector.
type Vec4 struct {
	X, Y, Z, W float64
}

// Vec4FromArray creates a Vec4 from its components.
func Vec4FromArray(a [4]float64) Vec4 {
	return Vec4{a[0], a[1], a[2], a[3]}
}

// Array returns the components in order.
func (v Vec4) Array() [4]float64 {
	return [4]float64{v.X, v.Y, v.Z, v.W}
}

func (v Vec4) String() string {
	return formatComponents(v.X, v.Y, v.Z, v.W)
}
