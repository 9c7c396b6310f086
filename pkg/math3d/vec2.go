package math3d

import (
	"strconv"
	"strings"
)

// Vec2 represents a 2D vector, as used by planar engagements.
type Vec2 struct {
	X, Y float64
}

// V2 creates a new Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{x, y}
}

// Vec2FromArray creates a Vec2 from its components.
func Vec2FromArray(a [2]float64) Vec2 {
	return Vec2{a[0], a[1]}
}

// Array returns the components in order.
func (a Vec2) Array() [2]float64 {
	return [2]float64{a.X, a.Y}
}

func (a Vec2) String() string {
	return formatComponents(a.X, a.Y)
}

// formatComponents renders "(x, y, ...)" to six significant digits.
func formatComponents(cs ...float64) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, c := range cs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(c, 'g', 6, 64))
	}
	b.WriteByte(')')
	return b.String()
}
