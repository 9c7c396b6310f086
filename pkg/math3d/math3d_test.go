package math3d

import (
	"math"
	"testing"
)

func TestAim(t *testing.T) {
	tests := []struct {
		name       string
		yaw, pitch float64
		expected   Vec3
	}{
		{"forward", 0, 0, Forward()},
		{"straight up", 0, math.Pi / 2, V3(0, 1, 0)},
		{"quarter left", math.Pi / 2, 0, V3(-1, 0, 0)},
		{"raised and turned", math.Pi / 2, math.Pi / 4, V3(-math.Sqrt2/2, math.Sqrt2/2, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Aim(tc.yaw, tc.pitch)
			if length(got.Sub(tc.expected)) > 1e-12 {
				t.Errorf("got %v, want %v", got, tc.expected)
			}
			if math.Abs(length(got)-1) > 1e-12 {
				t.Errorf("length = %v, want 1", length(got))
			}
		})
	}
}

func length(v Vec3) float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func TestMat4MulComposesRotations(t *testing.T) {
	got := RotateY(0.4).Mul(RotateY(-1.1))
	want := RotateY(-0.7)
	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("element %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestArrayRoundTrip(t *testing.T) {
	if v := V2(1, -2); Vec2FromArray(v.Array()) != v {
		t.Errorf("Vec2 round trip changed %v", v)
	}
	if v := V3(1, -2, 3); Vec3FromArray(v.Array()) != v {
		t.Errorf("Vec3 round trip changed %v", v)
	}
	if v := (Vec4{1, -2, 3, -4}); Vec4FromArray(v.Array()) != v {
		t.Errorf("Vec4 round trip changed %v", v)
	}
}

func TestString(t *testing.T) {
	if got := V3(1, 0.5, -2).String(); got != "(1, 0.5, -2)" {
		t.Errorf("String() = %q", got)
	}
	if got := V2(3, 4).String(); got != "(3, 4)" {
		t.Errorf("String() = %q", got)
	}
}
