package math3d

import (
	"testing"
)

func BenchmarkMat4Mul(b *testing.B) {
	m1 := RotateX(0.3)
	m2 := RotateY(0.5)

	for b.Loop() {
		_ = m1.Mul(m2)
	}
}

func BenchmarkAim(b *testing.B) {
	for b.Loop() {
		_ = Aim(0.5, 0.2)
	}
}
