// Package roots finds the real roots of real polynomials of degree four or
// less using closed-form methods.
//
// Coefficients are given highest degree first. Every solver normalizes by the
// largest coefficient magnitude, so the near-zero tests that decide the
// effective degree are scale invariant: multiplying all coefficients by a
// constant never changes the result.
//
// Results are ascending, finite, and free of near-duplicates; a double root
// is reported once. Two roots closer than 16·√ε relative to their magnitude
// cannot be told apart from a double root and are also reported once, at
// whichever estimate has the smaller residual. That is about 5e-3 for
// float32 and 2e-7 for float64. Non-finite coefficients, or a polynomial whose only
// non-negligible coefficient is the constant term, produce an empty result.
package roots

import (
	"math"
	"slices"

	"github.com/taigrr/intercept/pkg/fmath"
)

// maxPolish bounds the Newton refinement applied to each closed-form root.
const maxPolish = 2

// zeroTol is the relative magnitude below which a leading coefficient is
// treated as zero.
func zeroTol[T fmath.Float]() T {
	return 64 * fmath.Epsilon[T]()
}

// realTol is the relative size of an imaginary part (or root separation)
// that is attributed to round-off. Perturbing a double root by ε splits it by
// roughly √ε, hence the square root.
func realTol[T fmath.Float]() T {
	return 16 * fmath.Sqrt(fmath.Epsilon[T]())
}

// Linear returns the root of a*x + b = 0.
func Linear[T fmath.Float](a, b T) []T {
	return solve(a, b)
}

// Quadratic returns the real roots of a*x^2 + b*x + c = 0.
func Quadratic[T fmath.Float](a, b, c T) []T {
	return solve(a, b, c)
}

// Cubic returns the real roots of a*x^3 + b*x^2 + c*x + d = 0.
func Cubic[T fmath.Float](a, b, c, d T) []T {
	return solve(a, b, c, d)
}

// Quartic returns the real roots of a*x^4 + b*x^3 + c*x^2 + d*x + e = 0.
// Leading coefficients that are negligible relative to the others reduce the
// degree.
func Quartic[T fmath.Float](a, b, c, d, e T) []T {
	return solve(a, b, c, d, e)
}

func solve[T fmath.Float](coeffs ...T) []T {
	var scale T
	for _, c := range coeffs {
		if !fmath.IsFinite(c) {
			return nil
		}
		scale = fmath.Max(scale, fmath.Abs(c))
	}
	if scale == 0 {
		return nil
	}

	tol := zeroTol[T]()
	p := make([]T, 0, len(coeffs))
	for _, c := range coeffs {
		c /= scale
		if len(p) == 0 && fmath.Abs(c) <= tol {
			continue
		}
		p = append(p, c)
	}

	var rs []T
	switch len(p) {
	case 0, 1:
		return nil
	case 2:
		rs = []T{-p[1] / p[0]}
	case 3:
		rs = quadratic(p[0], p[1], p[2])
	case 4:
		rs = cubicMonic(p[1]/p[0], p[2]/p[0], p[3]/p[0])
	default:
		rs = ferrari(p[1]/p[0], p[2]/p[0], p[3]/p[0], p[4]/p[0])
	}
	return finalize(p, rs)
}

// quadratic solves a*x^2 + b*x + c = 0 for a != 0. When the discriminant is
// round-off relative to the root magnitude, the pair collapses to a double
// root whichever side of zero it landed on.
func quadratic[T fmath.Float](a, b, c T) []T {
	disc := b*b - 4*a*c
	if fmath.Sqrt(fmath.Abs(disc)) <= realTol[T]()*fmath.Sqrt(b*b+fmath.Abs(4*a*c)) {
		disc = 0
	}
	if disc < 0 {
		return nil
	}

	// Take the root where b and the square root add, then the other from
	// the product of roots, so neither suffers cancellation.
	q := -(b + fmath.Copysign(fmath.Sqrt(disc), b)) / 2
	if q == 0 {
		return []T{0}
	}
	return []T{q / a, c / q}
}

// cubicMonic solves x^3 + b*x^2 + c*x + d = 0.
func cubicMonic[T fmath.Float](b, c, d T) []T {
	shift := b / 3
	// Depressed form t^3 + p*t + q = 0 with x = t - shift.
	p := c - b*shift
	q := d - shift*c + 2*shift*shift*shift

	h := q*q/4 + p*p*p/27
	hScale := q*q/4 + fmath.Abs(p*p*p)/27

	switch {
	case h > zeroTol[T]()*hScale:
		// One real root. The two Cardano radicals multiply to -p/3, so
		// only the larger one is evaluated directly.
		u := fmath.Cbrt(-q/2 - fmath.Copysign(fmath.Sqrt(h), q))
		t := u
		if u != 0 {
			t = u - p/(3*u)
		}
		return []T{t - shift}
	case p >= 0:
		// h ~ 0 with p >= 0 leaves p ~ 0: a triple root.
		return []T{fmath.Cbrt(-q) - shift}
	}

	m := 2 * fmath.Sqrt(-p/3)
	theta := fmath.Acos(3*q/(p*m)) / 3
	const third = 2 * math.Pi / 3
	return []T{
		m*fmath.Cos(theta) - shift,
		m*fmath.Cos(theta-third) - shift,
		m*fmath.Cos(theta-2*third) - shift,
	}
}

// ferrari solves x^4 + b*x^3 + c*x^2 + d*x + e = 0.
func ferrari[T fmath.Float](b, c, d, e T) []T {
	shift := b / 4
	b2 := b * b
	// Depressed form u^4 + p*u^2 + q*u + r = 0 with x = u - shift.
	p := c - 3*b2/8
	q := d - b*c/2 + b2*b/8
	r := e - b*d/4 + b2*c/16 - 3*b2*b2/256

	// Characteristic root magnitude, used to judge q and imaginary parts.
	size := fmath.Max(fmath.Sqrt(fmath.Abs(p)), fmath.Sqrt(fmath.Sqrt(fmath.Abs(r))))
	imag := realTol[T]()

	var us []T
	if fmath.Abs(q) <= zeroTol[T]()*size*size*size {
		// Biquadratic: solve for y = u^2.
		for _, y := range quadratic(1, p, r) {
			switch {
			case fmath.Sqrt(fmath.Abs(y)) <= imag*size:
				us = append(us, 0)
			case y > 0:
				s := fmath.Sqrt(y)
				us = append(us, -s, s)
			}
		}
	} else {
		// Resolvent cubic 8m^3 + 8p*m^2 + (2p^2 - 8r)*m - q^2 = 0. It is
		// negative at m = 0, so its largest root is positive, and the
		// largest root keeps q/(2s) well conditioned.
		ms := cubicMonic(p, p*p/4-r, -q*q/8)
		m := slices.Max(ms)
		if !(m > 0) {
			return nil
		}
		s := fmath.Sqrt(2 * m)
		k := q / (2 * s)
		us = append(us, quadratic(1, s, p/2+m-k)...)
		us = append(us, quadratic(1, -s, p/2+m+k)...)
	}

	for i := range us {
		us[i] -= shift
	}
	return us
}

// finalize polishes candidate roots against p, drops non-finite values,
// sorts, and merges near-duplicates into the one with the smaller residual.
func finalize[T fmath.Float](p, candidates []T) []T {
	out := make([]T, 0, len(candidates))
	for _, x := range candidates {
		x = polish(p, x)
		if fmath.IsFinite(x) {
			out = append(out, x)
		}
	}
	slices.Sort(out)

	tol := realTol[T]()
	merged := out[:0]
	for _, x := range out {
		if n := len(merged); n > 0 {
			last := merged[n-1]
			if x-last <= tol*fmath.Max(fmath.Abs(x), fmath.Abs(last)) {
				fx, _ := horner(p, x)
				fl, _ := horner(p, last)
				if fmath.Abs(fx) < fmath.Abs(fl) {
					merged[n-1] = x
				}
				continue
			}
		}
		merged = append(merged, x)
	}
	return merged
}

// polish applies at most maxPolish Newton steps, keeping a step only when it
// reduces the residual.
func polish[T fmath.Float](p []T, x T) T {
	for range maxPolish {
		f, df := horner(p, x)
		if f == 0 || df == 0 {
			break
		}
		next := x - f/df
		fn, _ := horner(p, next)
		if !(fmath.Abs(fn) < fmath.Abs(f)) {
			break
		}
		x = next
	}
	return x
}

// horner evaluates p and its derivative at x.
func horner[T fmath.Float](p []T, x T) (f, df T) {
	for _, c := range p {
		df = df*x + f
		f = f*x + c
	}
	return f, df
}
