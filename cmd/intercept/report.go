package main

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/taigrr/intercept/internal/scenario"
	"github.com/taigrr/intercept/pkg/ballistics"
	"github.com/taigrr/intercept/pkg/fmath"
	"github.com/taigrr/intercept/pkg/math3d"
)

type shot struct {
	Time           float64   `yaml:"time"`
	ImpactPosition []float64 `yaml:"impact_position,flow"`
	FiringVelocity []float64 `yaml:"firing_velocity,flow"`
	Miss           *float64  `yaml:"miss,omitempty"`
	MissBound      *float64  `yaml:"miss_bound,omitempty"`
}

type report struct {
	Name      string `yaml:"name"`
	Precision int    `yaml:"precision"`
	Shots     []shot `yaml:"solutions"`
}

// solve runs s in the requested precision and widens the results.
func solve(s scenario.Scenario, precision int, sink ballistics.Sink) []ballistics.Solution[float64] {
	if precision == 32 {
		return widen(ballistics.NewSolver[float32](ballistics.WithSink(sink)).Solve(
			ballistics.ConvertSpec[float32](s.Spec),
			ballistics.ConvertMotion[float32](s.Motion),
		))
	}
	return ballistics.NewSolver[float64](ballistics.WithSink(sink)).Solve(s.Spec, s.Motion)
}

func widen[T fmath.Float](sols []ballistics.Solution[T]) []ballistics.Solution[float64] {
	out := make([]ballistics.Solution[float64], len(sols))
	for i, s := range sols {
		out[i] = ballistics.Solution[float64]{
			Time:           float64(s.Time),
			ImpactPosition: ballistics.Convert[float64](s.ImpactPosition),
			FiringVelocity: ballistics.Convert[float64](s.FiringVelocity),
		}
	}
	return out
}

// newReport lists solutions with vectors of the scenario's dimension.
func newReport(s scenario.Scenario, precision int, sols []ballistics.Solution[float64]) report {
	dim := s.Dimension()
	r := report{Name: s.Name, Precision: precision, Shots: make([]shot, len(sols))}
	for i, sol := range sols {
		r.Shots[i] = shot{
			Time:           sol.Time,
			ImpactPosition: scenario.Components(sol.ImpactPosition, dim),
			FiringVelocity: scenario.Components(sol.FiringVelocity, dim),
		}
	}
	return r
}

// formatVec prints 2 to 4 components the way math3d does.
func formatVec(cs []float64) string {
	switch len(cs) {
	case 2:
		return math3d.Vec2FromArray([2]float64(cs)).String()
	case 3:
		return math3d.Vec3FromArray([3]float64(cs)).String()
	default:
		return math3d.Vec4FromArray([4]float64(cs)).String()
	}
}

func writeReports(w io.Writer, format string, reports []report) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}

	for _, r := range reports {
		if len(r.Shots) == 0 {
			fmt.Fprintf(w, "%s: no interception\n", r.Name)
			continue
		}
		fmt.Fprintf(w, "%s: %d solution(s)\n", r.Name, len(r.Shots))
		for _, s := range r.Shots {
			speed := ballistics.FromSlice(s.FiringVelocity).Len()
			fmt.Fprintf(w, "  t=%.6g impact=%s velocity=%s speed=%.6g",
				s.Time, formatVec(s.ImpactPosition), formatVec(s.FiringVelocity), speed)
			if s.Miss != nil {
				fmt.Fprintf(w, " miss=%.3g bound=%.3g", *s.Miss, *s.MissBound)
			}
			fmt.Fprintln(w)
		}
	}
	return nil
}
