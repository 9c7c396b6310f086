// Package scenario loads engagements from YAML files and glTF scenes.
package scenario

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/taigrr/intercept/pkg/ballistics"
	"github.com/taigrr/intercept/pkg/math3d"
)

var (
	ErrFiringMode        = errors.New("scenario: exactly one of speed, direction or direction_angles is required")
	ErrVectorLength      = errors.New("scenario: vectors need 2 to 4 components")
	ErrMissingNode       = errors.New("scenario: missing node")
	ErrNonFinite         = errors.New("scenario: non-finite value")
	ErrUnsupportedFormat = errors.New("scenario: unsupported file format")
	ErrDimension         = errors.New("scenario: glTF scenes hold at most 3 components")
)

// Scenario is one engagement ready to solve.
type Scenario struct {
	Name string
	// Dim is the component count of the vectors it was read with. Zero
	// means the smallest count that keeps every non-zero component.
	Dim    int
	Spec   ballistics.FiringSpec[float64]
	Motion ballistics.MotionState[float64]
}

// Dimension returns how many components s is written with: at least Dim
// and 2, and never fewer than its vectors need.
func (s Scenario) Dimension() int {
	vs := []ballistics.Vec[float64]{
		s.Motion.ToTarget,
		s.Motion.TargetVelocity,
		s.Motion.ProjectileAcceleration,
		s.Motion.TargetAcceleration,
	}
	if dir, ok := s.Spec.Direction(); ok {
		vs = append(vs, dir)
	}

	d := max(s.Dim, 2)
	for _, v := range vs {
		for i := len(v) - 1; i >= d; i-- {
			if v[i] != 0 {
				d = i + 1
				break
			}
		}
	}
	return min(d, 4)
}

// Angles aims in degrees; see math3d.Aim for the convention.
type Angles struct {
	Yaw   float64 `yaml:"yaw"`
	Pitch float64 `yaml:"pitch"`
}

// Entry is the file form of a Scenario.
type Entry struct {
	Name                   string    `yaml:"name"`
	Speed                  *float64  `yaml:"speed,omitempty"`
	Direction              []float64 `yaml:"direction,omitempty,flow"`
	DirectionAngles        *Angles   `yaml:"direction_angles,omitempty"`
	ToTarget               []float64 `yaml:"to_target,flow"`
	TargetVelocity         []float64 `yaml:"target_velocity,omitempty,flow"`
	ProjectileAcceleration []float64 `yaml:"projectile_acceleration,omitempty,flow"`
	TargetAcceleration     []float64 `yaml:"target_acceleration,omitempty,flow"`
}

// file accepts either a single entry or a list under "scenarios".
type file struct {
	Scenarios []Entry `yaml:"scenarios"`
	Entry     `yaml:",inline"`
}

// Scenario validates e and builds the solver inputs.
func (e Entry) Scenario() (Scenario, error) {
	s := Scenario{Name: e.Name}
	for _, cs := range [][]float64{e.Direction, e.ToTarget, e.TargetVelocity, e.ProjectileAcceleration, e.TargetAcceleration} {
		s.Dim = max(s.Dim, len(cs))
	}

	modes := 0
	if e.Speed != nil {
		modes++
	}
	if e.Direction != nil {
		modes++
	}
	if e.DirectionAngles != nil {
		modes++
	}
	if modes != 1 {
		return Scenario{}, fmt.Errorf("%s: %w", e.Name, ErrFiringMode)
	}

	switch {
	case e.Speed != nil:
		if !finite(*e.Speed) {
			return Scenario{}, fmt.Errorf("%s: speed: %w", e.Name, ErrNonFinite)
		}
		s.Spec = ballistics.WithSpeed(*e.Speed)
	case e.Direction != nil:
		dir, err := vector("direction", e.Direction, true)
		if err != nil {
			return Scenario{}, fmt.Errorf("%s: %w", e.Name, err)
		}
		if dir.LenSq() == 0 {
			return Scenario{}, fmt.Errorf("%s: zero direction: %w", e.Name, ErrFiringMode)
		}
		s.Spec = ballistics.WithDirection(dir)
	default:
		a := e.DirectionAngles
		if !finite(a.Yaw) || !finite(a.Pitch) {
			return Scenario{}, fmt.Errorf("%s: direction_angles: %w", e.Name, ErrNonFinite)
		}
		aim := math3d.Aim(a.Yaw*math.Pi/180, a.Pitch*math.Pi/180)
		s.Spec = ballistics.WithDirection(ballistics.FromArray3(aim.Array()))
		s.Dim = max(s.Dim, 3)
	}

	var err error
	if s.Motion.ToTarget, err = vector("to_target", e.ToTarget, true); err != nil {
		return Scenario{}, fmt.Errorf("%s: %w", e.Name, err)
	}
	if s.Motion.TargetVelocity, err = vector("target_velocity", e.TargetVelocity, false); err != nil {
		return Scenario{}, fmt.Errorf("%s: %w", e.Name, err)
	}
	if s.Motion.ProjectileAcceleration, err = vector("projectile_acceleration", e.ProjectileAcceleration, false); err != nil {
		return Scenario{}, fmt.Errorf("%s: %w", e.Name, err)
	}
	if s.Motion.TargetAcceleration, err = vector("target_acceleration", e.TargetAcceleration, false); err != nil {
		return Scenario{}, fmt.Errorf("%s: %w", e.Name, err)
	}
	return s, nil
}

// Entry converts s back to its file form, every vector with Dimension
// components. Direction scenarios are written as explicit unit vectors.
func (s Scenario) Entry() Entry {
	dim := s.Dimension()
	e := Entry{
		Name:                   s.Name,
		ToTarget:               Components(s.Motion.ToTarget, dim),
		TargetVelocity:         Components(s.Motion.TargetVelocity, dim),
		ProjectileAcceleration: Components(s.Motion.ProjectileAcceleration, dim),
		TargetAcceleration:     Components(s.Motion.TargetAcceleration, dim),
	}
	if speed, ok := s.Spec.Speed(); ok {
		e.Speed = &speed
	}
	if dir, ok := s.Spec.Direction(); ok {
		e.Direction = Components(dir, dim)
	}
	return e
}

// ParseYAML reads one scenario, or a list under "scenarios". Unnamed
// scenarios are numbered.
func ParseYAML(data []byte) ([]Scenario, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	entries := f.Scenarios
	if len(entries) == 0 {
		entries = []Entry{f.Entry}
	}

	out := make([]Scenario, 0, len(entries))
	for i, e := range entries {
		if e.Name == "" {
			e.Name = fmt.Sprintf("scenario-%d", i+1)
		}
		s, err := e.Scenario()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// LoadYAML reads scenarios from a YAML file.
func LoadYAML(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return ParseYAML(data)
}

// MarshalYAML writes scenarios in the list form ParseYAML accepts.
func MarshalYAML(scenarios []Scenario) ([]byte, error) {
	out := struct {
		Scenarios []Entry `yaml:"scenarios"`
	}{make([]Entry, len(scenarios))}
	for i, s := range scenarios {
		out.Scenarios[i] = s.Entry()
	}
	return yaml.Marshal(out)
}

// Load picks the loader from the file extension.
func Load(path string) ([]Scenario, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(path)
	case ".gltf", ".glb":
		s, err := LoadGLTF(path)
		if err != nil {
			return nil, err
		}
		return []Scenario{s}, nil
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

// vector validates a component list. Empty optional vectors are zero.
func vector(field string, cs []float64, required bool) (ballistics.Vec[float64], error) {
	if len(cs) == 0 && !required {
		return ballistics.Vec[float64]{}, nil
	}
	if len(cs) < 2 || len(cs) > 4 {
		return ballistics.Vec[float64]{}, fmt.Errorf("%s has %d: %w", field, len(cs), ErrVectorLength)
	}
	for _, c := range cs {
		if !finite(c) {
			return ballistics.Vec[float64]{}, fmt.Errorf("%s: %w", field, ErrNonFinite)
		}
	}
	return ballistics.FromSlice(cs), nil
}

// Components returns the first dim components of v.
func Components(v ballistics.Vec[float64], dim int) []float64 {
	return append([]float64(nil), v[:dim]...)
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
