package scenario

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"

	"github.com/taigrr/intercept/pkg/math3d"
)

// Node names looked up in a glTF scene.
const (
	ShooterNode = "shooter"
	TargetNode  = "target"
)

// shooterExtras are read from the shooter node's extras.
type shooterExtras struct {
	Speed           *float64  `json:"speed,omitempty"`
	Direction       []float64 `json:"direction,omitempty"`
	DirectionAngles *struct {
		Yaw   float64 `json:"yaw"`
		Pitch float64 `json:"pitch"`
	} `json:"direction_angles,omitempty"`
	Acceleration []float64 `json:"acceleration,omitempty"`
}

// targetExtras are read from the target node's extras.
type targetExtras struct {
	Velocity     []float64 `json:"velocity,omitempty"`
	Acceleration []float64 `json:"acceleration,omitempty"`
}

// LoadGLTF reads a scenario from a glTF or GLB scene. The engagement is
// given by two nodes: ToTarget is the translation of "target" minus that of
// "shooter", the shooter's extras carry the firing mode and projectile
// acceleration, and the target's extras carry its velocity and acceleration.
func LoadGLTF(path string) (Scenario, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("open gltf: %w", err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return FromDocument(doc, name)
}

// FromDocument extracts a scenario from doc. The default scene name, if
// any, overrides fallbackName.
func FromDocument(doc *gltf.Document, fallbackName string) (Scenario, error) {
	shooter, err := findNode(doc, ShooterNode)
	if err != nil {
		return Scenario{}, err
	}
	target, err := findNode(doc, TargetNode)
	if err != nil {
		return Scenario{}, err
	}

	var se shooterExtras
	if err := decodeExtras(shooter.Extras, &se); err != nil {
		return Scenario{}, fmt.Errorf("node %q: %w", ShooterNode, err)
	}
	var te targetExtras
	if err := decodeExtras(target.Extras, &te); err != nil {
		return Scenario{}, fmt.Errorf("node %q: %w", TargetNode, err)
	}

	toTarget := math3d.Vec3FromArray(target.Translation).Sub(math3d.Vec3FromArray(shooter.Translation)).Array()
	e := Entry{
		Name:                   sceneName(doc, fallbackName),
		Speed:                  se.Speed,
		Direction:              se.Direction,
		ToTarget:               toTarget[:],
		TargetVelocity:         te.Velocity,
		ProjectileAcceleration: se.Acceleration,
		TargetAcceleration:     te.Acceleration,
	}
	if se.DirectionAngles != nil {
		e.DirectionAngles = &Angles{Yaw: se.DirectionAngles.Yaw, Pitch: se.DirectionAngles.Pitch}
	}
	return e.Scenario()
}

// Document builds a two-node scene for s with the shooter at the origin.
// Scenarios needing a fourth component have no glTF form.
func Document(s Scenario) (*gltf.Document, error) {
	if d := s.Dimension(); d > 3 {
		return nil, fmt.Errorf("%s has %d components: %w", s.Name, d, ErrDimension)
	}
	s.Dim = 3
	e := s.Entry()
	scene := 0
	return &gltf.Document{
		Asset: gltf.Asset{Version: "2.0", Generator: "intercept"},
		Scene: &scene,
		Scenes: []*gltf.Scene{
			{Name: s.Name, Nodes: []int{0, 1}},
		},
		Nodes: []*gltf.Node{
			{
				Name:     ShooterNode,
				Rotation: [4]float64{0, 0, 0, 1},
				Scale:    [3]float64{1, 1, 1},
				Extras: shooterExtras{
					Speed:        e.Speed,
					Direction:    e.Direction,
					Acceleration: e.ProjectileAcceleration,
				},
			},
			{
				Name:        TargetNode,
				Translation: s.Motion.ToTarget.Array3(),
				Rotation:    [4]float64{0, 0, 0, 1},
				Scale:       [3]float64{1, 1, 1},
				Extras: targetExtras{
					Velocity:     e.TargetVelocity,
					Acceleration: e.TargetAcceleration,
				},
			},
		},
	}, nil
}

// SaveGLTF writes s as a glTF scene, binary when path ends in .glb.
func SaveGLTF(s Scenario, path string) error {
	doc, err := Document(s)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".glb":
		err = gltf.SaveBinary(doc, path)
	case ".gltf":
		err = gltf.Save(doc, path)
	default:
		return fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
	if err != nil {
		return fmt.Errorf("save gltf: %w", err)
	}
	return nil
}

func findNode(doc *gltf.Document, name string) (*gltf.Node, error) {
	for _, n := range doc.Nodes {
		if n != nil && n.Name == name {
			return n, nil
		}
	}
	return nil, fmt.Errorf("%q: %w", name, ErrMissingNode)
}

// decodeExtras round-trips extras through JSON, which covers both the
// generic maps produced by decoding and typed values set in code.
func decodeExtras(extras any, v any) error {
	if extras == nil {
		return nil
	}
	raw, err := json.Marshal(extras)
	if err != nil {
		return fmt.Errorf("encode extras: %w", err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode extras: %w", err)
	}
	return nil
}

func sceneName(doc *gltf.Document, fallback string) string {
	if doc.Scene != nil && *doc.Scene >= 0 && *doc.Scene < len(doc.Scenes) {
		if n := doc.Scenes[*doc.Scene].Name; n != "" {
			return n
		}
	}
	return fallback
}
