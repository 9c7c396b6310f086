package scenario

import (
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taigrr/intercept/pkg/ballistics"
)

func TestLoadYAMLList(t *testing.T) {
	ss, err := Load(filepath.Join("testdata", "engagements.yaml"))
	require.NoError(t, err)
	require.Len(t, ss, 4)

	chase := ss[0]
	assert.Equal(t, "chase", chase.Name)
	speed, ok := chase.Spec.Speed()
	require.True(t, ok)
	assert.Equal(t, 50.0, speed)
	assert.Equal(t, ballistics.V3(100.0, 0, 0), chase.Motion.ToTarget)
	assert.InDelta(t, 2.5, ballistics.BestImpactTime(chase.Spec, chase.Motion), 1e-9)

	assert.Equal(t, ballistics.V3(0, -9.81, 0), ss[1].Motion.ProjectileAcceleration)

	dir, ok := ss[2].Spec.Direction()
	require.True(t, ok)
	assert.InDelta(t, 0, dir.Sub(ballistics.V3(0.0, 1, 0)).Len(), 1e-12)
	assert.Equal(t, ballistics.V2(30.0, 0), ss[2].Motion.ToTarget)

	assert.Equal(t, "scenario-4", ss[3].Name)
	dir, ok = ss[3].Spec.Direction()
	require.True(t, ok)
	assert.Equal(t, ballistics.V3(0.0, 0, 1), dir)
	assert.Equal(t, ballistics.V4(1.0, 2, 3, 4), ss[3].Motion.ToTarget)
}

func TestParseYAMLSingle(t *testing.T) {
	ss, err := ParseYAML([]byte("name: solo\nspeed: 5\nto_target: [1, 1]\n"))
	require.NoError(t, err)
	require.Len(t, ss, 1)
	assert.Equal(t, "solo", ss[0].Name)
	assert.Equal(t, ballistics.Vec[float64]{}, ss[0].Motion.TargetVelocity)
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		err  error
	}{
		{"no firing mode", "to_target: [1, 2]", ErrFiringMode},
		{"two firing modes", "speed: 3\ndirection: [1, 0]\nto_target: [1, 2]", ErrFiringMode},
		{"zero direction", "direction: [0, 0]\nto_target: [1, 2]", ErrFiringMode},
		{"missing target", "speed: 3", ErrVectorLength},
		{"short vector", "speed: 3\nto_target: [1]", ErrVectorLength},
		{"long vector", "speed: 3\nto_target: [1, 2]\ntarget_velocity: [1, 2, 3, 4, 5]", ErrVectorLength},
		{"infinite component", "speed: 3\nto_target: [.inf, 2]", ErrNonFinite},
		{"NaN speed", "speed: .nan\nto_target: [1, 2]", ErrNonFinite},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tc.doc))
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestParseYAMLMalformed(t *testing.T) {
	_, err := ParseYAML([]byte("speed: [unterminated"))
	assert.Error(t, err)
}

func TestMarshalYAMLRoundTrip(t *testing.T) {
	ss, err := LoadYAML(filepath.Join("testdata", "engagements.yaml"))
	require.NoError(t, err)
	ss = ss[:3]

	data, err := MarshalYAML(ss)
	require.NoError(t, err)
	again, err := ParseYAML(data)
	require.NoError(t, err)
	require.Len(t, again, len(ss))

	for i := range ss {
		assert.Equal(t, ss[i].Name, again[i].Name)
		assert.Equal(t, ss[i].Motion, again[i].Motion)
		assert.Equal(t, ss[i].Spec.Mode(), again[i].Spec.Mode())
	}
}

func TestLoadUnsupported(t *testing.T) {
	_, err := Load("scene.obj")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.ErrorIs(t, SaveGLTF(Scenario{}, "scene.obj"), ErrUnsupportedFormat)
}

func TestGLTFRoundTrip(t *testing.T) {
	speed := 80.0
	want := Scenario{
		Name: "artillery",
		Spec: ballistics.WithSpeed(speed),
		Motion: ballistics.MotionState[float64]{
			ToTarget:               ballistics.V3(400.0, 10, -50),
			TargetVelocity:         ballistics.V3(-5.0, 0, 0),
			ProjectileAcceleration: ballistics.V3(0, -9.81, 0),
			TargetAcceleration:     ballistics.V3(0, 0, 1.0),
		},
	}

	for _, ext := range []string{".gltf", ".glb"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "scene"+ext)
			require.NoError(t, SaveGLTF(want, path))

			got, err := Load(path)
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, want.Name, got[0].Name)
			assert.Equal(t, want.Motion, got[0].Motion)
			s, ok := got[0].Spec.Speed()
			require.True(t, ok)
			assert.Equal(t, speed, s)
		})
	}
}

func TestFromDocumentOffsetShooter(t *testing.T) {
	doc := &gltf.Document{
		Nodes: []*gltf.Node{
			{Name: ShooterNode, Translation: [3]float64{1, 2, 3}, Extras: map[string]any{
				"direction_angles": map[string]any{"yaw": 90.0, "pitch": 0.0},
			}},
			{Name: TargetNode, Translation: [3]float64{-9, 2, 3}},
		},
	}

	s, err := FromDocument(doc, "fallback")
	require.NoError(t, err)
	assert.Equal(t, "fallback", s.Name)
	assert.Equal(t, ballistics.V3(-10.0, 0, 0), s.Motion.ToTarget)

	dir, ok := s.Spec.Direction()
	require.True(t, ok)
	assert.InDelta(t, 0, dir.Sub(ballistics.V3(-1.0, 0, 0)).Len(), 1e-12)
}

func TestFromDocumentMissingNode(t *testing.T) {
	doc := &gltf.Document{Nodes: []*gltf.Node{{Name: ShooterNode}}}
	_, err := FromDocument(doc, "x")
	assert.ErrorIs(t, err, ErrMissingNode)
}

func TestLoadGLTFMissingFile(t *testing.T) {
	_, err := LoadGLTF(filepath.Join(t.TempDir(), "absent.glb"))
	assert.Error(t, err)
}

func TestYAMLKeepsFourthComponent(t *testing.T) {
	ss, err := ParseYAML([]byte("speed: 50\nto_target: [100, 0, 0, 30]\ntarget_velocity: [0, 0, 0, 5]\n"))
	require.NoError(t, err)
	require.Len(t, ss, 1)
	assert.Equal(t, 4, ss[0].Dimension())

	data, err := MarshalYAML(ss)
	require.NoError(t, err)
	again, err := ParseYAML(data)
	require.NoError(t, err)
	require.Len(t, again, 1)
	assert.Equal(t, ballistics.V4(100.0, 0, 0, 30), again[0].Motion.ToTarget)
	assert.Equal(t, ballistics.V4(0.0, 0, 0, 5), again[0].Motion.TargetVelocity)
	assert.Len(t, again[0].Entry().ProjectileAcceleration, 4)
}

func TestDimension(t *testing.T) {
	tests := []struct {
		name string
		s    Scenario
		want int
	}{
		{"empty", Scenario{}, 2},
		{"declared", Scenario{Dim: 3}, 3},
		{"planar data", Scenario{Motion: ballistics.MotionState[float64]{ToTarget: ballistics.V2(1.0, 2)}}, 2},
		{"data wider than declared", Scenario{Dim: 2, Motion: ballistics.MotionState[float64]{
			TargetAcceleration: ballistics.V4(0.0, 0, 0, 1),
		}}, 4},
		{"direction", Scenario{Spec: ballistics.WithDirection(ballistics.V3(0, 0, 1.0))}, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.s.Dimension())
		})
	}
}

func TestPlanarYAMLStaysPlanar(t *testing.T) {
	ss, err := ParseYAML([]byte("speed: 5\nto_target: [1, 1]\n"))
	require.NoError(t, err)
	e := ss[0].Entry()
	assert.Equal(t, []float64{1, 1}, e.ToTarget)
	assert.Equal(t, []float64{0, 0}, e.TargetVelocity)
}

func TestGLTFRejectsFourComponents(t *testing.T) {
	s := Scenario{
		Name:   "hyper",
		Spec:   ballistics.WithSpeed(10.0),
		Motion: ballistics.MotionState[float64]{ToTarget: ballistics.V4(1.0, 2, 3, 4)},
	}
	_, err := Document(s)
	assert.ErrorIs(t, err, ErrDimension)
	assert.ErrorIs(t, SaveGLTF(s, filepath.Join(t.TempDir(), "hyper.glb")), ErrDimension)
}
