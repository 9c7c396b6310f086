package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const chase = `scenarios:
  - name: chase
    speed: 50
    to_target: [100, 0, 0]
    target_velocity: [10, 0, 0]
  - name: hopeless
    speed: 5
    to_target: [100, 0, 0]
    target_velocity: [10, 0, 0]
`

const artillery = `name: artillery
speed: 80
to_target: [400, 0, -50]
target_velocity: [-3, 0, 2]
projectile_acceleration: [0, -9.81, 0]
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--quiet"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestSolveText(t *testing.T) {
	out, err := run(t, "solve", writeFile(t, "chase.yaml", chase))
	require.NoError(t, err)

	assert.Contains(t, out, "chase: 1 solution(s)")
	assert.Contains(t, out, "t=2.5 impact=(125, 0, 0) velocity=(50, 0, 0)")
	assert.Contains(t, out, "hopeless: no interception")
}

func TestSolveYAML(t *testing.T) {
	out, err := run(t, "solve", "-o", "yaml", writeFile(t, "chase.yaml", chase))
	require.NoError(t, err)

	var reports []report
	require.NoError(t, yaml.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 2)
	assert.Equal(t, "chase", reports[0].Name)
	require.Len(t, reports[0].Shots, 1)
	assert.InDelta(t, 2.5, reports[0].Shots[0].Time, 1e-9)
	assert.Empty(t, reports[1].Shots)
}

func TestSolveSinglePrecision(t *testing.T) {
	out, err := run(t, "solve", "--precision", "32", "-o", "yaml", writeFile(t, "chase.yaml", chase))
	require.NoError(t, err)

	var reports []report
	require.NoError(t, yaml.Unmarshal([]byte(out), &reports))
	assert.Equal(t, 32, reports[0].Precision)
	assert.InDelta(t, 2.5, reports[0].Shots[0].Time, 1e-4)
}

func TestInvalidFlags(t *testing.T) {
	path := writeFile(t, "chase.yaml", chase)

	_, err := run(t, "solve", "--precision", "16", path)
	assert.ErrorContains(t, err, "invalid precision")

	_, err = run(t, "solve", "-o", "json", path)
	assert.ErrorContains(t, err, "invalid output")
}

func TestBatchKeepsOrder(t *testing.T) {
	a := writeFile(t, "chase.yaml", chase)
	b := writeFile(t, "artillery.yaml", artillery)

	out, err := run(t, "batch", "-j", "2", "-o", "yaml", b, a)
	require.NoError(t, err)

	var reports []report
	require.NoError(t, yaml.Unmarshal([]byte(out), &reports))
	names := make([]string, len(reports))
	for i, r := range reports {
		names[i] = r.Name
	}
	assert.Equal(t, []string{"artillery", "chase", "hopeless"}, names)
	assert.Len(t, reports[0].Shots, 2)
}

func TestBatchMissingFile(t *testing.T) {
	_, err := run(t, "batch", filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestVerify(t *testing.T) {
	out, err := run(t, "verify", "--fps", "120", writeFile(t, "artillery.yaml", artillery))
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "miss="))
}

func TestDemo(t *testing.T) {
	out, err := run(t, "demo", "--frames", "120", "--every", "40")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "frame    0 target="))
	assert.Contains(t, lines[0], "crosshair=")
}

func TestConvertRoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, "artillery.yaml", artillery)
	glb := filepath.Join(dir, "artillery.glb")
	back := filepath.Join(dir, "back.yaml")

	_, err := run(t, "convert", in, glb)
	require.NoError(t, err)
	_, err = run(t, "convert", glb, back)
	require.NoError(t, err)

	want, err := run(t, "solve", in)
	require.NoError(t, err)
	got, err := run(t, "solve", back)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestConvertManyToScene(t *testing.T) {
	_, err := run(t, "convert", writeFile(t, "chase.yaml", chase), filepath.Join(t.TempDir(), "x.glb"))
	assert.ErrorContains(t, err, "holds 2 scenarios")
}

func TestSolveKeepsInputDimension(t *testing.T) {
	const hyper = "name: hyper\nspeed: 50\nto_target: [100, 0, 0, 30]\ntarget_velocity: [0, 0, 0, 5]\n"
	out, err := run(t, "solve", "-o", "yaml", writeFile(t, "hyper.yaml", hyper))
	require.NoError(t, err)

	var reports []report
	require.NoError(t, yaml.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 1)
	require.NotEmpty(t, reports[0].Shots)
	for _, s := range reports[0].Shots {
		assert.Len(t, s.ImpactPosition, 4)
		assert.Len(t, s.FiringVelocity, 4)
		assert.InDelta(t, 30+5*s.Time, s.ImpactPosition[3], 1e-9)
	}

	text, err := run(t, "solve", writeFile(t, "hyper.yaml", hyper))
	require.NoError(t, err)
	assert.Contains(t, text, "impact=(100, 0, 0, ")

	planar, err := run(t, "solve", writeFile(t, "flat.yaml", "speed: 50\nto_target: [100, 0]\ntarget_velocity: [10, 0]\n"))
	require.NoError(t, err)
	assert.Contains(t, planar, "impact=(125, 0) velocity=(50, 0)")

	_, err = run(t, "convert", writeFile(t, "hyper.yaml", hyper), filepath.Join(t.TempDir(), "hyper.glb"))
	assert.Error(t, err)
}
