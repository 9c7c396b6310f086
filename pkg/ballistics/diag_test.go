package ballistics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSinkFunc(t *testing.T) {
	var got []Diagnostic
	s := NewSolver[float64](WithSink(SinkFunc(func(d Diagnostic) {
		got = append(got, d)
	})))

	s.FiringVelocity(-1, MotionState[float64]{})
	assert.Equal(t, []Diagnostic{{
		Level:   LevelError,
		Message: "ballistics: FiringVelocity: zero or negative impact time, returned NaN vector",
	}}, got)
}

func TestNopSink(t *testing.T) {
	s := NewSolver[float64](WithSink(NopSink{}))
	assert.True(t, s.FiringVelocity(0, MotionState[float64]{}).IsNaN())
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "warning", LevelWarning.String())
	assert.Equal(t, "error", LevelError.String())
	assert.Equal(t, "unknown", Level(7).String())
}
