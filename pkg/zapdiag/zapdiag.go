// Package zapdiag routes solver diagnostics to a zap logger.
package zapdiag

import (
	"go.uber.org/zap"

	"github.com/taigrr/intercept/pkg/ballistics"
)

var _ ballistics.Sink = (*Sink)(nil)

// Sink logs each diagnostic at the matching zap level.
type Sink struct {
	logger *zap.Logger
}

// New returns a Sink writing to logger. A nil logger discards everything.
func New(logger *zap.Logger) *Sink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sink{logger: logger.With(zap.String("component", "ballistics"))}
}

// Report implements ballistics.Sink.
func (s *Sink) Report(d ballistics.Diagnostic) {
	switch d.Level {
	case ballistics.LevelError:
		s.logger.Error(d.Message)
	default:
		s.logger.Warn(d.Message)
	}
}
