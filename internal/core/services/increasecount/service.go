package increasecount

import (
	"fmt"

	"github.com/AntonioJCosta/sonarsweep/internal/core/domain/measurement"
	"github.com/AntonioJCosta/sonarsweep/internal/core/ports"
	"go.uber.org/zap"
)

type service struct {
	logger *zap.Logger
}

// NewService creates a new increase counting service.
// A nil logger discards all records.
func NewService(logger *zap.Logger) ports.IncreaseCountService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{logger: logger}
}

// CountIncreases makes one pass over src. The first error from the source or
// from parsing ends the pass and no partial report is returned.
func (s *service) CountIncreases(src ports.LineSource) (measurement.Report, error) {
	if src == nil {
		return measurement.Report{}, fmt.Errorf("line source is not initialized")
	}

	report := measurement.Report{Source: src.SourceIdentifier()}
	var (
		tracker increaseTracker
		lineNo  int
	)

	for line, err := range src.Lines() {
		if err != nil {
			return measurement.Report{}, fmt.Errorf("reading measurements: %w", err)
		}
		lineNo++

		value, err := parseReading(lineNo, line)
		if err != nil {
			return measurement.Report{}, fmt.Errorf("parsing measurements (%s): %w", report.Source, err)
		}

		increased := tracker.observe(value)
		if increased {
			report.Increases++
		}
		report.Readings++

		s.logger.Debug("reading",
			zap.Int("line", lineNo),
			zap.Stringer("value", value),
			zap.Bool("increased", increased))
	}

	s.logger.Debug("pass complete",
		zap.String("source", report.Source),
		zap.Int("readings", report.Readings),
		zap.Int("increases", report.Increases))
	return report, nil
}
