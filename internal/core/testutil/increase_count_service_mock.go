package testutil

import (
	"github.com/AntonioJCosta/sonarsweep/internal/core/domain/measurement"
	"github.com/AntonioJCosta/sonarsweep/internal/core/ports"
)

// MockIncreaseCountService is a mock implementation of the ports.IncreaseCountService interface.
type MockIncreaseCountService struct {
	CountIncreasesFunc func(src ports.LineSource) (measurement.Report, error)
}

// CountIncreases mocks the CountIncreases method.
func (m *MockIncreaseCountService) CountIncreases(src ports.LineSource) (measurement.Report, error) {
	if m.CountIncreasesFunc != nil {
		return m.CountIncreasesFunc(src)
	}
	return measurement.Report{}, nil
}

var _ ports.IncreaseCountService = (*MockIncreaseCountService)(nil)
