package ports

import "github.com/AntonioJCosta/sonarsweep/internal/core/domain/measurement"

// IncreaseCountService defines the contract for counting increasing measurements.
type IncreaseCountService interface {
	// CountIncreases reads every line of src and counts the readings that are
	// strictly greater than the reading before them.
	// On error the returned Report is the zero value.
	CountIncreases(src LineSource) (measurement.Report, error)
}
