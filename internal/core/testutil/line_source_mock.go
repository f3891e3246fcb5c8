package testutil

import (
	"iter"

	"github.com/AntonioJCosta/sonarsweep/internal/core/ports"
)

// MockLineSource is a mock implementation of the ports.LineSource interface.
type MockLineSource struct {
	LinesFunc            func() iter.Seq2[string, error]
	SourceIdentifierFunc func() string
}

// Lines mocks the Lines method.
func (m *MockLineSource) Lines() iter.Seq2[string, error] {
	if m.LinesFunc != nil {
		return m.LinesFunc()
	}
	// Default behavior: an empty sequence.
	return func(func(string, error) bool) {}
}

// SourceIdentifier mocks the SourceIdentifier method.
func (m *MockLineSource) SourceIdentifier() string {
	if m.SourceIdentifierFunc != nil {
		return m.SourceIdentifierFunc()
	}
	return "mock"
}

// StaticLines returns a MockLineSource that yields lines in order and then
// failErr, if it is non-nil.
func StaticLines(lines []string, failErr error) *MockLineSource {
	return &MockLineSource{
		LinesFunc: func() iter.Seq2[string, error] {
			return func(yield func(string, error) bool) {
				for _, l := range lines {
					if !yield(l, nil) {
						return
					}
				}
				if failErr != nil {
					yield("", failErr)
				}
			}
		},
	}
}

// Ensure MockLineSource implements the ports.LineSource interface.
var _ ports.LineSource = (*MockLineSource)(nil)
