package ports

import "iter"

// LineSource provides the raw lines of a measurement input.
type LineSource interface {
	// Lines returns a single-pass sequence of lines in input order.
	// A non-nil error ends the sequence; no further lines follow it.
	Lines() iter.Seq2[string, error]

	// SourceIdentifier returns a user-facing name for the input.
	SourceIdentifier() string
}
