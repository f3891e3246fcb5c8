package measurement

import "fmt"

// Report holds the outcome of a single pass over a measurement source.
type Report struct {
	Source    string // User-friendly name of the input
	Readings  int    // Number of lines parsed
	Increases int    // Number of readings strictly greater than the one before
}

// FileAccessError reports that the measurement file could not be opened or read.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("cannot read measurements from %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// ParseError reports a line that is not a valid decimal integer.
// Line is 1-based.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %q is not an integer: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
