package measurements

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"

	"github.com/AntonioJCosta/sonarsweep/internal/core/domain/measurement"
	"github.com/AntonioJCosta/sonarsweep/internal/core/ports"
)

/*
FileSource reads measurements from a text file, one reading per line.
It implements the ports.LineSource interface.
The file is opened when iteration starts and closed when it ends, whether
the sequence is exhausted, abandoned by the caller, or fails.
*/
type FileSource struct {
	Path             string
	sourceIdentifier string
}

// NewFileSource creates a new FileSource for path.
func NewFileSource(path string) (ports.LineSource, error) {
	if path == "" {
		return nil, fmt.Errorf("measurement file path cannot be empty")
	}
	return &FileSource{
		Path:             path,
		sourceIdentifier: fmt.Sprintf("File: %s", toUserFriendlyPath(path)),
	}, nil
}

func (src *FileSource) SourceIdentifier() string {
	return src.sourceIdentifier
}

// Lines implements the ports.LineSource interface.
func (src *FileSource) Lines() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		f, err := os.Open(src.Path)
		if err != nil {
			yield("", &measurement.FileAccessError{Path: src.Path, Err: err})
			return
		}
		defer f.Close()

		// Lines have no length limit. "\n" and "\r\n" are stripped, and a
		// trailing newline does not produce an extra empty line.
		reader := bufio.NewReader(f)
		for {
			line, err := reader.ReadString('\n')
			if line != "" {
				line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
				if !yield(line, nil) {
					return
				}
			}
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield("", &measurement.FileAccessError{Path: src.Path, Err: err})
				return
			}
		}
	}
}
