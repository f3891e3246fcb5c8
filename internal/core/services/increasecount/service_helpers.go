package increasecount

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/AntonioJCosta/sonarsweep/internal/core/domain/measurement"
)

// parseReading parses one line as a decimal integer of any size.
// Surrounding whitespace is ignored, an optional sign is accepted, and single
// underscores may separate digits ("1_000").
func parseReading(lineNo int, line string) (*big.Int, error) {
	text := strings.TrimSpace(line)

	sign := ""
	if strings.HasPrefix(text, "+") || strings.HasPrefix(text, "-") {
		sign, text = text[:1], text[1:]
	}
	if !validDigitGroups(text) {
		return nil, &measurement.ParseError{Line: lineNo, Text: line, Err: strconv.ErrSyntax}
	}

	value, ok := new(big.Int).SetString(sign+strings.ReplaceAll(text, "_", ""), 10)
	if !ok {
		return nil, &measurement.ParseError{Line: lineNo, Text: line, Err: strconv.ErrSyntax}
	}
	return value, nil
}

// validDigitGroups reports whether s is ASCII digits with single underscores
// only between digits.
func validDigitGroups(s string) bool {
	if s == "" {
		return false
	}
	prevUnderscore := true // rejects a leading underscore
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			prevUnderscore = false
		case c == '_' && !prevUnderscore:
			prevUnderscore = true
		default:
			return false
		}
	}
	return !prevUnderscore
}

// increaseTracker remembers the previous reading, which is absent until the
// first observe call.
type increaseTracker struct {
	prev *big.Int
}

// observe records v and reports whether it is a strict increase over the
// previous reading.
func (t *increaseTracker) observe(v *big.Int) bool {
	increased := t.prev != nil && v.Cmp(t.prev) > 0
	t.prev = v
	return increased
}
