// Package parse converts raw prediction CSV text into numeric sequences.
//
// The expected shape is a header line followed by rows of the form
// "<id>,<value>". Only the second field of each row is read. Parsing is
// all-or-nothing: a single bad row fails the whole file.
package parse

import (
	"fmt"
	"strconv"
	"strings"
)

// Values extracts the ordered numeric column from raw CSV text.
//
// The first line is discarded as a header. For every remaining line the
// second comma-separated field is parsed as a float. Any row whose value
// field is missing or non-numeric fails the parse with a line-numbered
// error wrapping ErrNotNumeric; no partial result is returned.
func Values(raw string) ([]float64, error) {
	lines := strings.Split(strings.TrimSpace(raw), "\n")

	// A header-only file parses to an empty sequence; length validation is
	// the caller's concern.
	values := make([]float64, 0, len(lines)-1)
	for i, line := range lines[1:] {
		fields := strings.Split(line, ",")
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: line %d has no value field", ErrNotNumeric, i+2)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d value %q", ErrNotNumeric, i+2, fields[1])
		}
		values = append(values, v)
	}
	return values, nil
}
