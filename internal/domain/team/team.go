// Package team derives team identity from uploaded filenames.
package team

import "strings"

// FromFilename returns the team name for an uploaded file: the substring
// before the first period. No normalization is applied; names differing in
// case or whitespace are distinct teams. This mirrors the competition rule
// that the filename is the team identity.
func FromFilename(filename string) string {
	if i := strings.Index(filename, "."); i >= 0 {
		return filename[:i]
	}
	return filename
}
