// Package lines filters the line slices read from configuration files.
package lines

import (
	"strings"

	"github.com/mitsuki31/jmbuilder/jmerrors"
)

// DefaultCommentDelim starts a comment line in properties files.
const DefaultCommentDelim = "#"

// RemoveComments returns the lines of contents that do not start with
// delim, in their original order. An empty delim means DefaultCommentDelim.
//
// Only one delimiter is handled per call; strip several comment styles by
// chaining calls:
//
//	out, _ := lines.RemoveComments(contents, "#")
//	out, _ = lines.RemoveComments(out, "!")
func RemoveComments(contents []string, delim string) ([]string, error) {
	if len(contents) == 0 {
		return nil, jmerrors.InvalidArgument("lines.RemoveComments", "contents cannot be empty")
	}
	if delim == "" {
		delim = DefaultCommentDelim
	}

	out := make([]string, 0, len(contents))
	for _, line := range contents {
		if strings.HasPrefix(line, delim) {
			continue
		}
		out = append(out, line)
	}
	return out, nil
}

// RemoveBlanks returns the lines of contents that are neither empty nor
// whitespace only.
func RemoveBlanks(contents []string) ([]string, error) {
	if len(contents) == 0 {
		return nil, jmerrors.InvalidArgument("lines.RemoveBlanks", "contents cannot be empty")
	}

	out := make([]string, 0, len(contents))
	for _, line := range contents {
		if isBlank(line) {
			continue
		}
		out = append(out, line)
	}
	return out, nil
}

// RemoveBlankEntries is RemoveBlanks for contents whose entries may be
// absent. Nil entries are dropped as well when includeNil is set, otherwise
// they are kept in place.
func RemoveBlankEntries(contents []*string, includeNil bool) ([]*string, error) {
	if len(contents) == 0 {
		return nil, jmerrors.InvalidArgument("lines.RemoveBlankEntries", "contents cannot be empty")
	}

	out := make([]*string, 0, len(contents))
	for _, line := range contents {
		if line == nil {
			if !includeNil {
				out = append(out, line)
			}
			continue
		}
		if isBlank(*line) {
			continue
		}
		out = append(out, line)
	}
	return out, nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
