package anchor

import (
	"regexp"
	"strings"

	"braces.dev/errtrace"
)

// Matches any marker line, regardless of anchor name.
var _anyMarker = regexp.MustCompile(`ANCHOR(?:_END)?:`)

var _newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// markerPattern matches a line holding the given marker for name.
//
// Names may hold any non-space character,
// so the name must be followed by the end of the line, whitespace,
// or the end of a block comment.
// "foo" does not match "foobar", "foo::bar", or "foo/bar".
func markerPattern(marker, name string) *regexp.Regexp {
	return regexp.MustCompile(marker + `:\s*` + regexp.QuoteMeta(name) + `(?:$|\s|\*/|-->)`)
}

// Extract returns the lines of content
// between the start and end markers for the named anchor.
//
// The marker lines themselves are not included,
// nor are markers of other anchors nested inside the region.
// Lines are otherwise returned verbatim and joined with "\n".
//
// If an anchor appears more than once,
// the first start marker and the first end marker after it are used.
// path is only used to report errors.
func Extract(path, content, name string) (string, error) {
	lines := strings.Split(_newlines.Replace(content), "\n")

	startMarker := markerPattern("ANCHOR", name)
	start := -1
	for i, line := range lines {
		if startMarker.MatchString(line) {
			start = i
			break
		}
	}
	if start < 0 {
		return "", errtrace.Wrap(&AnchorNotFoundError{Path: path, Anchor: name})
	}

	endMarker := markerPattern("ANCHOR_END", name)
	end := -1
	for i := start + 1; i < len(lines); i++ {
		if endMarker.MatchString(lines[i]) {
			end = i
			break
		}
	}
	if end < 0 {
		return "", errtrace.Wrap(&AnchorEndNotFoundError{Path: path, Anchor: name})
	}

	region := make([]string, 0, end-start-1)
	for _, line := range lines[start+1 : end] {
		if _anyMarker.MatchString(line) {
			continue
		}
		region = append(region, line)
	}
	return strings.Join(region, "\n"), nil
}
