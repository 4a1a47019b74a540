// Package anchor resolves code blocks that include excerpts
// from external source files.
//
// A fenced code block opts in with two directives in its meta string:
//
//	```move file=sources/lib.move anchor=region1
//	```
//
// The referenced file marks the excerpt with lines such as
//
//	// ANCHOR: region1
//	...
//	// ANCHOR_END: region1
//
// and the lines between the markers are appended to the code block.
package anchor

import "regexp"

var (
	_fileDirective   = regexp.MustCompile(`(?:^|\s)file=(\S+)`)
	_anchorDirective = regexp.MustCompile(`(?:^|\s)anchor=(\S+)`)
)

// Directive is a request to include part of a file in a code block.
type Directive struct {
	// File is the path of the referenced file,
	// relative to the resolver's root directory.
	File string

	// Anchor is the name of the region to extract.
	Anchor string
}

// ParseDirective reads the file and anchor directives
// from a code block's meta string.
//
// It reports false if either directive is missing;
// such code blocks are left as they are.
func ParseDirective(meta string) (_ Directive, ok bool) {
	file := _fileDirective.FindStringSubmatch(meta)
	if file == nil {
		return Directive{}, false
	}

	anchor := _anchorDirective.FindStringSubmatch(meta)
	if anchor == nil {
		return Directive{}, false
	}

	return Directive{File: file[1], Anchor: anchor[1]}, true
}
