package anchor

import "fmt"

// MissingSourceFileError indicates that a code block
// referenced a file that does not exist.
type MissingSourceFileError struct {
	// Path is the absolute path that was looked up.
	Path string

	Err error
}

func (e *MissingSourceFileError) Error() string {
	return fmt.Sprintf("file not found: %v", e.Path)
}

func (e *MissingSourceFileError) Unwrap() error { return e.Err }

// AnchorNotFoundError indicates that a file
// has no start marker for the requested anchor.
type AnchorNotFoundError struct {
	Path   string
	Anchor string
}

func (e *AnchorNotFoundError) Error() string {
	return fmt.Sprintf("anchor %q not found in %v", e.Anchor, e.Path)
}

// AnchorEndNotFoundError indicates that a file
// has a start marker for the requested anchor,
// but no end marker after it.
type AnchorEndNotFoundError struct {
	Path   string
	Anchor string
}

func (e *AnchorEndNotFoundError) Error() string {
	return fmt.Sprintf("no end anchor for %q in %v", e.Anchor, e.Path)
}
