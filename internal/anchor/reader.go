package anchor

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"braces.dev/errtrace"
)

// FileReader reads entire files given their absolute paths.
type FileReader interface {
	ReadFile(path string) ([]byte, error)
}

var (
	_ FileReader = OSReader{}
	_ FileReader = FSReader{}
)

// OSReader is a [FileReader] for the host filesystem.
type OSReader struct{}

// ReadFile reads the file at path.
func (OSReader) ReadFile(path string) ([]byte, error) {
	return errtrace.Wrap2(os.ReadFile(path))
}

// FSReader is a [FileReader] backed by an [fs.FS].
//
// Absolute paths are looked up in FS
// with the leading separator removed,
// so "/book/lib.move" is read as "book/lib.move".
type FSReader struct{ FS fs.FS }

// ReadFile reads the file at path from FS.
func (r FSReader) ReadFile(path string) ([]byte, error) {
	name := strings.TrimPrefix(filepath.ToSlash(path), "/")
	return errtrace.Wrap2(fs.ReadFile(r.FS, name))
}
