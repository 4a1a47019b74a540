package anchor

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"path/filepath"

	"braces.dev/errtrace"
	"github.com/move-book/anchorcode/internal/highlight"
	"github.com/move-book/anchorcode/internal/mdtree"
)

// Resolver fills code blocks that carry file and anchor directives
// with excerpts from the referenced files.
//
// A Resolver holds no per-document state,
// so one Resolver may serve several documents concurrently
// provided its FileReader allows that.
type Resolver struct {
	// Root is the directory that file directives are relative to.
	// Defaults to the current working directory.
	Root string

	// Files reads referenced files.
	// Defaults to [OSReader].
	Files FileReader

	// Log receives warnings.
	// Defaults to discarding them.
	Log *log.Logger

	// DebugLog, if set, receives a line for every included excerpt.
	DebugLog *log.Logger
}

// Resolve appends the requested excerpt to every code block in doc
// that has both a file and an anchor directive.
//
// The first error aborts resolution.
// Code blocks visited before the error keep their new contents,
// so a document that failed to resolve must be parsed again
// before retrying.
func (r *Resolver) Resolve(doc *mdtree.Document) error {
	root, err := filepath.Abs(r.Root)
	if err != nil {
		return errtrace.Wrap(fmt.Errorf("root directory: %w", err))
	}

	return errtrace.Wrap(mdtree.WalkCodeBlocks(doc, func(cb *mdtree.CodeBlock) error {
		return r.resolveBlock(root, cb)
	}))
}

func (r *Resolver) resolveBlock(root string, cb *mdtree.CodeBlock) error {
	dir, ok := ParseDirective(cb.Meta)
	if !ok {
		return nil
	}

	path := dir.File
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}
	path = filepath.Clean(path)

	content, err := r.load(path)
	if err != nil {
		return err
	}

	region, err := Extract(path, string(content), dir.Anchor)
	if err != nil {
		return err
	}

	if cb.Lang != "" && highlight.Mismatch(cb.Lang, path) {
		logOrDiscard(r.Log).Printf("warning: %v code block includes %v", cb.Lang, path)
	}
	if err := r.checkSyntax(cb.Lang, path, dir.Anchor, region); err != nil {
		return err
	}
	logOrDiscard(r.DebugLog).Printf("Including %v#%v (%d bytes)", path, dir.Anchor, len(region))

	cb.Append(region)
	return nil
}

// checkSyntax warns about text in region
// that the code block's language does not recognize.
func (r *Resolver) checkSyntax(lang, path, anchor, region string) error {
	invalid, err := highlight.Invalid(lang, []byte(region))
	if err != nil {
		return errtrace.Wrap(fmt.Errorf("%v#%v: %w", path, anchor, err))
	}
	for _, tok := range invalid {
		logOrDiscard(r.Log).Printf("warning: %v#%v: unrecognized %v text %q", path, anchor, lang, tok.Value)
	}
	return nil
}

// load reads the file at path, which must be absolute.
func (r *Resolver) load(path string) ([]byte, error) {
	files := r.Files
	if files == nil {
		files = OSReader{}
	}

	content, err := files.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errtrace.Wrap(&MissingSourceFileError{Path: path, Err: err})
		}
		return nil, errtrace.Wrap(fmt.Errorf("read %v: %w", path, err))
	}
	return content, nil
}

func logOrDiscard(l *log.Logger) *log.Logger {
	if l != nil {
		return l
	}
	return _discardLog
}

var _discardLog = log.New(io.Discard, "", 0)
