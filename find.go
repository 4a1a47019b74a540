package main

import (
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"

	"braces.dev/errtrace"
)

// _docExtensions lists the file extensions of documents.
var _docExtensions = map[string]struct{}{
	".md":  {},
	".mdx": {},
}

// DocumentRef is a reference to a markdown document on disk.
type DocumentRef struct {
	// Dir is the input directory holding the document,
	// as given on the command line.
	Dir string

	// Name is the base name of Dir after resolving it.
	// Output for this document is placed under a directory of this name.
	Name string

	// Path is the slash-separated path to the document relative to Dir.
	Path string

	// ID identifies the document in sidebars.
	// It's Path without the file extension.
	ID string
}

// SourcePath returns the path to the document on disk.
func (r *DocumentRef) SourcePath() string {
	return filepath.Join(r.Dir, filepath.FromSlash(r.Path))
}

// OutputPath returns the path for the built document
// relative to the output directory.
func (r *DocumentRef) OutputPath() string {
	return filepath.Join(r.Name, filepath.FromSlash(r.Path))
}

// Finder searches directories for markdown documents.
type Finder struct {
	// Exclude holds path.Match patterns.
	// Documents and directories whose path relative to the input directory
	// match one of these are skipped.
	Exclude []string

	// DocIDs, if non-nil, limits results
	// to documents with one of these IDs.
	DocIDs map[string]struct{}

	DebugLog *log.Logger
}

// FindDocuments returns all documents inside the given directories.
// Documents are reported in directory order, and in lexical order
// within a directory.
//
// Output for each directory is placed under its base name,
// so two directories with the same base name are an error.
func (f *Finder) FindDocuments(dirs ...string) ([]*DocumentRef, error) {
	var refs []*DocumentRef
	names := make(map[string]string, len(dirs)) // name => dir
	for _, dir := range dirs {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		name := filepath.Base(abs)
		if other, ok := names[name]; ok {
			return nil, errtrace.Wrap(fmt.Errorf("%v and %v would both be written to %v", other, dir, name))
		}
		names[name] = dir

		found, err := f.findInDir(dir, name)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		refs = append(refs, found...)
	}
	return refs, nil
}

func (f *Finder) findInDir(dir, name string) ([]*DocumentRef, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if !info.IsDir() {
		return nil, errtrace.Wrap(fmt.Errorf("%v: not a directory", dir))
	}

	var refs []*DocumentRef
	err = fs.WalkDir(os.DirFS(dir), ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == "." {
			return nil
		}

		if f.excluded(p) {
			f.debugLog().Printf("Excluding %v", path.Join(filepath.ToSlash(dir), p))
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}

		ext := path.Ext(p)
		if _, ok := _docExtensions[ext]; !ok {
			return nil
		}

		id := strings.TrimSuffix(p, ext)
		if f.DocIDs != nil {
			if _, ok := f.DocIDs[id]; !ok {
				f.debugLog().Printf("Skipping %v: not in any sidebar", id)
				return nil
			}
		}

		refs = append(refs, &DocumentRef{
			Dir:  dir,
			Name: name,
			Path: p,
			ID:   id,
		})
		return nil
	})
	return refs, errtrace.Wrap(err)
}

func (f *Finder) excluded(p string) bool {
	for _, pattern := range f.Exclude {
		// Patterns are validated when flags are parsed.
		if ok, _ := path.Match(pattern, p); ok {
			return true
		}
	}
	return false
}

func (f *Finder) debugLog() *log.Logger {
	if f.DebugLog != nil {
		return f.DebugLog
	}
	return _discardLog
}

var _discardLog = log.New(io.Discard, "", 0)
