package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"braces.dev/errtrace"
	"github.com/move-book/anchorcode/internal/anchor"
	"github.com/move-book/anchorcode/internal/errdefer"
	"github.com/move-book/anchorcode/internal/mdtree"
	"golang.org/x/sync/errgroup"
)

// Parser parses markdown source into a document tree.
type Parser interface {
	Parse(src []byte) *mdtree.Document
}

var _ Parser = (*mdtree.Parser)(nil)

// Resolver fills code blocks in a document
// with excerpts from the files they reference.
type Resolver interface {
	Resolve(*mdtree.Document) error
}

var _ Resolver = (*anchor.Resolver)(nil)

// Builder builds markdown documents,
// writing copies with resolved code blocks to an output directory.
//
// In terms of code organization,
// Builder's purpose is to add a separation between main
// and the program's core logic to aid in testability.
type Builder struct {
	Log      *log.Logger
	Parser   Parser
	Resolver Resolver
	OutDir   string

	// Concurrency is the maximum number of documents
	// built at the same time.
	// If zero or negative, there's no limit.
	Concurrency int
}

// Build builds the given documents.
//
// Building stops at the first failure.
// Output written for other documents before that is left in place.
func (b *Builder) Build(ctx context.Context, refs []*DocumentRef) error {
	g, ctx := errgroup.WithContext(ctx)
	if b.Concurrency > 0 {
		g.SetLimit(b.Concurrency)
	}

	for _, ref := range refs {
		ref := ref
		g.Go(func() error {
			// Don't start new documents after a failure.
			if err := ctx.Err(); err != nil {
				return errtrace.Wrap(err)
			}
			return errtrace.Wrap(b.buildDocument(ref))
		})
	}

	return errtrace.Wrap(g.Wait())
}

func (b *Builder) buildDocument(ref *DocumentRef) error {
	src, err := os.ReadFile(ref.SourcePath())
	if err != nil {
		return errtrace.Wrap(err)
	}

	doc := b.Parser.Parse(src)
	if err := b.Resolver.Resolve(doc); err != nil {
		return errtrace.Wrap(fmt.Errorf("%v: %w", ref.SourcePath(), err))
	}

	dst := filepath.Join(b.OutDir, ref.OutputPath())
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return errtrace.Wrap(err)
	}

	b.Log.Printf("Writing %v", dst)
	return errtrace.Wrap(writeFile(dst, doc.Bytes()))
}

// writeFile writes body to a new file at path.
// A partially written file is removed.
func writeFile(path string, body []byte) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer errdefer.Remove(&err, path)
	defer errdefer.Close(&err, f)

	_, err = f.Write(body)
	return errtrace.Wrap(err)
}
