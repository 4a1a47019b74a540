// anchorcode fills markdown code blocks with excerpts of source files.
//
// A fenced code block with file= and anchor= directives in its info string
// receives the region of that file between the matching
// ANCHOR: and ANCHOR_END: markers.
// See 'anchorcode -help' for usage.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"braces.dev/errtrace"
	"github.com/move-book/anchorcode/internal/anchor"
	"github.com/move-book/anchorcode/internal/errdefer"
	"github.com/move-book/anchorcode/internal/mdtree"
	"github.com/move-book/anchorcode/internal/sidebar"
)

func main() {
	cmd := mainCmd{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	os.Exit(cmd.Run(os.Args[1:]))
}

// mainCmd is the actual entry point to the program.
type mainCmd struct {
	Stdout io.Writer // == os.Stdout
	Stderr io.Writer // == os.Stderr

	log *log.Logger
}

func (cmd *mainCmd) Run(args []string) (exitCode int) {
	cmd.log = log.New(cmd.Stderr, "", 0)

	opts, err := (&cliParser{
		Stdout: cmd.Stdout,
		Stderr: cmd.Stderr,
	}).Parse(args)
	if err != nil {
		// '$cmd -h' should exit with zero.
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		// No need to print anything.
		// Parse prints messages.
		return 1
	}

	if err := cmd.run(opts); err != nil {
		cmd.log.Printf("anchorcode: %v", err)
		return 1
	}
	return 0
}

func (cmd *mainCmd) run(opts *params) (err error) {
	debugw, err := opts.Debug.Create(cmd.Stderr)
	if err != nil {
		return errtrace.Wrap(fmt.Errorf("debug log: %w", err))
	}
	defer errdefer.Close(&err, debugw)
	debugLog := log.New(debugw, "", 0)

	finder := Finder{DebugLog: debugLog}
	for _, g := range opts.Excludes {
		finder.Exclude = append(finder.Exclude, string(g))
	}
	if len(opts.Sidebars) > 0 {
		finder.DocIDs = make(map[string]struct{})
		for _, path := range opts.Sidebars {
			sidebars, err := sidebar.Load(string(path))
			if err != nil {
				return errtrace.Wrap(fmt.Errorf("load sidebar: %w", err))
			}
			for _, id := range sidebars.DocIDs() {
				finder.DocIDs[id] = struct{}{}
			}
		}
	}

	refs, err := finder.FindDocuments(opts.Dirs...)
	if err != nil {
		return errtrace.Wrap(err)
	}
	debugLog.Printf("Found %d documents", len(refs))

	builder := Builder{
		Log:    cmd.log,
		Parser: new(mdtree.Parser),
		Resolver: &anchor.Resolver{
			Root:     opts.Root,
			Log:      cmd.log,
			DebugLog: debugLog,
		},
		OutDir:      opts.OutputDir,
		Concurrency: opts.Jobs,
	}

	return errtrace.Wrap(builder.Build(context.Background(), refs))
}
