package main

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/move-book/anchorcode/internal/flagvalue"
	"github.com/move-book/anchorcode/internal/iotest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLIParser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give []string
		want params
	}{
		{
			desc: "minimal",
			give: []string{"docs"},
			want: params{
				Root:      ".",
				OutputDir: "_build",
				Jobs:      runtime.GOMAXPROCS(0),
				Dirs:      []string{"docs"},
			},
		},
		{
			desc: "many arguments",
			give: []string{
				"-root", "../packages",
				"-out", "build/docs",
				"-debug=log.txt",
				"-sidebar", "sidebars.yaml",
				"-sidebar=more.yaml",
				"-exclude", "drafts/*",
				"-j", "4",
				"book",
				"reference",
			},
			want: params{
				Root:      "../packages",
				OutputDir: "build/docs",
				Debug:     "log.txt",
				Sidebars:  []flagvalue.String{"sidebars.yaml", "more.yaml"},
				Excludes:  []globPattern{"drafts/*"},
				Jobs:      4,
				Dirs:      []string{"book", "reference"},
			},
		},
		{
			desc: "debug to stderr",
			give: []string{"-debug", "docs"},
			want: params{
				Root:      ".",
				OutputDir: "_build",
				Debug:     "-",
				Jobs:      runtime.GOMAXPROCS(0),
				Dirs:      []string{"docs"},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			got, err := (&cliParser{
				Stdout: iotest.Writer(t),
				Stderr: iotest.Writer(t),
			}).Parse(tt.give)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestCLIParser_configFile(t *testing.T) {
	t.Parallel()

	config := filepath.Join(t.TempDir(), "anchorcode.conf")
	require.NoError(t, os.WriteFile(config, []byte(
		"# build settings\n"+
			"root ../packages\n"+
			"out site\n"+
			"exclude drafts/*\n",
	), 0o644))

	got, err := (&cliParser{
		Stdout: iotest.Writer(t),
		Stderr: iotest.Writer(t),
	}).Parse([]string{"-config", config, "-out", "override", "docs"})
	require.NoError(t, err)

	assert.Equal(t, "../packages", got.Root)
	assert.Equal(t, "override", got.OutputDir, "command line must win")
	assert.Equal(t, []globPattern{"drafts/*"}, got.Excludes)
	assert.Equal(t, []string{"docs"}, got.Dirs)
}

// Not parallel: modifies the environment.
func TestCLIParser_environment(t *testing.T) {
	t.Setenv("ANCHORCODE_ROOT", "from-env")
	t.Setenv("ANCHORCODE_J", "2")

	got, err := (&cliParser{
		Stdout: iotest.Writer(t),
		Stderr: iotest.Writer(t),
	}).Parse([]string{"-j", "3", "docs"})
	require.NoError(t, err)

	assert.Equal(t, "from-env", got.Root)
	assert.Equal(t, 3, got.Jobs, "command line must win")
}

func TestCLIParser_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give []string
		want string // expected messages
	}{
		{
			desc: "no directories",
			want: "Please provide at least one directory",
		},
		{
			desc: "unrecognized",
			give: []string{"-foo=bar", "docs"},
			want: "flag provided but not defined: -foo",
		},
		{
			desc: "bad exclude pattern",
			give: []string{"-exclude", "[", "docs"},
			want: `bad pattern "["`,
		},
		{
			desc: "bad concurrency",
			give: []string{"-j", "0", "docs"},
			want: "-j must be at least 1",
		},
		{
			desc: "missing config file",
			give: []string{"-config", "does-not-exist.conf", "docs"},
			want: "does-not-exist.conf",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			var stderr bytes.Buffer
			_, err := (&cliParser{
				Stdout: iotest.Writer(t),
				Stderr: &stderr,
			}).Parse(tt.give)
			require.Error(t, err)
			assert.Contains(t, stderr.String(), tt.want)
		})
	}
}

func TestCLIParser_help(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give []string
		want string
	}{
		{desc: "default", give: []string{"-h"}, want: "USAGE: anchorcode"},
		{desc: "long", give: []string{"-help"}, want: "TOPICS"},
		{desc: "topic", give: []string{"-help=config"}, want: "ANCHORCODE_"},
		{desc: "topic argument", give: []string{"-h", "directives"}, want: "ANCHOR_END: mint"},
		{desc: "unknown topic", give: []string{"-h=nope"}, want: `unknown help topic "nope"`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			var stderr bytes.Buffer
			_, err := (&cliParser{
				Stdout: iotest.Writer(t),
				Stderr: &stderr,
			}).Parse(tt.give)
			assert.ErrorIs(t, err, flag.ErrHelp)
			assert.Contains(t, stderr.String(), tt.want)
		})
	}
}

func TestGlobPattern(t *testing.T) {
	t.Parallel()

	fset := flag.NewFlagSet(t.Name(), flag.ContinueOnError)
	var g globPattern
	fset.Var(&g, "x", "")
	require.NoError(t, fset.Parse([]string{"-x", "*.mdx"}))

	assert.Equal(t, "*.mdx", g.Get())
	assert.Equal(t, "*.mdx", g.String())
}
