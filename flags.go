package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"path"
	"runtime"

	"braces.dev/errtrace"
	"github.com/move-book/anchorcode/internal/flagvalue"
	"github.com/peterbourgon/ff/v3"
)

var (
	errHelp             = flag.ErrHelp
	errInvalidArguments = errors.New("invalid arguments")
)

// _envPrefix is the prefix for environment variables
// that provide default flag values.
const _envPrefix = "ANCHORCODE"

// params holds all arguments for anchorcode.
type params struct {
	version bool
	help    Help
	config  string

	Debug flagvalue.FileSwitch

	Root      string
	OutputDir string
	Sidebars  []flagvalue.String
	Excludes  []globPattern
	Jobs      int

	Dirs []string
}

// cliParser parses the command line arguments for anchorcode.
type cliParser struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (cmd *cliParser) newFlagSet() (*params, *flag.FlagSet) {
	flag := flag.NewFlagSet("anchorcode", flag.ContinueOnError)
	// Errors are reported by Parse
	// so that config file and environment problems show up too.
	flag.SetOutput(io.Discard)
	flag.Usage = func() {
		UsageHelp.Write(cmd.Stderr)
	}

	var p params

	// Filesystem:
	flag.StringVar(&p.Root, "root", ".", "")
	flag.StringVar(&p.OutputDir, "out", "_build", "")

	// Document selection:
	flag.Var(flagvalue.ListOf(&p.Sidebars), "sidebar", "")
	flag.Var(flagvalue.ListOf(&p.Excludes), "exclude", "")

	// Execution:
	flag.IntVar(&p.Jobs, "j", runtime.GOMAXPROCS(0), "")

	// Program-level:
	flag.Var(&p.Debug, "debug", "")
	flag.StringVar(&p.config, "config", "", "")
	flag.BoolVar(&p.version, "version", false, "")
	flag.Var(&p.help, "help", "")
	flag.Var(&p.help, "h", "")

	return &p, flag
}

func (cmd *cliParser) Parse(args []string) (*params, error) {
	p, flag := cmd.newFlagSet()
	err := ff.Parse(flag, args,
		ff.WithEnvVarPrefix(_envPrefix),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
	)
	if err != nil {
		fmt.Fprintln(cmd.Stderr, err)
		return nil, errtrace.Wrap(err)
	}
	args = flag.Args()

	if p.version {
		fmt.Fprintln(cmd.Stdout, "anchorcode", _version)
		return nil, errHelp
	}

	if p.help == DefaultHelp && len(args) > 0 {
		// The user might have done "-h foo"
		// instead of "-h=foo".
		// If the argument is a known help topic,
		// take it.
		if _, ok := _helpTopics[Help(args[0])]; ok {
			p.help = Help(args[0])
		}
	}

	switch p.help {
	case NoHelp:
		// proceed as usual
	default:
		if err := p.help.Write(cmd.Stderr); err != nil {
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, errHelp
	}

	if p.Jobs < 1 {
		fmt.Fprintf(cmd.Stderr, "-j must be at least 1, got %d\n", p.Jobs)
		return nil, errInvalidArguments
	}

	p.Dirs = args
	if len(p.Dirs) == 0 {
		fmt.Fprintln(cmd.Stderr, "Please provide at least one directory.")
		UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	}

	return p, nil
}

// globPattern is a path.Match pattern.
// It's validated when the flag is set.
type globPattern string

var _ flag.Getter = (*globPattern)(nil)

func (g *globPattern) Get() any { return string(*g) }

func (g *globPattern) String() string { return string(*g) }

func (g *globPattern) Set(s string) error {
	if _, err := path.Match(s, ""); err != nil {
		return errtrace.Wrap(fmt.Errorf("bad pattern %q: %w", s, err))
	}
	*g = globPattern(s)
	return nil
}
