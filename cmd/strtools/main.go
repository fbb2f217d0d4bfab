package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/erraggy/strtools"
	"github.com/erraggy/strtools/cmd/strtools/commands"
	"github.com/erraggy/strtools/dispatch"
	"github.com/erraggy/strtools/internal/cliutil"
	"github.com/erraggy/strtools/internal/markup"
	"github.com/erraggy/strtools/strcase"
	"github.com/erraggy/strtools/strerrors"
	"github.com/mattn/go-colorable"
)

func main() {
	os.Exit(run(os.Args[1:], colorable.NewColorableStdout(), colorable.NewColorableStderr(), markup.Detect(os.Stdout)))
}

// run executes the CLI against raw and returns the process exit code. tty
// reports whether stdout is a color-capable terminal.
func run(raw []string, stdout, stderr io.Writer, tty bool) int {
	args := dispatch.Parse(raw)
	renderer := markup.New(tty && !args.Flag("no-color"))

	if args.Flag("version") {
		cliutil.Writef(stdout, "%s %s\n", commands.Program, strtools.Version())
		if args.Flag("verbose") {
			cliutil.Writeln(stdout, strtools.BuildInfo())
		}
		return 0
	}

	logger := dispatch.Logger(dispatch.NopLogger{})
	if args.Flag("verbose") {
		logger = dispatch.NewSlogAdapter(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	engine, err := newEngine(args)
	if err != nil {
		cliutil.Writeln(stderr, renderer.Render("<error>Error:</error> "+err.Error()))
		return 1
	}

	cfg := commands.DefaultConfig()
	cfg.Format = args.Option("format", cfg.Format)

	reg, err := commands.NewRegistry(engine, renderer, cfg)
	if err != nil {
		cliutil.Writef(stderr, "Error: %v\n", err)
		return 1
	}

	d, err := dispatch.New(reg,
		dispatch.WithStdout(stdout),
		dispatch.WithStderr(stderr),
		dispatch.WithLogger(logger),
		dispatch.WithRenderer(renderer),
		dispatch.WithProgram(commands.Program),
	)
	if err != nil {
		cliutil.Writef(stderr, "Error: %v\n", err)
		return 1
	}
	return d.Dispatch(args)
}

func newEngine(args dispatch.Arguments) (*strcase.Engine, error) {
	if !args.HasOption("cache-size") {
		return strcase.New()
	}
	raw := args.Option("cache-size", "")
	size, err := strconv.Atoi(raw)
	if err != nil || size < 0 {
		return nil, &strerrors.ConfigError{
			Option:  "cache-size",
			Value:   raw,
			Message: "must be a non-negative integer",
		}
	}
	engine, err := strcase.New(strcase.WithCacheSize(size))
	if err != nil {
		return nil, fmt.Errorf("creating engine: %w", err)
	}
	return engine, nil
}
