package dispatch

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/erraggy/strtools/internal/cliutil"
	"github.com/erraggy/strtools/internal/markup"
	"github.com/erraggy/strtools/strerrors"
)

// DefaultFallback is the command run when no command name is given or the
// name is not registered.
const DefaultFallback = "help"

// DefaultProgram is the program name used in usage hints.
const DefaultProgram = "strtools"

// Renderer turns inline markup such as "<error>...</error>" into styled or
// plain text.
type Renderer interface {
	Render(s string) string
}

// Dispatcher resolves and runs one command per call.
type Dispatcher struct {
	registry *Registry
	fallback CommandSpec
	stdout   io.Writer
	stderr   io.Writer
	logger   Logger
	renderer Renderer
	program  string
}

// Option is a function that configures a Dispatcher
type Option func(*dispatcherConfig)

type dispatcherConfig struct {
	stdout   io.Writer
	stderr   io.Writer
	logger   Logger
	renderer Renderer
	program  string
	fallback string
}

// WithStdout sets the writer receiving command output. Defaults to os.Stdout.
func WithStdout(w io.Writer) Option {
	return func(cfg *dispatcherConfig) { cfg.stdout = w }
}

// WithStderr sets the writer receiving error messages. Defaults to os.Stderr.
func WithStderr(w io.Writer) Option {
	return func(cfg *dispatcherConfig) { cfg.stderr = w }
}

// WithLogger sets the logger. Defaults to NopLogger.
func WithLogger(l Logger) Option {
	return func(cfg *dispatcherConfig) { cfg.logger = l }
}

// WithRenderer sets the markup renderer used for error messages. Defaults to
// a renderer that strips markup.
func WithRenderer(r Renderer) Option {
	return func(cfg *dispatcherConfig) { cfg.renderer = r }
}

// WithProgram sets the program name shown in usage hints.
func WithProgram(name string) Option {
	return func(cfg *dispatcherConfig) { cfg.program = name }
}

// WithFallback sets the command used for missing or unknown command names.
func WithFallback(name string) Option {
	return func(cfg *dispatcherConfig) { cfg.fallback = name }
}

// New creates a Dispatcher over registry. The fallback command must be
// registered.
func New(registry *Registry, opts ...Option) (*Dispatcher, error) {
	if registry == nil {
		return nil, fmt.Errorf("dispatch: registry is nil")
	}
	cfg := dispatcherConfig{
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		logger:   NopLogger{},
		renderer: markup.New(false),
		program:  DefaultProgram,
		fallback: DefaultFallback,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	fallback, ok := registry.Lookup(cfg.fallback)
	if !ok {
		return nil, fmt.Errorf("dispatch: fallback command %s is not registered", cfg.fallback)
	}

	return &Dispatcher{
		registry: registry,
		fallback: fallback,
		stdout:   cfg.stdout,
		stderr:   cfg.stderr,
		logger:   cfg.logger,
		renderer: cfg.renderer,
		program:  cfg.program,
	}, nil
}

// Run parses raw (without the program name), dispatches, and returns the
// process exit code.
func (d *Dispatcher) Run(raw []string) int {
	return d.Dispatch(Parse(raw))
}

// Dispatch resolves and invokes the command named by args.
func (d *Dispatcher) Dispatch(args Arguments) int {
	d.logger.Debug("parsed arguments",
		"positionals", len(args.Positionals),
		"options", len(args.Options))
	spec := d.Resolve(args)
	return d.Invoke(spec, args)
}

// Resolve returns the command named by the first positional, or the
// fallback command when it is missing or not registered.
func (d *Dispatcher) Resolve(args Arguments) CommandSpec {
	name := args.Command()
	if spec, ok := d.registry.Lookup(name); ok {
		d.logger.Debug("resolved command", "command", spec.Name)
		return spec
	}
	if name == "" {
		d.logger.Debug("no command given, using fallback", "fallback", d.fallback.Name)
	} else {
		d.logger.Debug("unknown command, using fallback",
			"command", name,
			"fallback", d.fallback.Name,
			"suggestion", d.registry.Suggest(name))
	}
	return d.fallback
}

// CheckArity returns an *strerrors.ArgumentArityError when spec requires an
// argument and payload is empty.
func CheckArity(spec CommandSpec, payload string) error {
	given := 0
	if payload != "" {
		given = 1
	}
	if given < spec.Arity() {
		return &strerrors.ArgumentArityError{
			Command:  spec.Name,
			Required: append([]string(nil), spec.Args...),
			Given:    given,
		}
	}
	return nil
}

// Invoke runs spec with the payload built from args, reports the outcome,
// and returns the exit code.
func (d *Dispatcher) Invoke(spec CommandSpec, args Arguments) int {
	payload := args.Payload()
	if err := CheckArity(spec, payload); err != nil {
		return d.fail(spec, err)
	}

	d.logger.Debug("invoking command", "command", spec.Name, "payload_len", len(payload))
	out, err := spec.Handler(payload)
	if err != nil {
		return d.fail(spec, err)
	}
	cliutil.Writeln(d.stdout, out)
	return 0
}

// fail maps a handler or arity error to messages and an exit code.
func (d *Dispatcher) fail(spec CommandSpec, err error) int {
	var exitErr *strerrors.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Cause != nil {
			d.printError(exitErr.Cause)
		}
		return exitErr.Code
	}

	d.printError(err)

	if errors.Is(err, strerrors.ErrArgumentArity) {
		d.logger.Warn("missing required argument", "command", spec.Name, "required", spec.Args)
		cliutil.Writeln(d.stderr, d.renderer.Render("<comment>Usage:</comment> "+spec.Usage(d.program)))
	} else {
		d.logger.Error("command failed", "command", spec.Name, "error", err)
	}
	return 1
}

func (d *Dispatcher) printError(err error) {
	cliutil.Writeln(d.stderr, d.renderer.Render("<error>Error:</error> "+err.Error()))
}
