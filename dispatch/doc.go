// Package dispatch turns raw process arguments into a single command
// invocation.
//
// Import path: github.com/erraggy/strtools/dispatch
//
// Dispatch is a single linear pass:
//
//	Parse -> Resolve -> CheckArity -> Handler -> report
//
// [Parse] classifies each token as an option or a positional argument.
// [Dispatcher.Resolve] looks up the first positional in a static [Registry]
// and falls back to the help command when it is missing or unknown. The
// remaining positionals are joined with single spaces into one payload
// string. [CheckArity] rejects a missing required argument before the
// handler runs, and the outcome is written to stdout or stderr and turned
// into an exit code.
//
// # Unknown Commands
//
// An unknown command name is not an error. It renders exactly what an
// explicit "help" renders and exits 0. With a debug [Logger] configured the
// fallback is logged together with the closest registered name.
//
// # Exit Codes
//
//   - 0: success, or a handler returned an [strerrors.ExitError] with Code 0
//   - 1: a required argument was missing, or a handler failed
//   - n: a handler returned an [strerrors.ExitError] with Code n
//
// # Example
//
//	reg, err := dispatch.NewRegistry(
//	    dispatch.CommandSpec{Name: "help", Description: "Display the help screen.", Handler: help},
//	    dispatch.CommandSpec{Name: "kebab", Description: "Convert a string to kebab-case.", Args: []string{"string"},
//	        Handler: func(s string) (string, error) { return strcase.Kebab(s), nil }},
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	d, err := dispatch.New(reg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.Exit(d.Run(os.Args[1:]))
package dispatch
