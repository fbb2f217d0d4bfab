// Package strerrors provides structured error types for strtools.
//
// Import path: github.com/erraggy/strtools/strerrors
//
// The case-conversion engine never fails, so every error here belongs to the
// command dispatcher boundary. Callers can distinguish them with [errors.Is]
// and [errors.As].
//
// # Error Types
//
//   - [ArgumentArityError]: a command was invoked without an argument it requires
//   - [ExitError]: a command asks the process to exit with a specific status
//   - [ConfigError]: an option carries an invalid value
//
// # Sentinel Errors
//
//   - [ErrArgumentArity]: Matches any [ArgumentArityError]
//   - [ErrExit]: Matches any [ExitError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
//	code := d.Dispatch(args)
//
//	if err := dispatch.CheckArity(spec, payload); errors.Is(err, strerrors.ErrArgumentArity) {
//	    var arityErr *strerrors.ArgumentArityError
//	    if errors.As(err, &arityErr) {
//	        fmt.Printf("%s needs %v\n", arityErr.Command, arityErr.Required)
//	    }
//	}
package strerrors
