// Package strtools provides tools for converting strings between naming
// conventions from Go code or the command line.
//
// # Overview
//
// The module consists of two primary packages:
//
//   - strcase: Pure case conversions plus a cached Engine
//   - dispatch: Argument parsing and command dispatch for small CLIs
//
// The strerrors package holds the typed errors both packages return.
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/strtools
//
// Install the CLI:
//
//	go install github.com/erraggy/strtools/cmd/strtools@latest
//
// # Quick Start
//
// Convert a string:
//
//	strcase.Kebab("helloWorld")      // "hello-world"
//	strcase.Snake("Hello World", "") // "hello_world"
//	strcase.Headline("user_id")      // "User Id"
//
// Reuse conversions through a bounded cache:
//
//	engine, err := strcase.New(strcase.WithCacheSize(1024))
//	if err != nil {
//		log.Fatal(err)
//	}
//	out, err := engine.Convert(strcase.CaseCamel, "hello world")
//
// # Command Line
//
//	strtools kebab helloWorld      # hello-world
//	strtools headline user_id      # User Id
//	strtools all --format=json foo # every conversion as JSON
//	strtools help                  # list the commands
//
// Unknown or missing commands print the help screen and exit 0. A command
// given no string prints an error with its usage line and exits 1.
//
// # Build Details
//
// Version, Commit and BuildTime are set through ldflags at release time.
package strtools
