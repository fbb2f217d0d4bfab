// Package strcase converts strings between naming conventions.
//
// Import path: github.com/erraggy/strtools/strcase
//
// Every conversion is a pure, total function: it accepts any string, never
// fails, and keeps no state between calls. Empty input always yields empty
// output.
//
// # Conventions
//
//   - [Kebab]: "Hello World" -> "hello-world"
//   - [Snake]: "Hello World" -> "hello_world"
//   - [Camel]: "hello world" -> "helloWorld"
//   - [Studly] (alias [Pascal]): "hello world" -> "HelloWorld"
//   - [Lower], [Upper]: full Unicode case mapping
//   - [Title]: "hello world" -> "Hello World", spacing preserved
//   - [Headline]: "hello_world" -> "Hello World", separators collapsed
//   - [Slug]: "Héllo Wörld!" -> "hello-world"
//   - [Sentence]: "hello world" -> "Hello world"
//
// # Word Boundaries
//
// Kebab, Snake and Sentence tokenize their input into words. Whitespace, '-'
// and '_' always separate words. An upper-case letter following a lower-case
// letter or digit starts a new word, and an acronym run keeps its last letter
// for the next word when a lower-case letter follows:
//
//	strcase.Snake("HTTPServerError") // "http_server_error"
//
// # Memoization
//
// The package-level functions never cache. An [Engine] wraps the same
// conversions with a bounded LRU cache owned by that Engine, so separate
// Engines never share results:
//
//	e, err := strcase.New(strcase.WithCacheSize(512))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(e.Kebab("Hello World")) // hello-world
package strcase
