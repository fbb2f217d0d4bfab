// Package naming provides the word-splitting primitives shared by the strcase
// engine.
//
// Splitting happens in two flavors:
//   - [Fields] splits only on separators (Unicode whitespace, '-' and '_').
//   - [Words] additionally splits on case boundaries, so "helloWorld" and
//     "HTTPServer" both yield two words.
//
// The rune helpers [UpperFirst], [LowerFirst] and [Capitalize] operate on the
// first rune only and never touch separators.
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
