// Package error provides the structured error type shared by all chrono packages.
//
// Package: error
// Title: chrono Error Handling
// Description: Structured errors with codes, severities and key/value details.
//              Parse failures from the text codecs carry the original input,
//              the byte offset of the failure and a well-formed example so
//              callers can report a clean diagnostic or try another grammar.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-18 v0.2.0: Codec taxonomy (malformed input, out of range,
//                       unsupported combination) and parse failure details
//
// Usage:
//   import chronoerror "github.com/msto63/chrono/core/error"
//
//   err := chronoerror.ParseFailure(chronoerror.CodeMalformedInput,
//     "Sun, 06 Nov 1994 08:49:37 PST", 26, "Sun, 06 Nov 1994 08:49:37 GMT").
//     WithDetail("expected", "GMT")
//
//   if chronoerror.HasCode(err, chronoerror.CodeMalformedInput) {
//     fmt.Println(err.Input(), err.Offset())
//   }
package error
