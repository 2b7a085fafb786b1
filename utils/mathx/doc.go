// File: doc.go
// Title: Package Documentation for mathx
// Description: Package mathx converts arbitrary-width binary integers to their
//              canonical base-10 text.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with decimal arithmetic and business functions
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-18 v0.3.0: Replaced decimal arithmetic with word-buffer decimal conversion

// Package mathx converts integers of arbitrary width to decimal strings.
//
// Integers are passed as little-endian machine words (least significant word
// first). Words may be uint32, uint64 or uint, and a signedness flag selects
// between an unsigned magnitude and a two's-complement value:
//
//	mathx.FormatWords([]uint64{0, 1}, false)       // "18446744073709551616"
//	mathx.FormatWords([]uint32{0xffffffff}, true)  // "-1"
//	mathx.FormatInt128(math.MinInt64, 0)           // "-170141183460469231731687303715884105728"
//
// The conversion works on a private copy of the words. For up to eight words
// that copy lives on the stack, and it is zeroed before the function returns.
// The only heap allocation is the returned string.
package mathx
