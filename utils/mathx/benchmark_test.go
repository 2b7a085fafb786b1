// File: benchmark_test.go
// Title: Performance Benchmarks for MathX Functions
// Description: Benchmarks for word conversion at several widths.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial benchmark implementation
// - 2026-10-18 v0.3.0: Word conversion benchmarks

package mathx

import (
	"math"
	"testing"
)

func BenchmarkFormatInt64(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = FormatInt64(math.MinInt64)
	}
}

func BenchmarkFormatWords128(b *testing.B) {
	words := []uint64{math.MaxUint64, math.MaxUint64}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = FormatWords(words, false)
	}
}

func BenchmarkFormatWords512(b *testing.B) {
	words := []uint64{1, 2, 3, 4, 5, 6, 7, math.MaxUint64}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = FormatWords(words, true)
	}
}
