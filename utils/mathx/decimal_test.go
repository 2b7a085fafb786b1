// File: decimal_test.go
// Title: Unit Tests for Word Buffer Decimal Conversion
// Description: Cross-checks FormatWords against math/big for signed and
//              unsigned inputs of several word widths.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation for decimal arithmetic
// - 2026-10-18 v0.3.0: Rewritten for word conversion

package mathx

import (
	"math"
	"math/big"
	"math/rand"
	"strconv"
	"testing"
)

func reference64(words []uint64, signed bool) string {
	n := new(big.Int)
	for i := len(words) - 1; i >= 0; i-- {
		n.Lsh(n, 64)
		n.Or(n, new(big.Int).SetUint64(words[i]))
	}
	if signed && len(words) > 0 && words[len(words)-1]>>63 == 1 {
		n.Sub(n, new(big.Int).Lsh(big.NewInt(1), uint(64*len(words))))
	}
	return n.String()
}

func reference32(words []uint32, signed bool) string {
	n := new(big.Int)
	for i := len(words) - 1; i >= 0; i-- {
		n.Lsh(n, 32)
		n.Or(n, new(big.Int).SetUint64(uint64(words[i])))
	}
	if signed && len(words) > 0 && words[len(words)-1]>>31 == 1 {
		n.Sub(n, new(big.Int).Lsh(big.NewInt(1), uint(32*len(words))))
	}
	return n.String()
}

func TestFormatWords64(t *testing.T) {
	tests := []struct {
		name   string
		words  []uint64
		signed bool
		want   string
	}{
		{"empty", nil, false, "0"},
		{"zero", []uint64{0}, false, "0"},
		{"zero signed", []uint64{0, 0}, true, "0"},
		{"one", []uint64{1}, false, "1"},
		{"minus one", []uint64{math.MaxUint64}, true, "-1"},
		{"all ones unsigned", []uint64{math.MaxUint64}, false, "18446744073709551615"},
		{"min int64", []uint64{1 << 63}, true, "-9223372036854775808"},
		{"2^64", []uint64{0, 1}, false, "18446744073709551616"},
		{"10^19", []uint64{10000000000000000000}, false, "10000000000000000000"},
		{"chunk boundary", []uint64{10000000000000000000, 0}, true, "10000000000000000000"},
		{"min int128", []uint64{0, 1 << 63}, true, "-170141183460469231731687303715884105728"},
		{"max uint128", []uint64{math.MaxUint64, math.MaxUint64}, false, "340282366920938463463374607431768211455"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatWords(tt.words, tt.signed); got != tt.want {
				t.Errorf("FormatWords() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatWords32(t *testing.T) {
	tests := []struct {
		name   string
		words  []uint32
		signed bool
		want   string
	}{
		{"zero", []uint32{0}, true, "0"},
		{"all ones unsigned", []uint32{math.MaxUint32}, false, "4294967295"},
		{"minus one", []uint32{math.MaxUint32}, true, "-1"},
		{"min int32", []uint32{1 << 31}, true, "-2147483648"},
		{"10^9", []uint32{1000000000}, false, "1000000000"},
		{"two words", []uint32{0, 1}, false, "4294967296"},
		{"min int64", []uint32{0, 1 << 31}, true, "-9223372036854775808"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatWords(tt.words, tt.signed); got != tt.want {
				t.Errorf("FormatWords() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatWordsAgainstBig(t *testing.T) {
	rng := rand.New(rand.NewSource(1994))
	for n := 1; n <= 12; n++ {
		for i := 0; i < 200; i++ {
			w64 := make([]uint64, n)
			w32 := make([]uint32, n)
			for j := range w64 {
				w64[j] = rng.Uint64()
				w32[j] = rng.Uint32()
				// sparse values exercise zero-word trimming
				if rng.Intn(4) == 0 {
					w64[j] = 0
					w32[j] = 0
				}
			}
			for _, signed := range []bool{false, true} {
				if got, want := FormatWords(w64, signed), reference64(w64, signed); got != want {
					t.Fatalf("FormatWords(%v, %v) = %s, want %s", w64, signed, got, want)
				}
				if got, want := FormatWords(w32, signed), reference32(w32, signed); got != want {
					t.Fatalf("FormatWords(%v, %v) = %s, want %s", w32, signed, got, want)
				}
			}
		}
	}
}

func TestFormatWordsLeavesInputIntact(t *testing.T) {
	words := []uint64{1 << 63}
	_ = FormatWords(words, true)
	if words[0] != 1<<63 {
		t.Errorf("input modified: %x", words[0])
	}
}

func TestFormatInt64(t *testing.T) {
	values := []int64{0, 1, -1, 42, -42, math.MaxInt64, math.MinInt64, 1e18, -1e18}
	for _, v := range values {
		if got, want := FormatInt64(v), strconv.FormatInt(v, 10); got != want {
			t.Errorf("FormatInt64(%d) = %q, want %q", v, got, want)
		}
	}
	if got := FormatUint64(math.MaxUint64); got != "18446744073709551615" {
		t.Errorf("FormatUint64(max) = %q", got)
	}
}

func TestFormatInt128(t *testing.T) {
	if got := FormatInt128(-1, math.MaxUint64); got != "-1" {
		t.Errorf("FormatInt128(-1) = %q, want %q", got, "-1")
	}
	if got := FormatInt128(math.MaxInt64, math.MaxUint64); got != "170141183460469231731687303715884105727" {
		t.Errorf("FormatInt128(max) = %q", got)
	}
	if got := FormatUint128(1, 0); got != "18446744073709551616" {
		t.Errorf("FormatUint128(1, 0) = %q", got)
	}
}

func TestLargestPowerOfTen(t *testing.T) {
	if c := largestPowerOfTen(32); c.divisor != 1e9 || c.digits != 9 {
		t.Errorf("largestPowerOfTen(32) = %+v", c)
	}
	if c := largestPowerOfTen(64); c.divisor != 1e19 || c.digits != 19 {
		t.Errorf("largestPowerOfTen(64) = %+v", c)
	}
}

func TestDigitBound(t *testing.T) {
	for bitsWidth := 1; bitsWidth <= 1024; bitsWidth++ {
		limit := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(bitsWidth)), big.NewInt(1))
		if got := DigitBound(bitsWidth); got < len(limit.String()) {
			t.Fatalf("DigitBound(%d) = %d, want >= %d", bitsWidth, got, len(limit.String()))
		}
	}
}
