// File: decimal.go
// Title: Word Buffer Decimal Conversion
// Description: Converts little-endian word sequences to base-10 strings by
//              repeated long division by the largest power of ten per word.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core decimal operations
// - 2025-07-26 v0.1.1: Enhanced String() method with auto-rounding
// - 2026-10-18 v0.3.0: Rewritten as allocation-free word conversion

package mathx

import (
	"math"
	"math/bits"
)

// Word is a machine word of an arbitrary-width integer.
type Word interface {
	~uint32 | ~uint64 | ~uint
}

// log10Two is log10(2) rounded up, so digit estimates never undercount.
const log10Two = 0.30103

// stackWords is the widest integer converted without a heap copy.
const stackWords = 8

// chunk is the largest power of ten that fits one word, and its digit count.
type chunk struct {
	divisor uint64
	digits  int
}

var (
	chunk32 = largestPowerOfTen(32)
	chunk64 = largestPowerOfTen(64)
)

// largestPowerOfTen multiplies by ten until the product no longer fits in
// width bits. The overflow is the loop's exit condition.
func largestPowerOfTen(width uint) chunk {
	limit := uint64(math.MaxUint64)
	if width < 64 {
		limit = 1<<width - 1
	}
	c := chunk{divisor: 1}
	for {
		hi, lo := bits.Mul64(c.divisor, 10)
		if hi != 0 || lo > limit {
			return c
		}
		c.divisor = lo
		c.digits++
	}
}

// wordWidth returns the bit width of W.
func wordWidth[W Word]() uint {
	all := ^W(0)
	return uint(bits.Len64(uint64(all)))
}

// DigitBound returns an upper bound on the number of decimal digits of an
// unsigned magnitude with the given number of bits.
func DigitBound(bitWidth int) int {
	if bitWidth <= 0 {
		return 1
	}
	return int(math.Ceil(float64(bitWidth) * log10Two))
}

// FormatWords returns the base-10 representation of the integer held in
// words, least significant word first. When signed is true the words are
// read as a two's-complement value.
func FormatWords[W Word](words []W, signed bool) string {
	if len(words) == 0 {
		return "0"
	}

	width := wordWidth[W]()
	c := chunk64
	if width == 32 {
		c = chunk32
	}

	var stack [stackWords]W
	owned := stack[:0]
	if len(words) > stackWords {
		owned = make([]W, 0, len(words))
	}
	owned = append(owned, words...)
	defer clear(owned)

	negative := false
	if signed && owned[len(owned)-1]>>(width-1) == 1 {
		negate(owned)
		negative = true
	}

	mag := trim(owned)
	if len(mag) == 0 {
		return "0"
	}

	var outStack [160]byte
	size := DigitBound(len(words)*int(width)) + 1
	var out []byte
	if size <= len(outStack) {
		out = outStack[:size]
	} else {
		out = make([]byte, size)
	}
	for i := range out {
		out[i] = '0'
	}

	pos := len(out)
	for {
		rem := divide(mag, c.divisor, width)
		mag = trim(mag)

		if len(mag) == 0 {
			for {
				pos--
				out[pos] = '0' + byte(rem%10)
				rem /= 10
				if rem == 0 {
					break
				}
			}
			break
		}

		end := pos - c.digits
		for rem > 0 {
			pos--
			out[pos] = '0' + byte(rem%10)
			rem /= 10
		}
		pos = end
	}

	if negative {
		pos--
		out[pos] = '-'
	}
	return string(out[pos:])
}

// negate replaces words with their two's complement.
func negate[W Word](words []W) {
	for i := range words {
		words[i] = ^words[i]
	}
	for i := range words {
		words[i]++
		if words[i] != 0 {
			return
		}
	}
}

// trim drops the most significant zero words.
func trim[W Word](words []W) []W {
	n := len(words)
	for n > 0 && words[n-1] == 0 {
		n--
	}
	return words[:n]
}

// divide divides words in place by divisor and returns the remainder.
func divide[W Word](words []W, divisor uint64, width uint) uint64 {
	var rem uint64
	for i := len(words) - 1; i >= 0; i-- {
		if width == 64 {
			q, r := bits.Div64(rem, uint64(words[i]), divisor)
			words[i] = W(q)
			rem = r
			continue
		}
		x := rem<<width | uint64(words[i])
		words[i] = W(x / divisor)
		rem = x % divisor
	}
	return rem
}

// FormatInt64 returns the decimal representation of v.
func FormatInt64(v int64) string {
	return FormatWords([]uint64{uint64(v)}, true)
}

// FormatUint64 returns the decimal representation of v.
func FormatUint64(v uint64) string {
	return FormatWords([]uint64{v}, false)
}

// FormatInt128 returns the decimal representation of the signed 128-bit
// integer hi<<64 | lo.
func FormatInt128(hi int64, lo uint64) string {
	return FormatWords([]uint64{lo, uint64(hi)}, true)
}

// FormatUint128 returns the decimal representation of hi<<64 | lo.
func FormatUint128(hi, lo uint64) string {
	return FormatWords([]uint64{lo, hi}, false)
}
