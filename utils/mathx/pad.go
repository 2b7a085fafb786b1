// File: pad.go
// Title: Zero-Padded Integer Appending
// Description: Appends integers as fixed-width decimal text for the codecs.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package mathx

// AppendPadded appends v in decimal, left-padded with zeros to width
// digits. Wider values are written in full; negative values get a leading
// '-' before the padded magnitude.
func AppendPadded(dst []byte, v int64, width int) []byte {
	mag := uint64(v)
	if v < 0 {
		dst = append(dst, '-')
		mag = -mag
	}

	var buf [20]byte
	pos := len(buf)
	for {
		pos--
		buf[pos] = '0' + byte(mag%10)
		mag /= 10
		if mag == 0 {
			break
		}
	}
	for n := len(buf) - pos; n < width; n++ {
		dst = append(dst, '0')
	}
	return append(dst, buf[pos:]...)
}
