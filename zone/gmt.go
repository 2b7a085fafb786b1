// File: gmt.go
// Title: GMT Offset Names
// Description: Parser and formatter for "GMT+HH:MM" style zone names.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package zone

// ParseGMTName parses GMT or UTC optionally followed by a signed offset of
// one or two hour digits and an optional two-digit minute part, separated by
// ':' or '.' or written directly after two hour digits. Accepted shapes:
//
//	GMT  GMT+1  GMT+01  GMT+1:30  GMT+1.30  GMT+0130  GMT+01:30
//
// The hour is at most 18, and 18 only with zero minutes. It returns the
// offset in seconds, or false for any other input.
func ParseGMTName(s string) (int, bool) {
	if len(s) < 3 || (s[:3] != "GMT" && s[:3] != "UTC") {
		return 0, false
	}
	if len(s) == 3 {
		return 0, true
	}
	if len(s) < 5 {
		return 0, false
	}

	sign := 1
	switch s[3] {
	case '+':
	case '-':
		sign = -1
	default:
		return 0, false
	}

	var hours, minutes int
	var ok bool
	rest := s[4:]
	switch len(rest) {
	case 1:
		hours, ok = digits(rest)
	case 2:
		hours, ok = digits(rest)
	case 4:
		if rest[1] == ':' || rest[1] == '.' {
			hours, ok = digits(rest[:1])
			if ok {
				minutes, ok = digits(rest[2:])
			}
		} else {
			hours, ok = digits(rest[:2])
			if ok {
				minutes, ok = digits(rest[2:])
			}
		}
	case 5:
		if rest[2] != ':' && rest[2] != '.' {
			return 0, false
		}
		hours, ok = digits(rest[:2])
		if ok {
			minutes, ok = digits(rest[3:])
		}
	}
	if !ok || hours > 18 || minutes > 59 || (hours == 18 && minutes != 0) {
		return 0, false
	}
	return sign * (hours*3600 + minutes*60), true
}

func digits(s string) (int, bool) {
	v := 0
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
		v = v*10 + int(s[i]-'0')
	}
	return v, len(s) > 0
}

// FormatGMTName returns "GMT" for a zero offset and "GMT±HHMM" otherwise,
// with two trailing second digits when the offset is not in whole minutes.
func FormatGMTName(seconds int) string {
	if seconds == 0 {
		return "GMT"
	}
	buf := make([]byte, 0, 10)
	buf = append(buf, "GMT"...)
	if seconds < 0 {
		buf = append(buf, '-')
		seconds = -seconds
	} else {
		buf = append(buf, '+')
	}
	buf = appendTwo(buf, seconds/3600)
	buf = appendTwo(buf, seconds/60%60)
	if s := seconds % 60; s != 0 {
		buf = appendTwo(buf, s)
	}
	return string(buf)
}

func appendTwo(buf []byte, v int) []byte {
	return append(buf, byte('0'+v/10%10), byte('0'+v%10))
}
