// File: format.go
// Title: ISO 8601 Formatting
// Description: Writes component records and instants in a Style.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package iso8601

import (
	"time"

	"github.com/msto63/chrono/calendar"
	"github.com/msto63/chrono/utils/mathx"
)

// Format returns c in this style. Absent units take their calendar
// defaults. The offset is taken from c.Zone, or from the style's zone when
// c carries none.
func (s Style) Format(c calendar.Components) string {
	return s.formatter().format(c)
}

// AppendFormat appends the formatted c to dst.
func (s Style) AppendFormat(dst []byte, c calendar.Components) []byte {
	return s.formatter().append(dst, c)
}

// FormatTime returns t in this style, converted to the style's zone. The
// offset is the one in effect at t, so both instants of a repeated
// wall-clock hour keep their own offsets.
func (s Style) FormatTime(t time.Time) string {
	z := s.Zone()
	c := calendar.Gregorian.Components(calendar.AllUnits, t, z)
	f := s.formatter()
	return string(f.appendAt(make([]byte, 0, 32), c, z.SecondsFromGMT(t)))
}

func (f *formatter) format(c calendar.Components) string {
	return string(f.append(make([]byte, 0, 32), c))
}

func (f *formatter) append(dst []byte, c calendar.Components) []byte {
	offset := 0
	for _, st := range f.steps {
		if st.kind == stepZone {
			offset = f.offset(c)
			break
		}
	}
	return f.appendAt(dst, c, offset)
}

// appendAt writes c with a known zone offset.
func (f *formatter) appendAt(dst []byte, c calendar.Components, offset int) []byte {
	for _, st := range f.steps {
		switch st.kind {
		case stepLiteral:
			dst = append(dst, st.text...)
		case stepNumber:
			v := c.ValueOrDefault(st.unit)
			if st.unit == calendar.YearForWeekOfYear && !c.Has(st.unit) && c.Has(calendar.Year) {
				v = c.ValueOrDefault(calendar.Year)
			}
			dst = mathx.AppendPadded(dst, int64(v), st.width)
		case stepWeekday:
			dst = mathx.AppendPadded(dst, int64(isoWeekday(c.ValueOrDefault(calendar.Weekday))), 1)
		case stepFraction:
			if f.style.fractional {
				dst = append(dst, '.')
				dst = mathx.AppendPadded(dst, int64(c.ValueOrDefault(calendar.Nanosecond)/int(time.Millisecond)), 3)
			}
		case stepZone:
			dst = appendOffset(dst, offset, f.style.timeZoneSeparator)
		}
	}
	return dst
}

// offset returns the zone offset in effect at the instant c describes. A
// wall time repeated by a backward transition is ambiguous; time.Date
// picks one of its offsets.
func (f *formatter) offset(c calendar.Components) int {
	z := c.Zone
	if z == nil {
		z = f.style.Zone()
		c.Zone = z
	}
	t, ok := calendar.Gregorian.Date(c)
	if !ok {
		t = time.Unix(0, 0)
	}
	return z.SecondsFromGMT(t)
}

// isoWeekday converts Sunday=1 numbering to Monday=1.
func isoWeekday(weekday int) int {
	return ((weekday+5)%7+7)%7 + 1
}

// calendarWeekday converts Monday=1 numbering back to Sunday=1.
func calendarWeekday(iso int) int {
	return iso%7 + 1
}

func appendOffset(dst []byte, seconds int, sep TimeZoneSeparator) []byte {
	if seconds == 0 {
		return append(dst, 'Z')
	}
	if seconds < 0 {
		dst = append(dst, '-')
		seconds = -seconds
	} else {
		dst = append(dst, '+')
	}
	dst = mathx.AppendPadded(dst, int64(seconds/3600), 2)
	if sep == TimeZoneSeparatorColon {
		dst = append(dst, ':')
	}
	dst = mathx.AppendPadded(dst, int64(seconds/60%60), 2)
	if rest := seconds % 60; rest != 0 {
		if sep == TimeZoneSeparatorColon {
			dst = append(dst, ':')
		}
		dst = mathx.AppendPadded(dst, int64(rest), 2)
	}
	return dst
}
