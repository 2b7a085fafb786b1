// File: style.go
// Title: ISO 8601 Style
// Description: The immutable format configuration and its fluent builder.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package iso8601

import (
	"github.com/msto63/chrono/zone"
)

// DateSeparator separates year, month, week and day.
type DateSeparator uint8

const (
	DateSeparatorDash DateSeparator = iota
	DateSeparatorOmitted
)

// TimeSeparator separates hour, minute and second.
type TimeSeparator uint8

const (
	TimeSeparatorColon TimeSeparator = iota
	TimeSeparatorOmitted
)

// DateTimeSeparator separates the date from the time.
type DateTimeSeparator uint8

const (
	DateTimeSeparatorStandard DateTimeSeparator = iota // 'T'
	DateTimeSeparatorSpace
)

// TimeZoneSeparator separates offset hours, minutes and seconds.
type TimeZoneSeparator uint8

const (
	TimeZoneSeparatorOmitted TimeZoneSeparator = iota
	TimeZoneSeparatorColon
)

// Field is one logical part of an ISO 8601 string.
type Field uint8

const (
	FieldYear Field = 1 << iota
	FieldMonth
	FieldWeekOfYear
	FieldDay
	FieldTime
	FieldTimeZone
)

// defaultFields is used while no field was selected explicitly.
const defaultFields = FieldYear | FieldMonth | FieldDay | FieldTime | FieldTimeZone

// Style describes an ISO 8601 representation. Styles are comparable values
// and safe to share; every builder method returns a modified copy.
//
// With FieldWeekOfYear the year is the week-based year and the day is the
// day of the week (1 = Monday ... 7 = Sunday) rather than the day of month.
// Without month and week the day is the day of the year.
type Style struct {
	fields            Field
	dateSeparator     DateSeparator
	timeSeparator     TimeSeparator
	dateTimeSeparator DateTimeSeparator
	timeZoneSeparator TimeZoneSeparator
	fractional        bool
	zone              zone.Zone
}

// Default is the style "2015-11-14T15:05:03Z".
var Default = New()

// New returns the default style: dashed date, colon-separated time, 'T'
// between them and the zone offset without separator, formatted in GMT.
func New() Style {
	return Style{}
}

func (s Style) with(f Field) Style {
	s.fields |= f
	return s
}

// Year adds the year.
func (s Style) Year() Style { return s.with(FieldYear) }

// Month adds the month.
func (s Style) Month() Style { return s.with(FieldMonth) }

// WeekOfYear adds the ISO week, written as "W46".
func (s Style) WeekOfYear() Style { return s.with(FieldWeekOfYear) }

// Day adds the day.
func (s Style) Day() Style { return s.with(FieldDay) }

// Time adds hour, minute and second, with milliseconds when fractional is
// true.
func (s Style) Time(fractional bool) Style {
	s = s.with(FieldTime)
	s.fractional = fractional
	return s
}

// TimeZone adds the zone offset.
func (s Style) TimeZone(sep TimeZoneSeparator) Style {
	s = s.with(FieldTimeZone)
	s.timeZoneSeparator = sep
	return s
}

// DateSeparator sets the date separator.
func (s Style) DateSeparator(sep DateSeparator) Style {
	s.dateSeparator = sep
	return s
}

// TimeSeparator sets the time separator.
func (s Style) TimeSeparator(sep TimeSeparator) Style {
	s.timeSeparator = sep
	return s
}

// DateTimeSeparator sets the separator between date and time.
func (s Style) DateTimeSeparator(sep DateTimeSeparator) Style {
	s.dateTimeSeparator = sep
	return s
}

// FractionalSeconds toggles milliseconds without changing the field set.
func (s Style) FractionalSeconds(on bool) Style {
	s.fractional = on
	return s
}

// In sets the zone used for formatting instants and for parsed strings that
// carry no zone. A nil zone means GMT.
func (s Style) In(z zone.Zone) Style {
	s.zone = z
	return s
}

// Fields returns the selected fields.
func (s Style) Fields() Field {
	if s.fields == 0 {
		return defaultFields
	}
	return s.fields
}

// Has reports whether f is selected.
func (s Style) Has(f Field) bool { return s.Fields()&f != 0 }

// Zone returns the formatting zone.
func (s Style) Zone() zone.Zone {
	if s.zone == nil {
		return zone.GMT
	}
	return s.zone
}

// IncludesFractionalSeconds reports whether milliseconds are written.
func (s Style) IncludesFractionalSeconds() bool { return s.fractional }
