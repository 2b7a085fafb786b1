// File: doc.go
// Title: Package Documentation for calendar
// Description: Component records and the Gregorian calendar used to
//              materialize them.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

// Package calendar holds partial date/time field sets and turns them into
// points in time.
//
// A Components value records any subset of the calendar units (year, month,
// week of year, weekday and so on) plus an optional zone. Codecs build one
// per call. Absent units are filled from a single default table when a
// Calendar materializes the record:
//
//	var c calendar.Components
//	c.Set(calendar.Year, 1994)
//	c.Set(calendar.Month, 11)
//	c.Set(calendar.Day, 6)
//	t, ok := calendar.Gregorian.Date(c) // 1994-11-06 00:00:00 UTC
//
// Weekdays are numbered 1 (Sunday) through 7 (Saturday). Week numbering
// follows ISO 8601: weeks start on Monday and week 1 contains January 4th.
package calendar
