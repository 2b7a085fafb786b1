// File: doc.go
// Title: Package Documentation for iso8601
// Description: Configurable ISO 8601 formatting and parsing.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

// Package iso8601 formats and parses ISO 8601 date and time strings whose
// shape is described by a Style.
//
//	s := iso8601.New().Year().WeekOfYear().Day()
//	s.FormatTime(t)              // "2015-W46-6"
//	iso8601.Default.FormatTime(t) // "2015-11-14T15:05:03Z"
//
// A Style is compiled once into a plan of steps that both directions walk
// in the same order. Compiled plans live in a bounded cache keyed by the
// Style value.
//
// Parsing accepts a few things the formatter never writes: lower-case 'z',
// 't' and 'w', fractional seconds after '.' or ',' whatever the style says,
// "GMT"/"UTC" before an offset, and offsets that stop after the hour or the
// minute.
package iso8601
