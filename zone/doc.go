// File: doc.go
// Title: Package Documentation for zone
// Description: Time zone values, the GMT name grammar and the caching
//              resolver.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

// Package zone resolves time zone identifiers and offsets to shared Zone
// values.
//
// Zones come in three kinds: fixed offsets (Fixed, GMT), named zones loaded
// through time.LoadLocation, and the autoupdating zone, which reads the
// resolver's current zone on every call.
//
// A Resolver caches named zones forever and fixed offsets when they are a
// multiple of 30 minutes. Zone construction runs outside the cache lock, so
// concurrent lookups of different identifiers do not wait on each other:
//
//	r := zone.NewResolver()
//	berlin, err := r.Named("Europe/Berlin")
//	plusOne, err := r.Named("GMT+01:00") // same as r.Offset(3600)
//
// The current zone is read from a Source (TZ, then /etc/localtime) and
// recomputed whenever a ChangeCounter moves. Watcher is a ChangeCounter
// driven by fsnotify events on the localtime file.
package zone
