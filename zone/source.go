// File: source.go
// Title: System Time Zone Source
// Description: Reads the identifier of the host's current time zone.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package zone

import (
	"os"
	"strings"
)

// Source reports the identifier of the host's current zone.
type Source interface {
	CurrentIdentifier() string
}

// SourceFunc adapts a function to Source.
type SourceFunc func() string

// CurrentIdentifier calls f.
func (f SourceFunc) CurrentIdentifier() string { return f() }

// DefaultLocaltimePath is the symlink consulted when TZ is unset.
const DefaultLocaltimePath = "/etc/localtime"

// SystemSource reads TZ, then the target of the localtime symlink, and
// falls back to GMT.
type SystemSource struct {
	Getenv        func(string) string
	Readlink      func(string) (string, error)
	LocaltimePath string
}

// NewSystemSource returns a source reading the process environment and
// DefaultLocaltimePath.
func NewSystemSource() *SystemSource {
	return &SystemSource{
		Getenv:        os.Getenv,
		Readlink:      os.Readlink,
		LocaltimePath: DefaultLocaltimePath,
	}
}

// CurrentIdentifier implements Source.
func (s *SystemSource) CurrentIdentifier() string {
	if tz := strings.TrimPrefix(s.Getenv("TZ"), ":"); tz != "" {
		return tz
	}
	if target, err := s.Readlink(s.LocaltimePath); err == nil {
		if i := strings.LastIndex(target, "zoneinfo/"); i >= 0 {
			return target[i+len("zoneinfo/"):]
		}
	}
	return "GMT"
}
