// File: validation.go
// Title: Configuration Validation Implementation
// Description: Validates typed settings: enumerations, ranges and zone
//              identifiers, collecting every problem before reporting.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of validation
// - 2026-10-18 v0.2.0: Rule maps replaced by typed settings checks

package config

import (
	"fmt"
	"strings"

	chronoerr "github.com/msto63/chrono/core/error"
	"github.com/msto63/chrono/zone"
)

// maxFractionDigits matches the nanosecond resolution of durations.
const maxFractionDigits = 9

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

func (r *ValidationResult) add(err error) {
	if err == nil {
		return
	}
	r.Valid = false
	r.Errors = append(r.Errors, err.Error())
}

func (r *ValidationResult) addf(format string, args ...interface{}) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Check validates all sections. Zones are resolved with r, or the default
// resolver when r is nil.
func (s Settings) Check(r *zone.Resolver) *ValidationResult {
	if r == nil {
		r = zone.DefaultResolver()
	}
	result := &ValidationResult{Valid: true}

	if strings.TrimSpace(s.Locale.Default) == "" {
		result.addf("locale.default must not be empty")
	}

	if s.Zone.Default != "" {
		if _, err := r.Named(s.Zone.Default); err != nil {
			result.addf("zone.default: unknown zone %q", s.Zone.Default)
		}
	}
	for _, id := range s.Zone.Preload {
		if _, err := r.Named(id); err != nil {
			result.addf("zone.preload: unknown zone %q", id)
		}
	}

	_, err := s.ISO8601Style(r)
	result.add(err)

	_, err = s.DurationPolicy()
	result.add(err)
	_, err = s.DurationWidth()
	result.add(err)
	if s.Duration.MaxUnits < 0 {
		result.addf("duration.max_units must not be negative, got %d", s.Duration.MaxUnits)
	}
	if s.Duration.FractionDigits < 0 || s.Duration.FractionDigits > maxFractionDigits {
		result.addf("duration.fraction_digits must be between 0 and %d, got %d", maxFractionDigits, s.Duration.FractionDigits)
	}
	if s.Duration.Increment < 0 {
		result.addf("duration.increment must not be negative, got %g", s.Duration.Increment)
	}

	if s.Cache.FormatterLimit < 0 {
		result.addf("cache.formatter_limit must not be negative, got %d", s.Cache.FormatterLimit)
	}

	_, err = s.Logger()
	result.add(err)

	return result
}

// Err reports the problems as a single CodeInvalidConfig error carrying
// them in the "errors" detail, or nil when valid.
func (r *ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return chronoerr.New(fmt.Sprintf("invalid configuration: %s", strings.Join(r.Errors, "; "))).
		WithCode(chronoerr.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("errors", r.Errors)
}

// Validate checks the settings with the default resolver.
func (s Settings) Validate() error {
	return s.Check(nil).Err()
}
