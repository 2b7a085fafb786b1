// File: codes.go
// Title: Error Code Definitions
// Description: Error codes for the codec, zone and configuration layers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-18 v0.2.0: Replaced service codes with codec taxonomy

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Text codecs
	CodeMalformedInput         Code = "MALFORMED_INPUT"
	CodeValueOutOfRange        Code = "VALUE_OUT_OF_RANGE"
	CodeUnsupportedCombination Code = "UNSUPPORTED_COMBINATION"

	// Time zones and locales
	CodeUnknownZone       Code = "UNKNOWN_ZONE"
	CodeLocaleUnavailable Code = "LOCALE_UNAVAILABLE"
	CodePatternMissing    Code = "PATTERN_MISSING"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeMalformedInput, CodeValueOutOfRange, CodeUnsupportedCombination,
		CodeUnknownZone, CodeLocaleUnavailable, CodePatternMissing,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeMalformedInput, CodeValueOutOfRange, CodeUnsupportedCombination:
		return "parse"
	case CodeUnknownZone:
		return "zone"
	case CodeLocaleUnavailable, CodePatternMissing:
		return "locale"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// Recoverable reports whether a caller may retry with another grammar or input.
func (c Code) Recoverable() bool {
	return c != CodeInternal
}
