// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels used to map errors onto log levels.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-18 v0.2.0: Severity mapping for codec codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow covers rejected input: the caller can report it or try again
	SeverityLow Severity = iota

	// SeverityMedium covers degraded results such as a missing locale pattern
	SeverityMedium

	// SeverityHigh covers configuration problems that stop startup
	SeverityHigh

	// SeverityCritical covers broken internal invariants
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return SeverityHigh
	case CodeLocaleUnavailable, CodePatternMissing, CodeUnknownZone:
		return SeverityMedium
	case CodeInvalidInput, CodeNotFound, CodeMalformedInput,
		CodeValueOutOfRange, CodeUnsupportedCombination:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
