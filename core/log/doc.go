// File: doc.go
// Title: Package Documentation for log
// Description: Structured logging for the chrono packages and tools.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-18 v0.2.0: Pluggable timestamp rendering, dropped request metadata
//
// Features:
// - Structured logging with JSON, text, console and logfmt output
// - Level filtering
// - Immutable With* derivation of named loggers
// - Error logging that maps error severity to log level
// - Timers for load and warm-up measurements
//
// Usage:
//   import "github.com/msto63/chrono/core/log"
//
//   logger := log.NewWithConfig(log.Config{
//     Level:     log.LevelDebug,
//     Format:    log.FormatLogfmt,
//     Timestamp: iso8601.New().Time(true).FormatTime,
//   }).WithName("zone")
//
//   logger.Debug("Loaded time zone", log.String("identifier", "Europe/Berlin"))
//   logger.LogError(err)

// Package log provides structured logging.
package log
