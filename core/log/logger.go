// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger type: structured logging with named,
//              immutable derived loggers and error severity mapping.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-18 v0.2.0: Removed async mode and request metadata, added
//                       timestamp functions

package log

import (
	"errors"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"

	chronoerr "github.com/msto63/chrono/core/error"
)

// Logger represents a structured logger with contextual information
type Logger struct {
	level     Level
	format    Format
	timestamp TimestampFunc
	formatter Formatter
	output    io.Writer
	name      string

	contextFields Fields

	enableCaller     bool
	callerSkipFrames int

	mutex sync.RWMutex
	// writes to output are serialized across derived loggers
	writeMu *sync.Mutex
}

// Config represents logger configuration
type Config struct {
	Level            Level
	Format           Format
	Output           io.Writer
	Name             string
	Timestamp        TimestampFunc
	EnableCaller     bool
	CallerSkipFrames int
}

// New creates a text logger writing warnings and above to stderr
func New() *Logger {
	return NewWithConfig(Config{
		Level:  DefaultLevel(),
		Format: FormatText,
		Output: os.Stderr,
	})
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	l := &Logger{
		level:            config.Level,
		format:           config.Format,
		timestamp:        config.Timestamp,
		output:           config.Output,
		name:             config.Name,
		contextFields:    make(Fields),
		enableCaller:     config.EnableCaller,
		callerSkipFrames: config.CallerSkipFrames,
		writeMu:          &sync.Mutex{},
	}
	if l.output == nil {
		l.output = os.Stderr
	}
	l.formatter = GetFormatter(l.format, l.timestamp)
	return l
}

// WithLevel returns a copy logging at level and above
func (l *Logger) WithLevel(level Level) *Logger {
	clone := l.clone()
	clone.level = level
	return clone
}

// WithFormat returns a copy using format
func (l *Logger) WithFormat(format Format) *Logger {
	clone := l.clone()
	clone.format = format
	clone.formatter = GetFormatter(format, clone.timestamp)
	return clone
}

// WithTimestamp returns a copy rendering timestamps with fn
func (l *Logger) WithTimestamp(fn TimestampFunc) *Logger {
	clone := l.clone()
	clone.timestamp = fn
	clone.formatter = GetFormatter(clone.format, fn)
	return clone
}

// WithOutput returns a copy writing to output
func (l *Logger) WithOutput(output io.Writer) *Logger {
	clone := l.clone()
	clone.output = output
	clone.writeMu = &sync.Mutex{}
	return clone
}

// WithName returns a copy with the given logger name
func (l *Logger) WithName(name string) *Logger {
	clone := l.clone()
	clone.name = name
	return clone
}

// WithField returns a copy adding a field to all entries
func (l *Logger) WithField(key string, value interface{}) *Logger {
	clone := l.clone()
	clone.contextFields[key] = value
	return clone
}

// WithFields returns a copy adding fields to all entries
func (l *Logger) WithFields(fields Fields) *Logger {
	clone := l.clone()
	for k, v := range fields {
		clone.contextFields[k] = v
	}
	return clone
}

// WithCaller returns a copy recording the calling function
func (l *Logger) WithCaller(skip int) *Logger {
	clone := l.clone()
	clone.enableCaller = true
	clone.callerSkipFrames = skip
	return clone
}

// Trace logs a trace level message
func (l *Logger) Trace(message string, fields ...Fields) { l.log(LevelTrace, message, nil, fields...) }

// Debug logs a debug level message
func (l *Logger) Debug(message string, fields ...Fields) { l.log(LevelDebug, message, nil, fields...) }

// Info logs an info level message
func (l *Logger) Info(message string, fields ...Fields) { l.log(LevelInfo, message, nil, fields...) }

// Warn logs a warning level message
func (l *Logger) Warn(message string, fields ...Fields) { l.log(LevelWarn, message, nil, fields...) }

// Error logs an error level message
func (l *Logger) Error(message string, fields ...Fields) { l.log(LevelError, message, nil, fields...) }

// Fatal logs a fatal level message and exits the program
func (l *Logger) Fatal(message string, fields ...Fields) {
	l.log(LevelFatal, message, nil, fields...)
	os.Exit(1)
}

// ErrorWithErr logs an error with an error object
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields...)
}

// WarnWithErr logs a warning with an error object
func (l *Logger) WarnWithErr(message string, err error, fields ...Fields) {
	l.log(LevelWarn, message, err, fields...)
}

// LogError logs err at a level derived from its severity. Parse failures
// include the input, offset and expected example.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	fields := Fields{"error_code": chronoerr.GetCode(err).String()}
	level := LevelError
	var e *chronoerr.Error
	if errors.As(err, &e) {
		fields["error_severity"] = e.Severity().String()
		if op := e.Operation(); op != "" {
			fields["error_operation"] = op
		}
		for k, v := range e.Details() {
			fields["error_"+k] = v
		}
		if e.Offset() >= 0 {
			fields["input"] = e.Input()
			fields["offset"] = e.Offset()
			fields["example"] = e.Example()
		}
		switch e.Severity() {
		case chronoerr.SeverityLow:
			level = LevelInfo
		case chronoerr.SeverityMedium:
			level = LevelWarn
		}
	}
	l.log(level, err.Error(), err, fields)
}

// StartTimer creates and starts a new performance timer
func (l *Logger) StartTimer(operation string) *Timer {
	return NewTimer(l, operation)
}

// IsLevelEnabled returns true if the given level is enabled
func (l *Logger) IsLevelEnabled(level Level) bool {
	return level.ShouldLog(l.GetLevel())
}

// GetLevel returns the current log level
func (l *Logger) GetLevel() Level {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.level
}

// SetLevel changes the log level in place
func (l *Logger) SetLevel(level Level) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.level = level
}

// log is the internal logging method
func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	if !l.IsLevelEnabled(level) {
		return
	}
	entry := NewEntry(level, message)
	entry.Error = err
	if l.enableCaller {
		if function, file, line, ok := l.getCaller(); ok {
			entry.WithCaller(function, file, line)
		}
	}
	l.write(entry, fields...)
}

// write adds context fields to entry and writes it
func (l *Logger) write(entry *Entry, fields ...Fields) {
	if !l.IsLevelEnabled(entry.Level) {
		return
	}

	l.mutex.RLock()
	entry.Logger = l.name
	for k, v := range l.contextFields {
		entry.Fields[k] = v
	}
	formatter, output, writeMu := l.formatter, l.output, l.writeMu
	l.mutex.RUnlock()

	for _, set := range fields {
		for k, v := range set {
			entry.Fields[k] = v
		}
	}

	formatted, err := formatter.Format(entry)
	if err != nil {
		return
	}
	writeMu.Lock()
	output.Write(formatted)
	writeMu.Unlock()
}

// getCaller returns caller information
func (l *Logger) getCaller() (function, file string, line int, ok bool) {
	// getCaller, log, public method, user code
	pc, file, line, ok := runtime.Caller(3 + l.callerSkipFrames)
	if !ok {
		return "", "", 0, false
	}
	function = "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		function = fn.Name()
		if idx := strings.LastIndex(function, "."); idx != -1 {
			function = function[idx+1:]
		}
	}
	if idx := strings.LastIndex(file, "/"); idx != -1 {
		file = file[idx+1:]
	}
	return function, file, line, true
}

// clone creates a copy of the logger for immutable operations
func (l *Logger) clone() *Logger {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return &Logger{
		level:            l.level,
		format:           l.format,
		timestamp:        l.timestamp,
		formatter:        l.formatter,
		output:           l.output,
		name:             l.name,
		contextFields:    l.contextFields.Merge(nil),
		enableCaller:     l.enableCaller,
		callerSkipFrames: l.callerSkipFrames,
		writeMu:          l.writeMu,
	}
}

var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(New())
}

// GetDefault returns the default logger instance
func GetDefault() *Logger {
	return defaultLogger.Load()
}

// SetDefault sets the default logger instance
func SetDefault(logger *Logger) {
	if logger != nil {
		defaultLogger.Store(logger)
	}
}

// Debug logs a debug message using the default logger
func Debug(message string, fields ...Fields) { GetDefault().Debug(message, fields...) }

// Info logs an info message using the default logger
func Info(message string, fields ...Fields) { GetDefault().Info(message, fields...) }

// Warn logs a warning message using the default logger
func Warn(message string, fields ...Fields) { GetDefault().Warn(message, fields...) }

// Error logs an error message using the default logger
func Error(message string, fields ...Fields) { GetDefault().Error(message, fields...) }
