// File: logger_test.go
// Title: Logger Tests
// Description: Tests for level filtering, formatting and error logging.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-18 v0.2.0: Rewritten for timestamp functions and parse errors

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	chronoerr "github.com/msto63/chrono/core/error"
)

var fixedStamp = TimestampFunc(func(time.Time) string { return "T" })

func newTestLogger(format Format, level Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewWithConfig(Config{Level: level, Format: format, Output: &buf, Timestamp: fixedStamp}), &buf
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newTestLogger(FormatText, LevelWarn)
	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")
	logger.Error("shown too")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), buf.String())
	}
	if !logger.IsLevelEnabled(LevelError) || logger.IsLevelEnabled(LevelInfo) {
		t.Error("IsLevelEnabled() mismatch")
	}
}

func TestTextFormat(t *testing.T) {
	logger, buf := newTestLogger(FormatText, LevelDebug)
	logger.WithName("zone").Debug("Loaded time zone", String("identifier", "Europe/Berlin"), Int("n", 2))

	want := "T [DBG] {zone} Loaded time zone [identifier=Europe/Berlin n=2]\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestLogfmtFormat(t *testing.T) {
	logger, buf := newTestLogger(FormatLogfmt, LevelInfo)
	logger.WithField("b", 1).Info("hello", String("a", "x y"))

	want := `timestamp=T level=info message="hello" a="x y" b=1` + "\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestJSONFormat(t *testing.T) {
	logger, buf := newTestLogger(FormatJSON, LevelInfo)
	logger.ErrorWithErr("failed", errors.New("boom"), Field("k", "v"))

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	for key, want := range map[string]string{"timestamp": "T", "level": "error", "message": "failed", "error": "boom", "k": "v"} {
		if data[key] != want {
			t.Errorf("%s = %v, want %q", key, data[key], want)
		}
	}
}

func TestDefaultTimestamp(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelInfo, Format: FormatLogfmt, Output: &buf})
	logger.Info("x")
	if !strings.HasPrefix(buf.String(), "timestamp=") || !strings.Contains(buf.String(), "Z level=") {
		t.Errorf("output = %q, want an RFC 3339 UTC timestamp", buf.String())
	}

	buf.Reset()
	logger.WithTimestamp(fixedStamp).Info("x")
	if !strings.HasPrefix(buf.String(), "timestamp=T ") {
		t.Errorf("WithTimestamp() output = %q", buf.String())
	}
}

func TestLogErrorParseFailure(t *testing.T) {
	logger, buf := newTestLogger(FormatLogfmt, LevelTrace)
	err := chronoerr.ParseFailure(chronoerr.CodeMalformedInput, "missing GMT", "Sun, 06 Nov 1994 08:49:37", 25, "Sun, 06 Nov 1994 08:49:37 GMT")
	logger.LogError(err)

	out := buf.String()
	for _, want := range []string{"level=info", "error_code=\"MALFORMED_INPUT\"", "offset=25", "example=\"Sun, 06 Nov 1994 08:49:37 GMT\""} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %s", out, want)
		}
	}

	buf.Reset()
	logger.LogError(errors.New("plain"))
	if !strings.Contains(buf.String(), "level=error") {
		t.Errorf("plain error output = %q", buf.String())
	}
	logger.LogError(nil)
}

func TestDerivedLoggersAreIndependent(t *testing.T) {
	base, buf := newTestLogger(FormatText, LevelInfo)
	child := base.WithField("child", true).WithLevel(LevelError)

	base.Info("base")
	child.Info("dropped")
	if strings.Contains(buf.String(), "child") || strings.Contains(buf.String(), "dropped") {
		t.Errorf("derived logger leaked into base: %q", buf.String())
	}
	if base.GetLevel() != LevelInfo {
		t.Errorf("base level changed to %v", base.GetLevel())
	}
}

func TestTimer(t *testing.T) {
	logger, buf := newTestLogger(FormatLogfmt, LevelDebug)
	timer := logger.StartTimer("load").WithField("locale", "de")
	if d := timer.Stop(); d < 0 {
		t.Errorf("Stop() = %v", d)
	}
	if timer.Stop() != 0 {
		t.Error("second Stop() should return 0")
	}
	out := buf.String()
	if strings.Count(out, "\n") != 1 || !strings.Contains(out, `message="load completed"`) || !strings.Contains(out, `operation="load"`) {
		t.Errorf("output = %q", out)
	}

	buf.Reset()
	logger.StartTimer("load").StopWithError(errors.New("missing"))
	if !strings.Contains(buf.String(), "level=error") {
		t.Errorf("StopWithError() output = %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{"trace": LevelTrace, "DBG": LevelDebug, " info ": LevelInfo, "warning": LevelWarn, "err": LevelError, "fatal": LevelFatal}
	for in, want := range tests {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v, want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("ParseLevel(loud) should fail")
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
	if Level(42).String() != "unknown" {
		t.Error("unknown level String()")
	}
}
