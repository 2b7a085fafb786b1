// File: i18n_test.go
// Title: Locale Pattern Manager Tests
// Description: Tests for catalog loading, overlays, locale matching, plural
//              selection, number formatting and file watching.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation
// - 2026-10-18 v0.2.0: Rewritten for pattern catalogs

package i18n

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de"

	chronoerr "github.com/msto63/chrono/core/error"
	"github.com/msto63/chrono/core/log"
)

func newManager(t *testing.T, options Options) *Manager {
	t.Helper()
	m, err := New(options)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return m
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func TestNew(t *testing.T) {
	t.Run("built-in catalogs", func(t *testing.T) {
		m := newManager(t, Options{})
		if m.DefaultLocale() != "en" {
			t.Errorf("Expected default locale 'en', got '%s'", m.DefaultLocale())
		}
		want := []string{"de", "en", "fr"}
		if got := m.AvailableLocales(); !reflect.DeepEqual(got, want) {
			t.Errorf("AvailableLocales() = %v, want %v", got, want)
		}
	})

	t.Run("nonexistent locales directory", func(t *testing.T) {
		_, err := New(Options{LocalesDir: "/nonexistent/directory"})
		if !chronoerr.HasCode(err, chronoerr.CodeNotFound) {
			t.Errorf("Expected CodeNotFound, got %v", err)
		}
	})

	t.Run("unknown default locale", func(t *testing.T) {
		_, err := New(Options{DefaultLocale: "xx"})
		if !chronoerr.HasCode(err, chronoerr.CodeLocaleUnavailable) {
			t.Errorf("Expected CodeLocaleUnavailable, got %v", err)
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "en.toml"), "[time\nhms = ")
		_, err := New(Options{LocalesDir: dir})
		if !chronoerr.HasCode(err, chronoerr.CodeConfigError) {
			t.Errorf("Expected CodeConfigError, got %v", err)
		}
	})
}

func TestLookup(t *testing.T) {
	m := newManager(t, Options{})

	tests := []struct {
		locale string
		key    string
		want   string
	}{
		{"en", "unit.wide.hours.one", "{0} hour"},
		{"en", "list.wide.end", "{0}, and {1}"},
		{"de", "list.wide.pair", "{0} und {1}"},
		{"de-AT", "unit.wide.days.other", "{0} Tage"},
		{"fr", "time.hms", "h:mm:ss"},
		{"fr", "unit.abbreviated.hours.other", "{0} h"},
		{"ja", "unit.narrow.minutes.other", "{0}m"},
	}
	for _, tt := range tests {
		t.Run(tt.locale+"/"+tt.key, func(t *testing.T) {
			got, err := m.Lookup(tt.locale, tt.key)
			if err != nil {
				t.Fatalf("Lookup() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Lookup() = %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("missing key", func(t *testing.T) {
		_, err := m.Lookup("en", "unit.wide.fortnights.one")
		if chronoerr.GetCode(err) != chronoerr.CodePatternMissing {
			t.Errorf("Expected CodePatternMissing, got %v", err)
		}
	})

	t.Run("table is not a value", func(t *testing.T) {
		if _, err := m.Lookup("en", "unit.wide"); err == nil {
			t.Error("Expected error for a table key")
		}
	})
}

func TestOverlay(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "en.toml"), "[list.wide]\nend = \"{0} & {1}\"\n")
	writeFile(t, filepath.Join(dir, "es.yaml"), "time:\n  hms: \"H:mm:ss\"\n")

	t.Run("auto format", func(t *testing.T) {
		m := newManager(t, Options{LocalesDir: dir})

		if got, _ := m.Lookup("en", "list.wide.end"); got != "{0} & {1}" {
			t.Errorf("overridden pattern = %q", got)
		}
		if got, _ := m.Lookup("en", "list.wide.pair"); got != "{0} and {1}" {
			t.Errorf("built-in sibling = %q, want it kept", got)
		}
		if got, _ := m.Lookup("es", "time.hms"); got != "H:mm:ss" {
			t.Errorf("new locale pattern = %q", got)
		}
		if got, _ := m.Lookup("es", "unit.wide.days.one"); got != "{0} day" {
			t.Errorf("fallback to default = %q", got)
		}
	})

	t.Run("toml only", func(t *testing.T) {
		m := newManager(t, Options{LocalesDir: dir, Format: FormatTOML})
		if m.HasLocale("es") {
			t.Error("Expected YAML file to be ignored")
		}
	})

	t.Run("no fallback", func(t *testing.T) {
		m := newManager(t, Options{LocalesDir: dir, NoFallback: true})
		if _, err := m.Lookup("es", "unit.wide.days.one"); err == nil {
			t.Error("Expected missing pattern without fallback")
		}
	})
}

func TestResolve(t *testing.T) {
	m := newManager(t, Options{})

	tests := map[string]string{
		"de-CH": "de",
		"en-GB": "en",
		"fr":    "fr",
		"ja":    "en",
		"":      "en",
		"!!":    "en",
	}
	for input, want := range tests {
		if got := m.Resolve(input); got != want {
			t.Errorf("Resolve(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestDetectLocale(t *testing.T) {
	m := newManager(t, Options{})

	tests := []struct {
		header string
		want   string
	}{
		{"fr-CH, fr;q=0.9, en;q=0.8", "fr"},
		{"de;q=0.5, en;q=0.9", "en"},
		{"", "en"},
		{"ja", "en"},
	}
	for _, tt := range tests {
		if got := m.DetectLocale(tt.header); got != tt.want {
			t.Errorf("DetectLocale(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}

func TestUnitPattern(t *testing.T) {
	m := newManager(t, Options{})

	tests := []struct {
		locale string
		count  float64
		digits int
		want   string
	}{
		{"en", 1, 0, "{0} hour"},
		{"en", 1, 1, "{0} hours"},
		{"en", 2, 0, "{0} hours"},
		{"en", -1, 0, "{0} hour"},
		{"de", 1, 0, "{0} Stunde"},
		{"de", 0, 0, "{0} Stunden"},
		{"fr", 0, 0, "{0} heure"},
		{"fr", 1.5, 1, "{0} heure"},
		{"fr", 2, 0, "{0} heures"},
	}
	for _, tt := range tests {
		got, err := m.UnitPattern(tt.locale, "hours", WidthWide, tt.count, tt.digits)
		if err != nil {
			t.Fatalf("UnitPattern() error = %v", err)
		}
		if got != tt.want {
			t.Errorf("UnitPattern(%s, %v, %d) = %q, want %q", tt.locale, tt.count, tt.digits, got, tt.want)
		}
	}
}

func TestListAndTimePattern(t *testing.T) {
	m := newManager(t, Options{})

	if got, _ := m.ListPattern("de", WidthWide, ListEnd); got != "{0} und {1}" {
		t.Errorf("ListPattern() = %q", got)
	}
	if got, _ := m.ListPattern("en", WidthNarrow, ListPair); got != "{0} {1}" {
		t.Errorf("ListPattern() = %q", got)
	}
	if got, _ := m.TimePattern("en", "ms"); got != "m:ss" {
		t.Errorf("TimePattern() = %q", got)
	}
	if _, err := m.TimePattern("en", "dhm"); err == nil {
		t.Error("Expected error for unknown time style")
	}
}

func TestFormatNumber(t *testing.T) {
	m := newManager(t, Options{})

	tests := []struct {
		locale string
		num    float64
		digits int
		want   string
	}{
		{"en", 1234.5, 1, "1,234.5"},
		{"de", 1234.5, 1, "1.234,5"},
		{"en", 2, 0, "2"},
		{"en", 0.125, 2, "0.12"},
		{"en", -1e-300, 0, "-0"},
	}
	for _, tt := range tests {
		if got := m.FormatNumber(tt.locale, tt.num, tt.digits); got != tt.want {
			t.Errorf("FormatNumber(%s, %v, %d) = %q, want %q", tt.locale, tt.num, tt.digits, got, tt.want)
		}
	}

	if got := m.DecimalSeparator("fr"); got != "," {
		t.Errorf("DecimalSeparator(fr) = %q, want %q", got, ",")
	}
}

func TestReloadLogsTiming(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatLogfmt, Output: &buf})
	m := newManager(t, Options{DefaultLocale: "en", Logger: logger})

	out := buf.String()
	if !strings.Contains(out, `message="locale catalog load completed"`) || !strings.Contains(out, `default="en"`) {
		t.Errorf("New() log = %q", out)
	}

	buf.Reset()
	if err := m.ReloadAll(); err != nil {
		t.Fatalf("ReloadAll() error = %v", err)
	}
	if strings.Count(buf.String(), "locale catalog load completed") != 1 {
		t.Errorf("ReloadAll() log = %q", buf.String())
	}
}

// bareTranslator exposes only the locales.Translator method set.
type bareTranslator struct{ locales.Translator }

func TestDecimalSeparatorFallback(t *testing.T) {
	if got := decimalSeparator(de.New()); got != "," {
		t.Errorf("decimalSeparator(de) = %q, want %q", got, ",")
	}
	if got := decimalSeparator(bareTranslator{de.New()}); got != "." {
		t.Errorf("decimalSeparator(bare) = %q, want %q", got, ".")
	}
}

func TestParseWidth(t *testing.T) {
	tests := map[string]Width{"wide": WidthWide, "Narrow": WidthNarrow, "short": WidthAbbreviated, "": WidthWide}
	for input, want := range tests {
		got, ok := ParseWidth(input)
		if !ok || got != want {
			t.Errorf("ParseWidth(%q) = %v, %v; want %v", input, got, ok, want)
		}
	}
	if _, ok := ParseWidth("huge"); ok {
		t.Error("ParseWidth(huge) succeeded")
	}
}

func TestKeys(t *testing.T) {
	m := newManager(t, Options{})
	keys := m.Keys("en")
	found := false
	for _, k := range keys {
		if k == "time.hms" {
			found = true
		}
	}
	if !found {
		t.Errorf("Keys() missing time.hms in %v", keys)
	}
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "en.toml")
	writeFile(t, path, "[time]\nhms = \"h:mm:ss\"\n")

	m := newManager(t, Options{LocalesDir: dir, Watch: true})
	defer m.StopWatching()
	if !m.IsWatching() {
		t.Fatal("Expected manager to be watching")
	}

	changed := make(chan string, 16)
	m.OnLocaleChange(func(locale string) { changed <- locale })

	writeFile(t, path, "[time]\nhms = \"hh:mm:ss\"\n")

	deadline := time.After(5 * time.Second)
	for {
		select {
		case locale := <-changed:
			if locale != "en" {
				continue
			}
			if got, _ := m.Lookup("en", "time.hms"); got == "hh:mm:ss" {
				m.StopWatching()
				if m.IsWatching() {
					t.Error("Expected watching to stop")
				}
				return
			}
		case <-deadline:
			t.Fatal("Timed out waiting for reload")
		}
	}
}
