// File: i18n.go
// Title: Locale Pattern Manager
// Description: Implements the Manager that loads duration, list and time
//              patterns from embedded and on-disk TOML and YAML files and
//              resolves keys with locale fallback.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-18 v0.2.0: Pattern catalogs with embedded defaults, locale
//                       matching and plural rules from CLDR data

package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/locales"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	chronoerr "github.com/msto63/chrono/core/error"
	"github.com/msto63/chrono/core/log"
)

//go:embed locales/*.toml locales/*.yaml
var builtin embed.FS

// Format represents the language file format
type Format int

const (
	// FormatAuto accepts TOML and YAML files (default)
	FormatAuto Format = iota

	// FormatTOML restricts loading to .toml files
	FormatTOML

	// FormatYAML restricts loading to .yaml and .yml files
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

func (f Format) extensions() []string {
	switch f {
	case FormatTOML:
		return []string{".toml"}
	case FormatYAML:
		return []string{".yaml", ".yml"}
	default:
		return []string{".toml", ".yaml", ".yml"}
	}
}

// Options defines configuration options for the Manager
type Options struct {
	DefaultLocale string      // Locale used when nothing better matches (default "en")
	LocalesDir    string      // Optional directory overlaying the built-in files
	Format        Format      // File formats read from LocalesDir
	Watch         bool        // Reload LocalesDir on change
	NoFallback    bool        // Disable fallback to the default locale
	Logger        *log.Logger // Defaults to the package logger named "i18n"
}

// Manager holds pattern catalogs per locale. It is safe for concurrent use.
type Manager struct {
	mu            sync.RWMutex
	defaultLocale string
	localesDir    string
	format        Format
	fallback      bool
	catalogs      map[string]Catalog
	names         []string
	matcher       language.Matcher
	translators   map[string]locales.Translator
	handlers      []LocaleChangeHandler
	logger        *log.Logger
	watcher       *watcher
}

// LocaleChangeHandler is called after the catalog of a locale was reloaded
type LocaleChangeHandler func(locale string)

// Catalog is the nested key/value content of one locale file
type Catalog map[string]interface{}

// New creates a Manager with the built-in catalogs and, when configured,
// the files in LocalesDir layered on top.
func New(options Options) (*Manager, error) {
	if strings.TrimSpace(options.DefaultLocale) == "" {
		options.DefaultLocale = "en"
	}
	if options.Logger == nil {
		options.Logger = log.GetDefault().WithName("i18n")
	}

	if options.LocalesDir != "" {
		if _, err := os.Stat(options.LocalesDir); err != nil {
			return nil, chronoerr.Wrap(err, "locales directory not found").
				WithCode(chronoerr.CodeNotFound).
				WithOperation("i18n.New").
				WithDetail("directory", options.LocalesDir)
		}
	}

	m := &Manager{
		defaultLocale: options.DefaultLocale,
		localesDir:    options.LocalesDir,
		format:        options.Format,
		fallback:      !options.NoFallback,
		translators:   make(map[string]locales.Translator),
		logger:        options.Logger,
	}

	if err := m.reload(); err != nil {
		return nil, err
	}

	if options.Watch && options.LocalesDir != "" {
		if err := m.startWatching(); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// reload reads every catalog and swaps them in at once.
func (m *Manager) reload() error {
	timer := m.logger.StartTimer("locale catalog load")
	catalogs, err := loadCatalogs(builtin, "locales", FormatAuto)
	if err != nil {
		return chronoerr.Wrap(err, "failed to load built-in locales").
			WithCode(chronoerr.CodeInternal).
			WithOperation("i18n.reload")
	}

	if m.localesDir != "" {
		overlay, err := loadCatalogs(os.DirFS(m.localesDir), ".", m.format)
		if err != nil {
			return chronoerr.Wrap(err, "failed to load locales").
				WithCode(chronoerr.CodeConfigError).
				WithOperation("i18n.reload").
				WithDetail("directory", m.localesDir)
		}
		for locale, catalog := range overlay {
			if base, ok := catalogs[locale]; ok {
				merge(base, catalog)
				continue
			}
			catalogs[locale] = catalog
		}
	}

	if _, ok := catalogs[m.defaultLocale]; !ok {
		return chronoerr.New("default locale not found").
			WithCode(chronoerr.CodeLocaleUnavailable).
			WithOperation("i18n.reload").
			WithDetail("locale", m.defaultLocale)
	}

	names := make([]string, 0, len(catalogs))
	for locale := range catalogs {
		if locale != m.defaultLocale {
			names = append(names, locale)
		}
	}
	sort.Strings(names)
	names = append([]string{m.defaultLocale}, names...)

	tags := make([]language.Tag, len(names))
	for i, name := range names {
		tags[i] = language.Make(name)
	}

	m.mu.Lock()
	m.catalogs = catalogs
	m.names = names
	m.matcher = language.NewMatcher(tags)
	m.mu.Unlock()

	timer.WithField("locales", len(names)).WithField("default", m.defaultLocale).Stop()
	return nil
}

// loadCatalogs reads every supported file directly under dir of fsys.
func loadCatalogs(fsys fs.FS, dir string, format Format) (map[string]Catalog, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read locales directory: %w", err)
	}

	catalogs := make(map[string]Catalog)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if !supported(format, ext) {
			continue
		}
		locale := strings.TrimSuffix(name, filepath.Ext(name))
		if locale == "" {
			continue
		}

		content, err := fs.ReadFile(fsys, filepath.ToSlash(filepath.Join(dir, name)))
		if err != nil {
			return nil, fmt.Errorf("failed to read locale file %s: %w", name, err)
		}
		catalog, err := parseCatalog(content, ext)
		if err != nil {
			return nil, fmt.Errorf("failed to parse locale file %s: %w", name, err)
		}
		if existing, ok := catalogs[locale]; ok {
			merge(existing, catalog)
			continue
		}
		catalogs[locale] = catalog
	}
	return catalogs, nil
}

func supported(format Format, ext string) bool {
	for _, e := range format.extensions() {
		if e == ext {
			return true
		}
	}
	return false
}

func parseCatalog(content []byte, ext string) (Catalog, error) {
	var data Catalog
	switch ext {
	case ".toml":
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported extension %q", ext)
	}
	if data == nil {
		data = Catalog{}
	}
	return data, nil
}

// merge copies src into dst, descending into nested tables.
func merge(dst, src map[string]interface{}) {
	for key, value := range src {
		if sub, ok := asMap(value); ok {
			if existing, ok := asMap(dst[key]); ok {
				merge(existing, sub)
				continue
			}
		}
		dst[key] = value
	}
}

func asMap(v interface{}) (map[string]interface{}, bool) {
	switch m := v.(type) {
	case map[string]interface{}:
		return m, true
	case Catalog:
		return m, true
	}
	return nil, false
}

// Lookup returns the string stored under the dot-separated key for locale.
// The locale is matched against the available ones first; when the key is
// missing there the default locale is tried.
func (m *Manager) Lookup(locale, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	resolved := m.resolveLocked(locale)
	if value, ok := nestedValue(m.catalogs[resolved], key); ok {
		return value, nil
	}
	if m.fallback && resolved != m.defaultLocale {
		if value, ok := nestedValue(m.catalogs[m.defaultLocale], key); ok {
			return value, nil
		}
	}
	return "", chronoerr.New("pattern not found").
		WithCode(chronoerr.CodePatternMissing).
		WithOperation("i18n.Lookup").
		WithDetails(map[string]interface{}{"locale": locale, "key": key})
}

// nestedValue retrieves a leaf value using dot notation
func nestedValue(data map[string]interface{}, key string) (string, bool) {
	if data == nil {
		return "", false
	}
	keys := strings.Split(key, ".")
	current := data
	for i, k := range keys {
		value, ok := current[k]
		if !ok {
			return "", false
		}
		if i == len(keys)-1 {
			if _, isMap := asMap(value); isMap {
				return "", false
			}
			return fmt.Sprintf("%v", value), true
		}
		if current, ok = asMap(value); !ok {
			return "", false
		}
	}
	return "", false
}

// DefaultLocale returns the default locale
func (m *Manager) DefaultLocale() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultLocale
}

// AvailableLocales returns all loaded locales, sorted
func (m *Manager) AvailableLocales() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := append([]string(nil), m.names...)
	sort.Strings(names)
	return names
}

// HasLocale reports whether a catalog exists for exactly this locale
func (m *Manager) HasLocale(locale string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.catalogs[locale]
	return ok
}

// Keys returns all leaf keys of a locale's catalog
func (m *Manager) Keys(locale string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	catalog := m.catalogs[m.resolveLocked(locale)]
	if catalog == nil {
		return nil
	}
	keys := collectKeys(catalog, "")
	sort.Strings(keys)
	return keys
}

// collectKeys recursively collects all keys from nested catalog data
func collectKeys(data map[string]interface{}, prefix string) []string {
	var keys []string
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}
		if nested, ok := asMap(value); ok {
			keys = append(keys, collectKeys(nested, fullKey)...)
			continue
		}
		keys = append(keys, fullKey)
	}
	return keys
}

// OnLocaleChange registers a handler called after each reload
func (m *Manager) OnLocaleChange(handler LocaleChangeHandler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers = append(m.handlers, handler)
}

// String provides a readable representation of the manager
func (m *Manager) String() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	parts := []string{fmt.Sprintf("i18n.Manager{defaultLocale: %s", m.defaultLocale)}
	if m.localesDir != "" {
		parts = append(parts, fmt.Sprintf("localesDir: %s", m.localesDir))
	}
	parts = append(parts, fmt.Sprintf("format: %s", m.format.String()))
	if m.fallback {
		parts = append(parts, "fallback: true")
	}
	if m.watcher != nil {
		parts = append(parts, "watching: true")
	}
	parts = append(parts, fmt.Sprintf("locales: %d}", len(m.catalogs)))
	return strings.Join(parts, ", ")
}
