// File: settings.go
// Title: Typed Settings
// Description: Reads the chrono configuration sections into typed settings
//              and converts them to codec styles, duration policies and
//              locale options.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package config

import (
	"strings"

	chronoerr "github.com/msto63/chrono/core/error"
	"github.com/msto63/chrono/core/i18n"
	"github.com/msto63/chrono/core/log"
	"github.com/msto63/chrono/format/duration"
	"github.com/msto63/chrono/format/iso8601"
	"github.com/msto63/chrono/zone"
)

// Settings holds all configuration sections.
type Settings struct {
	Locale   LocaleSettings
	Zone     ZoneSettings
	ISO8601  ISO8601Settings
	Duration DurationSettings
	Cache    CacheSettings
	Log      LogSettings
}

// LocaleSettings is the [locale] section.
type LocaleSettings struct {
	Default string // locale.default
	Dir     string // locale.dir, overlay directory for pattern files
	Watch   bool   // locale.watch
}

// ZoneSettings is the [zone] section.
type ZoneSettings struct {
	Default string   // zone.default, empty for the system zone
	Watch   bool     // zone.watch, track /etc/localtime
	Preload []string // zone.preload
}

// ISO8601Settings is the [iso8601] section.
type ISO8601Settings struct {
	Fields            []string // year, month, week, day, time, timezone
	DateSeparator     string   // dash or omitted
	TimeSeparator     string   // colon or omitted
	DateTimeSeparator string   // t or space
	TimeZoneSeparator string   // omitted or colon
	Fractional        bool
	Zone              string
}

// DurationSettings is the [duration] section.
type DurationSettings struct {
	Units          []string
	MaxUnits       int
	ZeroUnits      string // hide or show
	FractionDigits int
	Rounding       string
	Increment      float64
	Width          string // wide, abbreviated or narrow
}

// CacheSettings is the [cache] section.
type CacheSettings struct {
	FormatterLimit int
}

// LogSettings is the [log] section.
type LogSettings struct {
	Level  string
	Format string
}

// DefaultSettings returns the settings used for absent keys.
func DefaultSettings() Settings {
	return Settings{
		Locale: LocaleSettings{Default: "en"},
		ISO8601: ISO8601Settings{
			Fields:            []string{"year", "month", "day", "time", "timezone"},
			DateSeparator:     "dash",
			TimeSeparator:     "colon",
			DateTimeSeparator: "t",
			TimeZoneSeparator: "omitted",
		},
		Duration: DurationSettings{
			Units:     []string{"hours", "minutes", "seconds"},
			ZeroUnits: "hide",
			Rounding:  "toNearestOrEven",
			Width:     "wide",
		},
		Cache: CacheSettings{FormatterLimit: iso8601.DefaultFormatterCacheLimit},
		Log:   LogSettings{Level: "warn", Format: "console"},
	}
}

// Settings reads all sections, falling back to DefaultSettings per key.
// Environment overrides apply to every key.
func (c *Config) Settings() Settings {
	d := DefaultSettings()
	return Settings{
		Locale: LocaleSettings{
			Default: c.GetString("locale.default", d.Locale.Default),
			Dir:     c.GetString("locale.dir"),
			Watch:   c.GetBool("locale.watch"),
		},
		Zone: ZoneSettings{
			Default: c.GetString("zone.default"),
			Watch:   c.GetBool("zone.watch"),
			Preload: c.GetStringSlice("zone.preload"),
		},
		ISO8601: ISO8601Settings{
			Fields:            c.GetStringSlice("iso8601.fields", d.ISO8601.Fields),
			DateSeparator:     c.GetString("iso8601.date_separator", d.ISO8601.DateSeparator),
			TimeSeparator:     c.GetString("iso8601.time_separator", d.ISO8601.TimeSeparator),
			DateTimeSeparator: c.GetString("iso8601.date_time_separator", d.ISO8601.DateTimeSeparator),
			TimeZoneSeparator: c.GetString("iso8601.timezone_separator", d.ISO8601.TimeZoneSeparator),
			Fractional:        c.GetBool("iso8601.fractional"),
			Zone:              c.GetString("iso8601.zone"),
		},
		Duration: DurationSettings{
			Units:          c.GetStringSlice("duration.units", d.Duration.Units),
			MaxUnits:       c.GetInt("duration.max_units"),
			ZeroUnits:      c.GetString("duration.zero_units", d.Duration.ZeroUnits),
			FractionDigits: c.GetInt("duration.fraction_digits"),
			Rounding:       c.GetString("duration.rounding", d.Duration.Rounding),
			Increment:      c.GetFloat("duration.increment"),
			Width:          c.GetString("duration.width", d.Duration.Width),
		},
		Cache: CacheSettings{
			FormatterLimit: c.GetInt("cache.formatter_limit", d.Cache.FormatterLimit),
		},
		Log: LogSettings{
			Level:  c.GetString("log.level", d.Log.Level),
			Format: c.GetString("log.format", d.Log.Format),
		},
	}
}

// ISO8601Style converts the [iso8601] section. A configured zone is
// resolved with r, or the default resolver when r is nil.
func (s Settings) ISO8601Style(r *zone.Resolver) (iso8601.Style, error) {
	is := s.ISO8601
	dateSep, ok := parseDateSeparator(is.DateSeparator)
	if !ok {
		return iso8601.Default, invalid("iso8601.date_separator", is.DateSeparator, "expected dash or omitted")
	}
	timeSep, ok := parseTimeSeparator(is.TimeSeparator)
	if !ok {
		return iso8601.Default, invalid("iso8601.time_separator", is.TimeSeparator, "expected colon or omitted")
	}
	dateTimeSep, ok := parseDateTimeSeparator(is.DateTimeSeparator)
	if !ok {
		return iso8601.Default, invalid("iso8601.date_time_separator", is.DateTimeSeparator, "expected t or space")
	}
	zoneSep, ok := parseTimeZoneSeparator(is.TimeZoneSeparator)
	if !ok {
		return iso8601.Default, invalid("iso8601.timezone_separator", is.TimeZoneSeparator, "expected omitted or colon")
	}

	fields := is.Fields
	if len(fields) == 0 {
		fields = DefaultSettings().ISO8601.Fields
	}
	style := iso8601.New().DateSeparator(dateSep).TimeSeparator(timeSep).DateTimeSeparator(dateTimeSep)
	for _, name := range fields {
		switch normalize(name) {
		case "year":
			style = style.Year()
		case "month":
			style = style.Month()
		case "week", "weekofyear":
			style = style.WeekOfYear()
		case "day":
			style = style.Day()
		case "time":
			style = style.Time(is.Fractional)
		case "timezone", "zone":
			style = style.TimeZone(zoneSep)
		default:
			return iso8601.Default, invalid("iso8601.fields", name, "unknown field")
		}
	}
	style = style.FractionalSeconds(is.Fractional)

	if is.Zone != "" {
		if r == nil {
			r = zone.DefaultResolver()
		}
		z, err := r.Named(is.Zone)
		if err != nil {
			return style, chronoerr.Wrap(err, "invalid iso8601.zone").
				WithCode(chronoerr.CodeInvalidConfig).
				WithOperation("config.ISO8601Style").
				WithDetail("key", "iso8601.zone").
				WithDetail("value", is.Zone)
		}
		style = style.In(z)
	}
	return style, nil
}

// DurationPolicy converts the [duration] section.
func (s Settings) DurationPolicy() (duration.Policy, error) {
	ds := s.Duration
	units, unknown := duration.ParseUnitSet(ds.Units)
	if len(unknown) > 0 {
		return duration.Policy{}, invalid("duration.units", strings.Join(unknown, ","), "unknown unit")
	}
	var zeros duration.ZeroUnits
	switch normalize(ds.ZeroUnits) {
	case "hide", "":
		zeros = duration.HideZeroUnits
	case "show":
		zeros = duration.ShowZeroUnits
	default:
		return duration.Policy{}, invalid("duration.zero_units", ds.ZeroUnits, "expected hide or show")
	}
	rounding, ok := duration.ParseRoundingRule(ds.Rounding)
	if !ok && ds.Rounding != "" {
		return duration.Policy{}, invalid("duration.rounding", ds.Rounding, "unknown rounding rule")
	}
	return duration.Policy{
		Units:          units,
		MaxUnits:       ds.MaxUnits,
		ZeroUnits:      zeros,
		FractionDigits: ds.FractionDigits,
		Rounding:       rounding,
		Increment:      ds.Increment,
	}, nil
}

// DurationWidth converts duration.width.
func (s Settings) DurationWidth() (i18n.Width, error) {
	w, ok := i18n.ParseWidth(s.Duration.Width)
	if !ok {
		return w, invalid("duration.width", s.Duration.Width, "expected wide, abbreviated or narrow")
	}
	return w, nil
}

// I18nOptions converts the [locale] section.
func (s Settings) I18nOptions(logger *log.Logger) i18n.Options {
	return i18n.Options{
		DefaultLocale: s.Locale.Default,
		LocalesDir:    s.Locale.Dir,
		Watch:         s.Locale.Watch,
		Logger:        logger,
	}
}

// Logger returns a logger configured by the [log] section.
func (s Settings) Logger() (*log.Logger, error) {
	level, err := log.ParseLevel(s.Log.Level)
	if err != nil {
		return nil, invalid("log.level", s.Log.Level, err.Error())
	}
	format, err := log.ParseFormat(s.Log.Format)
	if err != nil {
		return nil, invalid("log.format", s.Log.Format, err.Error())
	}
	return log.New().WithLevel(level).WithFormat(format), nil
}

// ApplyCacheLimits sets the process-wide formatter cache limit.
func (s Settings) ApplyCacheLimits() {
	iso8601.SetFormatterCacheLimit(s.Cache.FormatterLimit)
}

// ApplyOnChange re-applies the settings of every reloaded file. Cache limits
// are set here and apply receives the rest. Reloaded settings that fail
// Check against r are logged and dropped.
func (c *Config) ApplyOnChange(r *zone.Resolver, apply func(Settings)) {
	c.OnChange(func(_, newConfig *Config) {
		s := newConfig.Settings()
		if err := s.Check(r).Err(); err != nil {
			c.logger.LogError(chronoerr.Wrap(err, "reloaded configuration rejected").
				WithOperation("config.ApplyOnChange"))
			return
		}
		s.ApplyCacheLimits()
		if apply != nil {
			apply(s)
		}
	})
}

func normalize(s string) string {
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(strings.TrimSpace(s)))
}

func parseDateSeparator(s string) (iso8601.DateSeparator, bool) {
	switch normalize(s) {
	case "dash", "-", "":
		return iso8601.DateSeparatorDash, true
	case "omitted", "none":
		return iso8601.DateSeparatorOmitted, true
	}
	return iso8601.DateSeparatorDash, false
}

func parseTimeSeparator(s string) (iso8601.TimeSeparator, bool) {
	switch normalize(s) {
	case "colon", ":", "":
		return iso8601.TimeSeparatorColon, true
	case "omitted", "none":
		return iso8601.TimeSeparatorOmitted, true
	}
	return iso8601.TimeSeparatorColon, false
}

func parseDateTimeSeparator(s string) (iso8601.DateTimeSeparator, bool) {
	if s == " " {
		return iso8601.DateTimeSeparatorSpace, true
	}
	switch normalize(s) {
	case "t", "standard", "":
		return iso8601.DateTimeSeparatorStandard, true
	case "space":
		return iso8601.DateTimeSeparatorSpace, true
	}
	return iso8601.DateTimeSeparatorStandard, false
}

func parseTimeZoneSeparator(s string) (iso8601.TimeZoneSeparator, bool) {
	switch normalize(s) {
	case "omitted", "none", "":
		return iso8601.TimeZoneSeparatorOmitted, true
	case "colon", ":":
		return iso8601.TimeZoneSeparatorColon, true
	}
	return iso8601.TimeZoneSeparatorOmitted, false
}

func invalid(key, value, reason string) *chronoerr.Error {
	return chronoerr.New("invalid " + key + ": " + reason).
		WithCode(chronoerr.CodeInvalidConfig).
		WithOperation("config.Settings").
		WithDetail("key", key).
		WithDetail("value", value)
}
