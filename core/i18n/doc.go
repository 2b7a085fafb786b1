// File: doc.go
// Title: Locale Pattern Package Documentation
// Description: Package i18n provides the locale patterns used to spell out
//              durations: unit patterns, list patterns and time patterns,
//              plus CLDR number formatting and plural rules.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-18 v0.2.0: Pattern catalogs for duration formatting

/*
Package i18n supplies locale-dependent pattern text.

Catalogs are nested tables read from TOML or YAML files. English, German and
French catalogs are built in; a locales directory may add locales or
override single keys of the built-in ones:

	# locales/en.toml
	[list.wide]
	end = "{0} & {1}"

	[unit.wide]
	hours = { one = "{0} hour", other = "{0} hours" }

Keys used by the duration formatter:

	time.<hm|hms|ms>                       "h:mm:ss"
	list.<width>.<start|middle|end|pair>   "{0}, and {1}"
	unit.<width>.<unit>.<plural category>  "{0} hours"

Requested locales are matched with golang.org/x/text/language, so "de-AT"
finds the "de" catalog. A key missing from the matched catalog is looked
up in the default locale.

Plural categories and number formatting come from the CLDR translators of
github.com/go-playground/locales.

Basic usage:

	m, err := i18n.New(i18n.Options{DefaultLocale: "en", LocalesDir: "./locales"})
	if err != nil {
		return err
	}
	pattern, err := m.UnitPattern("de", "hours", i18n.WidthWide, 2, 0) // "{0} Stunden"

With Options.Watch the locales directory is watched with fsnotify and
catalogs are reloaded on change; handlers registered with OnLocaleChange
run after each reload.
*/
package i18n
