// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads chrono settings from TOML or YAML files
//              with environment overrides and converts them to codec styles
//              and duration policies.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-18 v0.2.0: Typed chrono settings, fsnotify watching

/*
Package config loads chrono configuration.

A configuration file is TOML (default) or YAML, chosen by extension.
Discover looks for chrono.toml, chrono.yaml or chrono.yml in the working
directory, the user config directory and /etc/chrono:

	[locale]
	default = "de"
	dir = "/etc/chrono/locales"

	[zone]
	default = "Europe/Berlin"
	preload = ["Europe/Paris", "America/New_York"]

	[iso8601]
	fields = ["year", "month", "day", "time", "timezone"]
	timezone_separator = "colon"
	fractional = true

	[duration]
	units = ["hours", "minutes", "seconds"]
	max_units = 2
	rounding = "toNearestOrEven"
	width = "abbreviated"

	[cache]
	formatter_limit = 100

	[log]
	level = "info"
	format = "console"

Every key can be overridden from the environment: iso8601.fractional is read
from CHRONO_ISO8601_FRACTIONAL, list values are comma separated.

Basic usage:

	cfg, err := config.DiscoverWithDefaults()
	if err != nil {
		return err
	}
	settings := cfg.Settings()
	if err := settings.Validate(); err != nil {
		return err
	}
	style, err := settings.ISO8601Style(nil)

Load with LoadOptions.Watch reloads the file through fsnotify and calls the
handlers registered with OnChange.
*/
package config
