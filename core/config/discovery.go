// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Finds the chrono configuration file across search paths and
//              formats.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2026-10-18 v0.2.0: chrono search paths, optional discovery returns env-only config

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	chronoerr "github.com/msto63/chrono/core/error"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string // Directories to search for config files
	Filenames  []string // Base filenames to look for (without extension)
	Extensions []string // File extensions to try (.toml, .yaml, .yml)
	EnvPrefix  string   // Environment variable prefix for overrides
	Required   bool     // Whether finding a config file is required
	Watch      bool     // Reload the discovered file on change
}

// DefaultDiscoveryOptions searches the working directory, the user config
// directory and /etc/chrono for chrono.toml, chrono.yaml or chrono.yml.
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "chrono"))
	}
	paths = append(paths, "/etc/chrono")

	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"chrono"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  DefaultEnvPrefix,
		Required:   false,
	}
}

// Discover loads the first configuration file found. Without a file it
// returns an empty configuration, or a CodeNotFound error when Required.
func Discover(options DiscoveryOptions) (*Config, error) {
	if len(options.Paths) == 0 {
		options.Paths = []string{"."}
	}
	if len(options.Filenames) == 0 {
		options.Filenames = []string{"chrono"}
	}
	if len(options.Extensions) == 0 {
		options.Extensions = []string{".toml", ".yaml", ".yml"}
	}

	configPath, err := FindConfigFile(options)
	if err == nil {
		config, err := LoadWithOptions(configPath, LoadOptions{
			Format:    FormatAuto,
			EnvPrefix: options.EnvPrefix,
			Watch:     options.Watch,
		})
		if err != nil {
			return nil, chronoerr.Wrap(err, fmt.Sprintf("found config file %s but failed to load", configPath)).
				WithCode(chronoerr.CodeConfigError).
				WithOperation("config.Discover").
				WithDetail("configPath", configPath)
		}
		return config, nil
	}

	if options.Required {
		searchPaths := ListPossibleConfigFiles(options)
		return nil, chronoerr.New(fmt.Sprintf("no configuration file found in paths: %s", strings.Join(searchPaths, ", "))).
			WithCode(chronoerr.CodeNotFound).
			WithOperation("config.Discover").
			WithDetail("searchPaths", searchPaths)
	}

	return Empty(options.EnvPrefix), nil
}

// DiscoverWithDefaults discovers configuration with default options
func DiscoverWithDefaults() (*Config, error) {
	return Discover(DefaultDiscoveryOptions())
}

// FindConfigFile searches for a configuration file without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	for _, configPath := range ListPossibleConfigFiles(options) {
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			return configPath, nil
		}
	}

	return "", chronoerr.New("configuration file not found").
		WithCode(chronoerr.CodeNotFound).
		WithOperation("config.FindConfigFile")
}

// ListPossibleConfigFiles returns all candidate paths in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	paths := make([]string, 0, len(options.Paths)*len(options.Filenames)*len(options.Extensions))
	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(path, filename+ext))
			}
		}
	}
	return paths
}
