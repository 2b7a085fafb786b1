package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/chrono/core/config"
	chronoerr "github.com/msto63/chrono/core/error"
	"github.com/msto63/chrono/core/i18n"
	"github.com/msto63/chrono/core/log"
	"github.com/msto63/chrono/format/iso8601"
	"github.com/msto63/chrono/zone"
)

var (
	cfgFile string
	verbose bool
	locale  string
	watch   bool
)

// app holds what the subcommands share once configuration is loaded.
var app struct {
	settings config.Settings
	config   *config.Config
	logger   *log.Logger
	resolver *zone.Resolver
	watcher  *zone.Watcher
	locales  *i18n.Manager
}

var rootCmd = &cobra.Command{
	Use:   "chrono",
	Short: "Date, time and duration codecs",
	Long: `chrono formats and parses dates, times, zones and durations.

Commands:
  http      - RFC 7231 HTTP-date
  iso       - configurable ISO 8601
  zone      - time zone lookup
  decimal   - multi-word integers in decimal
  duration  - durations as unit lists or clock readings`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: chrono.toml in ., user config dir or /etc/chrono)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&locale, "locale", "", "locale for duration patterns (default: locale.default)")
	rootCmd.PersistentFlags().BoolVar(&watch, "watch", false, "reload the config file, locale patterns and local zone on change")
}

// setup loads the configuration and builds the logger, zone resolver and
// locale manager.
func setup(cmd *cobra.Command, args []string) error {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.LoadWithOptions(cfgFile, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: config.DefaultEnvPrefix,
			Watch:     watch,
		})
	} else {
		options := config.DefaultDiscoveryOptions()
		options.Watch = watch
		cfg, err = config.Discover(options)
	}
	if err != nil {
		printError("loading configuration", err)
		return err
	}

	settings := cfg.Settings()
	logger, err := settings.Logger()
	if err != nil {
		printError("configuring logger", err)
		return err
	}
	if verbose {
		logger = logger.WithLevel(log.LevelDebug)
	}
	logger = logger.WithTimestamp(iso8601.Default.FractionalSeconds(true).FormatTime).WithOutput(os.Stderr)
	log.SetDefault(logger)

	opts := []zone.Option{zone.WithLogger(logger.WithName("zone"))}
	if settings.Zone.Watch || watch {
		app.watcher = zone.NewWatcher(zone.DefaultLocaltimePath, logger.WithName("zone"))
		if err := app.watcher.Start(context.Background()); err != nil {
			logger.WarnWithErr("Zone watcher not started", err)
		}
		opts = append(opts, zone.WithChangeCounter(app.watcher))
	}
	resolver := zone.NewResolver(opts...)

	if err := settings.Check(resolver).Err(); err != nil {
		printError("invalid configuration", err)
		return err
	}
	settings.ApplyCacheLimits()

	if settings.Zone.Default != "" {
		z, err := resolver.Named(settings.Zone.Default)
		if err != nil {
			return err
		}
		resolver.SetDefault(z)
	}
	if len(settings.Zone.Preload) > 0 {
		if err := resolver.Preload(cmd.Context(), settings.Zone.Preload...); err != nil {
			logger.WarnWithErr("Zone preload failed", err)
		}
	}

	i18nOptions := settings.I18nOptions(logger.WithName("i18n"))
	i18nOptions.Watch = i18nOptions.Watch || watch
	locales, err := i18n.New(i18nOptions)
	if err != nil {
		printError("loading locale patterns", err)
		return err
	}
	if locale == "" {
		locale = settings.Locale.Default
	}

	cfg.ApplyOnChange(resolver, func(s config.Settings) {
		if level, err := log.ParseLevel(s.Log.Level); err == nil && !verbose {
			logger.SetLevel(level)
		}
	})

	app.settings = settings
	app.config = cfg
	app.logger = logger
	app.resolver = resolver
	app.locales = locales
	logger.Debug("Configuration loaded", log.Fields{"config": cfg.String(), "locale": locale})
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	if app.config != nil {
		app.config.StopWatching()
	}
	if app.watcher != nil {
		app.watcher.Stop()
	}
	if app.locales != nil {
		app.locales.StopWatching()
	}
	return nil
}

func printError(msg string, err error) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("error: "+msg+": "+err.Error()))
	var ce *chronoerr.Error
	if e, ok := err.(*chronoerr.Error); ok {
		ce = e
	}
	if ce != nil && chronoerr.IsParseFailure(ce) {
		fmt.Fprintln(os.Stderr, renderParseFailure(ce))
	}
}
