package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/chrono/format/iso8601"
	"github.com/msto63/chrono/zone"
)

var zoneCmd = &cobra.Command{
	Use:   "zone",
	Short: "Resolve time zones",
}

var zoneResolveCmd = &cobra.Command{
	Use:   "resolve <identifier>...",
	Short: "Resolve zone identifiers and GMT offsets such as GMT+5:30",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.resolver.Preload(cmd.Context(), args...); err != nil {
			printError("resolving zone", err)
			return err
		}
		now := time.Now()
		for _, id := range args {
			z, err := app.resolver.Named(id)
			if err != nil {
				printError("resolving zone", err)
				return err
			}
			fmt.Println(renderZone(z, now))
		}
		return nil
	},
}

var zoneCurrentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the current and default zone",
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		fmt.Println(renderZone(app.resolver.Current(), now))
		if d := app.resolver.Default(); !zone.Equal(d, app.resolver.Current()) {
			fmt.Println(renderRows("default", row{"identifier", d.Identifier()}))
		}
		named, offsets := app.resolver.CacheStats()
		fmt.Println(renderRows("cache",
			row{"named hits", fmt.Sprintf("%d/%d", named.Hits, named.Hits+named.Misses)},
			row{"offset hits", fmt.Sprintf("%d/%d", offsets.Hits, offsets.Hits+offsets.Misses)},
		))
		return nil
	},
}

// followInterval is how often zone follow checks the watcher generation.
const followInterval = 500 * time.Millisecond

var zoneFollowCmd = &cobra.Command{
	Use:   "follow",
	Short: "Print the current zone whenever it changes, until interrupted",
	Long: `follow prints the current zone and prints it again each time the
host's zone configuration changes. It needs zone.watch or --watch, which
also reloads the config file so log level and cache changes apply live.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if app.watcher == nil {
			err := errors.New("zone watching is disabled, set zone.watch or pass --watch")
			printError("following zone", err)
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return followZone(ctx, app.watcher, followInterval)
	},
}

// followZone prints the current zone and again after every generation bump.
func followZone(ctx context.Context, w *zone.Watcher, interval time.Duration) error {
	gen := w.Generation()
	fmt.Println(renderZone(app.resolver.Current(), time.Now()))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if g := w.Generation(); g != gen {
				gen = g
				fmt.Println(renderZone(app.resolver.Current(), time.Now()))
			}
		}
	}
}

func init() {
	zoneCmd.AddCommand(zoneResolveCmd, zoneCurrentCmd, zoneFollowCmd)
	rootCmd.AddCommand(zoneCmd)
}

func renderZone(z zone.Zone, now time.Time) string {
	local := iso8601.New().Year().Month().Day().Time(false).TimeZone(iso8601.TimeZoneSeparatorColon).In(z)
	rows := []row{
		{"abbreviation", z.Abbreviation(now)},
		{"offset", zone.FormatGMTName(z.SecondsFromGMT(now)) + " (" + strconv.Itoa(z.SecondsFromGMT(now)) + "s)"},
		{"dst", strconv.FormatBool(z.IsDaylightSavingTime(now))},
		{"local time", local.FormatTime(now)},
	}
	if next, ok := z.NextDaylightSavingTimeTransition(now); ok {
		rows = append(rows, row{"next change", local.FormatTime(next)})
	}
	return renderRows(z.Identifier(), rows...)
}
