package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	chronoerr "github.com/msto63/chrono/core/error"
	"github.com/msto63/chrono/core/log"
	"github.com/msto63/chrono/format/duration"
)

var durationFlags struct {
	clock    bool
	pattern  string
	width    string
	units    []string
	maxUnits int
	digits   int
	rounding string
	zeros    bool
}

var durationCmd = &cobra.Command{
	Use:   "duration <duration>...",
	Short: "Spell out durations such as 1h5m3s",
	Long: `Writes Go durations as localized unit lists ("1 hour, 5 minutes, and
3 seconds") or, with --clock, as clock readings ("1:05:03"). Defaults come
from the [duration] configuration section.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDuration,
}

func init() {
	f := durationCmd.Flags()
	f.BoolVar(&durationFlags.clock, "clock", false, "write as h:mm:ss")
	f.StringVar(&durationFlags.pattern, "pattern", "hms", "clock pattern: hm, hms or ms")
	f.StringVar(&durationFlags.width, "width", "", "wide, abbreviated or narrow")
	f.StringSliceVar(&durationFlags.units, "units", nil, "allowed units")
	f.IntVar(&durationFlags.maxUnits, "max-units", 0, "maximum number of units")
	f.IntVar(&durationFlags.digits, "digits", 0, "fraction digits of the smallest unit")
	f.StringVar(&durationFlags.rounding, "rounding", "", "rounding rule, e.g. toNearestOrEven or towardZero")
	f.BoolVar(&durationFlags.zeros, "zeros", false, "show zero units")
	rootCmd.AddCommand(durationCmd)
}

func runDuration(cmd *cobra.Command, args []string) error {
	settings := app.settings
	ds := &settings.Duration
	flags := cmd.Flags()
	if flags.Changed("units") {
		ds.Units = durationFlags.units
	}
	if flags.Changed("max-units") {
		ds.MaxUnits = durationFlags.maxUnits
	}
	if flags.Changed("digits") {
		ds.FractionDigits = durationFlags.digits
	}
	if flags.Changed("rounding") {
		ds.Rounding = durationFlags.rounding
	}
	if flags.Changed("zeros") && durationFlags.zeros {
		ds.ZeroUnits = "show"
	}
	if flags.Changed("width") {
		ds.Width = durationFlags.width
	}

	policy, err := settings.DurationPolicy()
	if err != nil {
		printError("building duration policy", err)
		return err
	}
	width, err := settings.DurationWidth()
	if err != nil {
		printError("building duration policy", err)
		return err
	}
	pattern, ok := duration.ParseTimePattern(durationFlags.pattern)
	if !ok {
		err := chronoerr.New("unknown clock pattern").
			WithCode(chronoerr.CodeInvalidInput).
			WithDetail("pattern", durationFlags.pattern)
		printError("building duration policy", err)
		return err
	}

	for _, arg := range args {
		d, err := time.ParseDuration(arg)
		if err != nil {
			err := chronoerr.Wrap(err, "invalid duration").
				WithCode(chronoerr.CodeMalformedInput).
				WithDetail("input", arg)
			printError("reading duration", err)
			return err
		}

		var out string
		if durationFlags.clock {
			out = duration.TimeStyle{
				Pattern:        pattern,
				Locale:         locale,
				FractionDigits: policy.FractionDigits,
				Rounding:       policy.Rounding,
			}.Format(d, app.locales)
		} else {
			out = duration.UnitsStyle{Policy: policy, Width: width, Locale: locale}.Format(d, app.locales)
		}
		app.logger.Debug("Formatted duration", log.Fields{"input": arg, "locale": app.locales.Resolve(locale)})
		fmt.Println(out)
	}
	return nil
}
