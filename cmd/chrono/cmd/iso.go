package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/msto63/chrono/calendar"
	"github.com/msto63/chrono/format/iso8601"
)

var isoFlags struct {
	fields     []string
	basic      bool
	fractional bool
	space      bool
	zoneColon  bool
	zone       string
}

var isoCmd = &cobra.Command{
	Use:   "iso",
	Short: "Format and parse ISO 8601 with the configured style",
	Long: `Format and parse ISO 8601 representations.

The style comes from the [iso8601] configuration section; flags override
single settings. Fields: year, month, week, day, time, timezone.`,
}

var isoFormatCmd = &cobra.Command{
	Use:   "format [instant]",
	Short: "Format an instant (ISO 8601, unix seconds or now)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		style, err := isoStyle(cmd.Flags())
		if err != nil {
			printError("building style", err)
			return err
		}
		t, err := instantArg(args)
		if err != nil {
			printError("reading instant", err)
			return err
		}
		fmt.Println(style.FormatTime(t))
		return nil
	},
}

var isoParseCmd = &cobra.Command{
	Use:   "parse <text>",
	Short: "Parse text with the configured style",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		style, err := isoStyle(cmd.Flags())
		if err != nil {
			printError("building style", err)
			return err
		}
		c, err := style.Parse(args[0])
		if err != nil {
			printError("parsing ISO 8601", err)
			return err
		}
		rows := []row{{"components", c.String()}}
		if t, ok := calendar.Gregorian.Date(c); ok {
			rows = append(rows, row{"instant", iso8601.Default.FractionalSeconds(true).FormatTime(t)})
		}
		fmt.Println(renderRows("ISO 8601", rows...))
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{isoFormatCmd, isoParseCmd} {
		f := c.Flags()
		f.StringSliceVar(&isoFlags.fields, "fields", nil, "fields to include")
		f.BoolVar(&isoFlags.basic, "basic", false, "omit date and time separators")
		f.BoolVar(&isoFlags.fractional, "fractional", false, "include milliseconds")
		f.BoolVar(&isoFlags.space, "space", false, "separate date and time with a space")
		f.BoolVar(&isoFlags.zoneColon, "zone-colon", false, "write the zone offset as +hh:mm")
		f.StringVar(&isoFlags.zone, "zone", "", "zone for formatting and for text without offset")
	}
	isoCmd.AddCommand(isoFormatCmd, isoParseCmd)
	rootCmd.AddCommand(isoCmd)
}

// isoStyle applies changed flags on top of the [iso8601] settings.
func isoStyle(flags *pflag.FlagSet) (iso8601.Style, error) {
	settings := app.settings
	is := settings.ISO8601
	if flags.Changed("fields") {
		is.Fields = isoFlags.fields
	}
	if flags.Changed("basic") && isoFlags.basic {
		is.DateSeparator = "omitted"
		is.TimeSeparator = "omitted"
	}
	if flags.Changed("fractional") {
		is.Fractional = isoFlags.fractional
	}
	if flags.Changed("space") && isoFlags.space {
		is.DateTimeSeparator = "space"
	}
	if flags.Changed("zone-colon") && isoFlags.zoneColon {
		is.TimeZoneSeparator = "colon"
	}
	if flags.Changed("zone") {
		is.Zone = isoFlags.zone
	}
	settings.ISO8601 = is
	return settings.ISO8601Style(app.resolver)
}
