package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/chrono/core/log"
	"github.com/msto63/chrono/format/httpdate"
	"github.com/msto63/chrono/format/iso8601"
)

var httpCmd = &cobra.Command{
	Use:   "http",
	Short: "Format and parse RFC 7231 HTTP-dates",
}

var httpFormatCmd = &cobra.Command{
	Use:   "format [instant]",
	Short: "Format an instant (ISO 8601, unix seconds or now) as HTTP-date",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := instantArg(args)
		if err != nil {
			printError("reading instant", err)
			return err
		}
		fmt.Println(httpdate.FormatTime(t))
		return nil
	},
}

var httpParseCmd = &cobra.Command{
	Use:   "parse <http-date>",
	Short: "Parse an HTTP-date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := httpdate.Parse(args[0])
		if err != nil {
			printError("parsing HTTP-date", err)
			return err
		}
		rows := []row{{"components", c.String()}}
		if t, err := httpdate.ParseTime(args[0]); err == nil {
			rows = append(rows, row{"iso 8601", iso8601.Default.FormatTime(t)}, row{"unix", strconv.FormatInt(t.Unix(), 10)})
		}
		fmt.Println(renderRows("HTTP-date", rows...))
		return nil
	},
}

func init() {
	httpCmd.AddCommand(httpFormatCmd, httpParseCmd)
	rootCmd.AddCommand(httpCmd)
}

// instantArg reads "now", unix seconds or an ISO 8601 date-time with
// optional fraction. No argument means now.
func instantArg(args []string) (time.Time, error) {
	if len(args) == 0 || strings.EqualFold(args[0], "now") {
		return time.Now(), nil
	}
	if secs, err := strconv.ParseInt(args[0], 10, 64); err == nil {
		return time.Unix(secs, 0), nil
	}
	t, err := iso8601.Default.FractionalSeconds(true).ParseTime(args[0])
	if err != nil {
		return time.Time{}, err
	}
	app.logger.Debug("Read instant", log.String("input", args[0]))
	return t, nil
}
