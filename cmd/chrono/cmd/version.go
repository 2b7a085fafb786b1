package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	Version   = "0.1.0"
	GitCommit = "development"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(renderRows("chrono v"+Version,
			row{"git commit", GitCommit},
			row{"build date", BuildDate},
			row{"go version", runtime.Version()},
			row{"os/arch", runtime.GOOS + "/" + runtime.GOARCH},
		))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
