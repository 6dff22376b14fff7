package stats

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"uninote-collector/internal/app"
)

var outputDir string

func init() {
	Cmd.Flags().StringVarP(&outputDir, "outputDir", "o", "",
		"override the output directory from the configuration")
}

// Cmd represents the stats command
var Cmd = &cobra.Command{
	Use:   "stats",
	Short: "Print collection statistics and refresh statistics.json",
	Long: `Print collection statistics and refresh statistics.json

- Totals, duration and subtitle coverage over the whole collection log
- Distributions by subject, difficulty and source`,
	Run: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose")
		if outputDir != "" {
			os.Setenv("UNINOTE_OUTPUT_DIR", outputDir)
		}

		reporter := app.InitializeReporter(verbose)
		if _, err := reporter.Generate(); err != nil {
			log.Fatal(err)
		}
	},
}
