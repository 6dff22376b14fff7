package export

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"uninote-collector/internal/app"
	"uninote-collector/internal/app/export"
)

var outputFilePath string
var outputDir string

func init() {
	Cmd.Flags().StringVarP(&outputFilePath, "outputFilePath", "x", "", "set the xlsx file to write")
	Cmd.Flags().StringVarP(&outputDir, "outputDir", "o", "",
		"override the output directory from the configuration")

	Cmd.MarkFlagRequired("outputFilePath")
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the collection log to excel",
	Long: `Export the collection log to excel

- One row per downloaded video with its labels and subtitle status`,
	Run: func(cmd *cobra.Command, args []string) {
		if outputDir != "" {
			os.Setenv("UNINOTE_OUTPUT_DIR", outputDir)
		}

		db := app.InitializeCollectionDAO()
		defer db.Close()

		export.ToExcel(db.All(), outputFilePath)
		fmt.Printf("export finished, exported file path: %v\n", outputFilePath)
	},
}
