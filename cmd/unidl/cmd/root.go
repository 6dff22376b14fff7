package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"uninote-collector/cmd/unidl/cmd/download"
	"uninote-collector/cmd/unidl/cmd/export"
	"uninote-collector/cmd/unidl/cmd/stats"
	"uninote-collector/cmd/unidl/cmd/version"
)

var Verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "unidl",
	Short: "Batch downloader for building an educational video dataset",
	Long: `Batch downloader for building an educational video dataset.
- Reads a CSV listing video urls with subject, difficulty and source labels
- Downloads each video with yt-dlp and saves metadata plus manual subtitles
- Keeps a JSON collection log so re-runs skip videos already downloaded`,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(download.Cmd)
	rootCmd.AddCommand(stats.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
}
