package download

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"uninote-collector/internal/app"
	"uninote-collector/internal/app/api/ytdlp"
)

var videoList string
var outputDir string

func init() {
	Cmd.Flags().StringVarP(&videoList, "file", "f", "",
		"CSV batch file with one video per row: url,subject,difficulty,source")
	Cmd.Flags().StringVarP(&outputDir, "outputDir", "o", "",
		"override the output directory from the configuration")

	Cmd.MarkFlagRequired("file")
}

// Cmd represents the download command
var Cmd = &cobra.Command{
	Use:   "download",
	Short: "Download every video listed in a CSV batch file",
	Long: `Download every video listed in a CSV batch file

- Each row is url,subject,difficulty,source below a header line
- Videos already present in the collection log are skipped
- Manual subtitles are copied out as plain-text transcripts
- Statistics are regenerated once the batch finishes
- Ctrl+C stops after the current video without corrupting the log`,
	Run: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose")
		if outputDir != "" {
			os.Setenv("UNINOTE_OUTPUT_DIR", outputDir)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		ytdlp.Install(ctx)

		a := app.InitializeApp(verbose)
		defer a.Downloader.Close()

		if _, err := a.Downloader.DownloadBatch(ctx, videoList); err != nil {
			log.Fatal(err)
		}

		if _, err := a.Reporter.Generate(); err != nil {
			log.Fatal(err)
		}
	},
}
