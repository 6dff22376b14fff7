package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"uninote-collector/internal/version"
)

// Cmd represents the version command
var Cmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of unidl",
	Long:  `All software has versions. This is unidl's.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		printVersion()
		return nil
	},
}

func printVersion() {
	fmt.Println(version.Version)
}
