// Package cmd implements the command-line interface for embycon.
package cmd

import (
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/yeahme49/plugin.video.embycon/constant"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
}

// versionCmd displays application version and build metadata.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the application version and platform metadata",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("%s %s %s/%s\n", constant.EmbyCon, constant.Version, runtime.GOOS, runtime.GOARCH)
	},
}
