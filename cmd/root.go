// Package cmd implements the command-line interface for embycon.
package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yeahme49/plugin.video.embycon/constant"
	"github.com/yeahme49/plugin.video.embycon/key"
	"github.com/yeahme49/plugin.video.embycon/log"
	"github.com/yeahme49/plugin.video.embycon/util"
	"github.com/yeahme49/plugin.video.embycon/where"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("server", "s", "", "Base URL of the Emby server")
	lo.Must0(viper.BindPFlag(key.EmbyServer, rootCmd.PersistentFlags().Lookup("server")))

	rootCmd.PersistentFlags().String("socket", "", "Unix socket path for the play-request signal listener")
	lo.Must0(viper.BindPFlag(key.SignalSocket, rootCmd.PersistentFlags().Lookup("socket")))

	// Initialize cleanup of localized temporary files on application startup.
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd runs the playback service: it listens for play-request signals and
// drives the player until interrupted.
var rootCmd = &cobra.Command{
	Use:   constant.EmbyCon,
	Short: "A playback companion for Emby that drives a local media player",
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		CheckDependencies()

		service, err := newService()
		handleErr(err)
		defer service.shutdown()

		handleErr(service.receiver.Start())
		service.monitor.Start()

		log.Info("embycon service started")

		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
		<-interrupt
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "✗ %s\n", strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
