// Package cmd implements the command-line interface for embycon.
package cmd

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yeahme49/plugin.video.embycon/key"
	"github.com/yeahme49/plugin.video.embycon/playback"
	embysignal "github.com/yeahme49/plugin.video.embycon/signal"
	"github.com/yeahme49/plugin.video.embycon/where"
)

func init() {
	rootCmd.AddCommand(sendCmd)

	sendCmd.Flags().StringP("item", "i", "", "Id of the library item to play")
	sendCmd.Flags().StringP("media-source", "m", "", "Id of the media source to use when the item has several")
	sendCmd.Flags().Int64P("resume-ticks", "r", playback.NoAutoResume, "Resume position in server ticks, skipping the resume prompt")
	sendCmd.Flags().BoolP("force-transcode", "t", false, "Force a transcoded stream even when direct play is possible")
	sendCmd.Flags().BoolP("use-default", "d", false, "Use the source's default audio and subtitle tracks without prompting")

	lo.Must0(sendCmd.MarkFlagRequired("item"))
}

// sendCmd hands a play request to an already running service instance.
var sendCmd = &cobra.Command{
	Use:     "send",
	Short:   "Send a play request to a running embycon service",
	Example: "  embycon send --item 12345",
	Run: func(cmd *cobra.Command, args []string) {
		request := playback.PlayRequest{
			ItemID:           lo.Must(cmd.Flags().GetString("item")),
			MediaSourceID:    lo.Must(cmd.Flags().GetString("media-source")),
			AutoResumeTicks:  lo.Must(cmd.Flags().GetInt64("resume-ticks")),
			ForceTranscode:   lo.Must(cmd.Flags().GetBool("force-transcode")),
			UseDefaultTracks: lo.Must(cmd.Flags().GetBool("use-default")),
		}

		socketPath := viper.GetString(key.SignalSocket)
		if socketPath == "" {
			socketPath = where.Signal()
		}

		handleErr(embysignal.Send(socketPath, request))
		fmt.Printf("sent play request for %s\n", request.ItemID)
	},
}
