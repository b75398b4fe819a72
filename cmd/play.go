// Package cmd implements the command-line interface for embycon.
package cmd

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/yeahme49/plugin.video.embycon/playback"
)

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().StringP("item", "i", "", "Id of the library item to play")
	playCmd.Flags().StringP("media-source", "m", "", "Id of the media source to use when the item has several")
	playCmd.Flags().Int64P("resume-ticks", "r", playback.NoAutoResume, "Resume position in server ticks, skipping the resume prompt")
	playCmd.Flags().BoolP("force-transcode", "t", false, "Force a transcoded stream even when direct play is possible")
	playCmd.Flags().BoolP("use-default", "d", false, "Use the source's default audio and subtitle tracks without prompting")

	lo.Must0(playCmd.MarkFlagRequired("item"))
}

// playCmd plays a single item and exits when the player does.
var playCmd = &cobra.Command{
	Use:     "play",
	Short:   "Play a single library item and exit when playback ends",
	Example: "  embycon play --item 12345 --resume-ticks 123456789",
	Run: func(cmd *cobra.Command, args []string) {
		CheckDependencies()

		request := playback.PlayRequest{
			ItemID:           lo.Must(cmd.Flags().GetString("item")),
			MediaSourceID:    lo.Must(cmd.Flags().GetString("media-source")),
			AutoResumeTicks:  lo.Must(cmd.Flags().GetInt64("resume-ticks")),
			ForceTranscode:   lo.Must(cmd.Flags().GetBool("force-transcode")),
			UseDefaultTracks: lo.Must(cmd.Flags().GetBool("use-default")),
		}

		service, err := newService()
		handleErr(err)
		defer service.shutdown()

		// The receiver drains the queue the advisor's play-next requests are
		// submitted to, so a confirmed next episode actually plays.
		handleErr(service.receiver.Start())
		service.monitor.Start()

		handleErr(service.orchestrator.Play(request))

		// An aborted pipeline never starts the player; nothing to wait for.
		if !service.player.IsRunning() {
			return
		}
		<-service.player.Wait()
	},
}
