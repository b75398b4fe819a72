// Package cmd implements the command-line interface for embycon.
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
	"github.com/yeahme49/plugin.video.embycon/dialog"
	"github.com/yeahme49/plugin.video.embycon/emby"
	"github.com/yeahme49/plugin.video.embycon/key"
	"github.com/yeahme49/plugin.video.embycon/log"
	"github.com/yeahme49/plugin.video.embycon/playback"
	"github.com/yeahme49/plugin.video.embycon/player"
	embysignal "github.com/yeahme49/plugin.video.embycon/signal"
	"github.com/yeahme49/plugin.video.embycon/where"
)

// service holds the fully wired playback pipeline shared by the root service
// loop and the one-shot play command.
type service struct {
	client       *emby.Client
	player       player.Player
	monitor      *player.Monitor
	receiver     *embysignal.Receiver
	orchestrator *playback.Orchestrator
}

// newService wires the pipeline. The advisor's next-episode requests are
// submitted back through the receiver queue so they never interleave with an
// externally signalled play.
func newService() (*service, error) {
	if viper.GetString(key.EmbyServer) == "" {
		return nil, errors.New("no emby server configured, set " + key.EmbyServer)
	}

	s := &service{
		client: emby.FromConfig(),
		player: player.NewMPV(),
	}

	prompts := dialog.Survey{}
	tracker := playback.NewTracker()
	reporter := playback.NewReporter(s.client)
	resolver := playback.NewResumeResolver(prompts)
	negotiator := playback.NewNegotiator(s.client, prompts)

	advisor := playback.NewAdvisor(s.client, prompts, func(req playback.PlayRequest) {
		if s.receiver != nil {
			s.receiver.Submit(req)
		}
	}, nil)

	s.orchestrator = playback.NewOrchestrator(
		s.client, s.player, tracker, resolver, negotiator, announceNextEpisode,
	)

	listener := playback.NewSessionListener(tracker, reporter, advisor)
	s.monitor = player.NewMonitor(s.player, listener)

	socketPath := viper.GetString(key.SignalSocket)
	if socketPath == "" {
		socketPath = where.Signal()
	}
	s.receiver = embysignal.NewReceiver(socketPath, func(req playback.PlayRequest) {
		if err := s.orchestrator.Play(req); err != nil {
			log.Errorf("signalled play: %v", err)
		}
	})

	return s, nil
}

// shutdown stops the signal receiver and the monitor, then closes the player.
// The monitor stop flushes a final stopped callback for any live session.
func (s *service) shutdown() {
	s.receiver.Stop()
	s.monitor.Stop()
	if err := s.player.Close(); err != nil {
		log.Errorf("close player: %v", err)
	}
}

// announceNextEpisode surfaces the upcoming episode once playback starts.
func announceNextEpisode(current, next string) {
	log.Infof("up next after %s: %s", current, next)
	fmt.Printf("Up next: %s\n", next)
}
