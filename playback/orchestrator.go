package playback

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/viper"
	"github.com/yeahme49/plugin.video.embycon/key"
	"github.com/yeahme49/plugin.video.embycon/log"
	"github.com/yeahme49/plugin.video.embycon/player"
)

// Seek convergence tuning. The player needs a moment after loading before it
// honors absolute seeks, so the target is retried until the reported position
// lands near it or the attempts run out.
const (
	seekSettleTolerance = 5.0
	seekRetryInterval   = 100 * time.Millisecond
	seekMaxAttempts     = 100

	activeWaitInterval = time.Second
	activeWaitAttempts = 10
)

// Orchestrator drives one play request end to end: item lookup, source
// selection, resume resolution, technique negotiation, session registration
// and the player hand-off.
type Orchestrator struct {
	server     Server
	player     player.Player
	tracker    *Tracker
	resolver   *ResumeResolver
	negotiator *Negotiator

	// announceNext surfaces the upcoming episode to the host UI once playback
	// is handed off. May be nil.
	announceNext func(current, next string)
}

// NewOrchestrator wires the playback pipeline. announceNext may be nil when
// the host has no notification surface.
func NewOrchestrator(
	server Server,
	p player.Player,
	tracker *Tracker,
	resolver *ResumeResolver,
	negotiator *Negotiator,
	announceNext func(current, next string),
) *Orchestrator {
	return &Orchestrator{
		server:       server,
		player:       p,
		tracker:      tracker,
		resolver:     resolver,
		negotiator:   negotiator,
		announceNext: announceNext,
	}
}

// Play runs the full pipeline for one request. Pipeline aborts, like a
// cancelled prompt or a source-less item, are logged and reported as nil;
// real failures come back as errors.
func (o *Orchestrator) Play(req PlayRequest) error {
	log.Debugf("play request: %+v", req)

	descriptor, err := o.prepare(req)
	if err != nil {
		if IsAbort(err) {
			log.Debugf("play aborted: %v", err)
			return nil
		}
		return err
	}

	if err := o.player.Play(descriptor.PlayURL, descriptor.Title); err != nil {
		return fmt.Errorf("start player: %w", err)
	}

	o.announceUpcoming(req.ItemID)
	o.applyResume(descriptor.ResumeSeconds)

	return nil
}

// prepare resolves the request into a ready-to-play descriptor and registers
// the session with the tracker. Registration happens before the player is
// touched so the started callback always finds the session.
func (o *Orchestrator) prepare(req PlayRequest) (*Descriptor, error) {
	item, err := o.server.Item(req.ItemID)
	if err != nil {
		return nil, fmt.Errorf("fetch item: %w", err)
	}
	if item == nil {
		return nil, ErrMissingItem
	}

	source, err := SelectMediaSource(item.MediaSources, req.MediaSourceID, o.negotiator.dialog)
	if err != nil {
		return nil, err
	}

	resumeSeconds, err := o.resolver.Resolve(req, item)
	if err != nil {
		return nil, err
	}

	playSessionID := uuid.NewString()

	negotiation, err := o.negotiator.Negotiate(item.ID, source, req.ForceTranscode, req.UseDefaultTracks, playSessionID)
	if err != nil {
		return nil, err
	}

	descriptor := BuildDescriptor(item, negotiation)
	descriptor.ResumeSeconds = resumeSeconds

	log.Debugf("play url: %s (%s)", descriptor.PlayURL, descriptor.Technique)

	o.tracker.Record(descriptor.PlayURL, PlaySession{
		ItemID:        item.ID,
		Technique:     descriptor.Technique,
		PlaySessionID: playSessionID,
	})

	return descriptor, nil
}

// announceUpcoming looks up the episode after the one now playing and hands
// both names to the notification hook.
func (o *Orchestrator) announceUpcoming(itemID string) {
	if o.announceNext == nil {
		return
	}

	item, err := o.server.Item(itemID)
	if err != nil || item == nil || item.Type != "Episode" {
		return
	}

	next, err := o.server.NextEpisode(item)
	if err != nil || next == nil {
		return
	}

	index := -1
	if next.IndexNumber != nil {
		index = *next.IndexNumber
	}
	o.announceNext(item.Name, fmt.Sprintf("%02d - %s", index, next.Name))
}

// applyResume waits for playback to become active, then drives the position
// to the resume point minus the configured jump-back. The seek is retried
// because early seeks are silently dropped while the player is still loading.
func (o *Orchestrator) applyResume(resumeSeconds int) {
	if resumeSeconds <= 0 {
		return
	}

	for attempt := 0; attempt < activeWaitAttempts; attempt++ {
		active, err := o.player.HasActivePlayback()
		if err == nil && active {
			break
		}
		time.Sleep(activeWaitInterval)
	}

	target := float64(resumeSeconds - viper.GetInt(key.PlaybackJumpBackSeconds))
	if target <= 0 {
		return
	}

	log.Debugf("resuming playback at %.0fs", target)
	for attempt := 0; attempt < seekMaxAttempts; attempt++ {
		position, err := o.player.GetTimePos()
		if err == nil && position >= target-seekSettleTolerance {
			return
		}
		time.Sleep(seekRetryInterval)
		if err := o.player.Seek(target); err != nil {
			log.Errorf("resume seek: %v", err)
			return
		}
		time.Sleep(seekRetryInterval)
	}
	log.Debug("resume seek did not settle, leaving position as is")
}
