package playback

import (
	"github.com/yeahme49/plugin.video.embycon/emby"
	"github.com/yeahme49/plugin.video.embycon/log"
)

// Reporter serializes session state into the server's start/progress/stop
// reports. Reporting is best-effort telemetry: failures are logged and
// swallowed, never surfaced to playback.
type Reporter struct {
	server Server
}

// NewReporter creates a reporter against the given server.
func NewReporter(server Server) *Reporter {
	return &Reporter{server: server}
}

// usableItemID reports whether a session resolved a real item id. The literal
// "None" guards against placeholder ids leaking out of the signal path.
func usableItemID(id string) bool {
	return id != "" && id != "None"
}

// positionTicks converts a position in seconds to server ticks.
func positionTicks(seconds float64) int64 {
	return int64(seconds * float64(TicksPerSecond))
}

// Start reports the beginning of a session. Suppressed for sessions that
// never resolved an item id.
func (r *Reporter) Start(session *PlaySession) {
	if !usableItemID(session.ItemID) {
		log.Debug("start report suppressed, session has no usable item id")
		return
	}

	err := r.server.ReportPlaybackStart(emby.StartReport{
		QueueableMediaTypes: "Video",
		CanSeek:             true,
		ItemID:              session.ItemID,
		MediaSourceID:       session.ItemID,
		PlayMethod:          session.Technique.String(),
		PlaySessionID:       session.PlaySessionID,
	})
	if err != nil {
		log.Errorf("report playback start: %v", err)
	}
}

// Progress reports the current position and pause state of a session.
func (r *Reporter) Progress(session *PlaySession) {
	if !usableItemID(session.ItemID) {
		return
	}

	err := r.server.ReportPlaybackProgress(emby.ProgressReport{
		QueueableMediaTypes: "Video",
		CanSeek:             true,
		ItemID:              session.ItemID,
		MediaSourceID:       session.ItemID,
		PositionTicks:       positionTicks(session.LastPositionSeconds),
		IsPaused:            session.Paused,
		IsMuted:             false,
		PlayMethod:          session.Technique.String(),
		PlaySessionID:       session.PlaySessionID,
	})
	if err != nil {
		log.Errorf("report playback progress: %v", err)
	}
}

// Stop reports the final position of a session. Suppressed for sessions that
// never resolved an item id; the suppression also blocks the continuation
// checks downstream.
func (r *Reporter) Stop(session *PlaySession) bool {
	if !usableItemID(session.ItemID) {
		log.Debug("stop report suppressed, session has no usable item id")
		return false
	}

	err := r.server.ReportPlaybackStopped(emby.StopReport{
		ItemID:        session.ItemID,
		MediaSourceID: session.ItemID,
		PositionTicks: positionTicks(session.LastPositionSeconds),
	})
	if err != nil {
		log.Errorf("report playback stopped: %v", err)
	}
	return true
}
