package playback

import (
	"github.com/yeahme49/plugin.video.embycon/log"
)

// StopHandler receives the final state of each stopped session after its stop
// report went out. The Advisor is the production implementation.
type StopHandler interface {
	AfterStop(itemID string, positionSeconds float64)
}

// StopHandlerFunc adapts a function to the StopHandler interface.
type StopHandlerFunc func(itemID string, positionSeconds float64)

func (f StopHandlerFunc) AfterStop(itemID string, positionSeconds float64) {
	f(itemID, positionSeconds)
}

// SessionListener translates player lifecycle callbacks into tracker updates
// and server reports. It implements player.Listener.
//
// Files the tracker does not know were started outside the pipeline and are
// left alone except for the stop sweep, which always runs so no session can
// outlive the playback that carried it.
type SessionListener struct {
	tracker  *Tracker
	reporter *Reporter
	onStop   StopHandler
}

// NewSessionListener creates a listener. onStop may be nil when no
// continuation handling is wanted.
func NewSessionListener(tracker *Tracker, reporter *Reporter, onStop StopHandler) *SessionListener {
	return &SessionListener{tracker: tracker, reporter: reporter, onStop: onStop}
}

// OnPlaybackStarted sweeps any session still flagged as playing, then marks
// and reports the new one. The sweep first means a replaced playback closes
// its predecessor before the successor opens.
func (l *SessionListener) OnPlaybackStarted(file string) {
	l.stopAll()

	session, ok := l.tracker.Get(file)
	if !ok {
		log.Debugf("playback of %s not started by us, ignoring", file)
		return
	}

	l.tracker.MarkPlaying(file)
	l.reporter.Start(session)
}

func (l *SessionListener) OnPlaybackPaused(file string) {
	session, ok := l.tracker.Get(file)
	if !ok {
		return
	}
	l.tracker.MarkPaused(file, true)
	l.reporter.Progress(session)
}

func (l *SessionListener) OnPlaybackResumed(file string) {
	session, ok := l.tracker.Get(file)
	if !ok {
		return
	}
	l.tracker.MarkPaused(file, false)
	l.reporter.Progress(session)
}

func (l *SessionListener) OnPlaybackSeek(file string, seconds float64) {
	session, ok := l.tracker.Get(file)
	if !ok {
		return
	}
	l.tracker.MarkPosition(file, seconds)
	l.reporter.Progress(session)
}

func (l *SessionListener) OnPlaybackProgress(file string, seconds float64) {
	session, ok := l.tracker.Get(file)
	if !ok {
		return
	}
	l.tracker.MarkPosition(file, seconds)
	l.reporter.Progress(session)
}

// OnPlaybackStopped runs the stop sweep. The file argument is ignored on
// purpose: sweeping everything still flagged as playing also catches sessions
// whose stop callback never fired.
func (l *SessionListener) OnPlaybackStopped(string) {
	l.stopAll()
}

// stopAll marks every playing session stopped, reports the stop, and hands
// reportable sessions to the continuation handler.
func (l *SessionListener) stopAll() {
	for url, session := range l.tracker.AllCurrentlyPlaying() {
		log.Debugf("stopping session: %s at %.0fs", session.ItemID, session.LastPositionSeconds)
		l.tracker.MarkStopped(url)

		if !l.reporter.Stop(session) {
			continue
		}
		if l.onStop != nil {
			l.onStop.AfterStop(session.ItemID, session.LastPositionSeconds)
		}
	}
}
