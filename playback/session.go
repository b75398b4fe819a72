package playback

import "sync"

// PlaySession is the tracked state of one playback, keyed in the Tracker by
// the exact stream URL handed to the host player.
type PlaySession struct {
	ItemID              string
	Technique           Technique
	PlaySessionID       string
	CurrentlyPlaying    bool
	Paused              bool
	LastPositionSeconds float64
}

// Tracker is the in-memory registry of playback sessions and the single
// authority for what is currently being driven.
//
// Entries are never evicted: a stopped session is retained with
// CurrentlyPlaying=false so a late stop report can still resolve. Acceptable
// accumulation for a process with one interactive session's lifetime.
type Tracker struct {
	mu       sync.Mutex
	sessions map[string]*PlaySession
}

// NewTracker creates an empty session registry.
func NewTracker() *Tracker {
	return &Tracker{sessions: make(map[string]*PlaySession)}
}

// Record inserts the session under the given URL, overwriting any prior entry
// for the same URL.
func (t *Tracker) Record(url string, session PlaySession) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sessions[url] = &session
}

// Get returns the session tracked under the URL, if any.
func (t *Tracker) Get(url string) (*PlaySession, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	session, ok := t.sessions[url]
	return session, ok
}

// MarkPlaying flags the session as actively playing and unpaused.
func (t *Tracker) MarkPlaying(url string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if session, ok := t.sessions[url]; ok {
		session.CurrentlyPlaying = true
		session.Paused = false
	}
}

// MarkPaused records the pause state of the session.
func (t *Tracker) MarkPaused(url string, paused bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if session, ok := t.sessions[url]; ok {
		session.Paused = paused
	}
}

// MarkPosition records the last known playback position in seconds.
func (t *Tracker) MarkPosition(url string, seconds float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if session, ok := t.sessions[url]; ok {
		session.LastPositionSeconds = seconds
	}
}

// MarkStopped flags the session as no longer playing but retains the record.
// Calling it on an already stopped or unknown URL is a no-op.
func (t *Tracker) MarkStopped(url string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if session, ok := t.sessions[url]; ok {
		session.CurrentlyPlaying = false
	}
}

// AllCurrentlyPlaying returns a snapshot of every session still flagged as playing.
func (t *Tracker) AllCurrentlyPlaying() map[string]*PlaySession {
	t.mu.Lock()
	defer t.mu.Unlock()
	playing := make(map[string]*PlaySession)
	for url, session := range t.sessions {
		if session.CurrentlyPlaying {
			playing[url] = session
		}
	}
	return playing
}
