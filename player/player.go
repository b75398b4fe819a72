// Package player defines the abstraction layer for the host media playback engine.
// The primary implementation targets 'mpv' via its JSON-IPC interface.
package player

// Player encapsulates the required capabilities of the host playback engine.
type Player interface {
	// Play starts playback of the given URL with the specified title.
	// If a player instance is already running, it loads the new file into it.
	Play(url string, title string) error

	// TogglePause inverts the current playback suspension state.
	TogglePause() error

	// Seek transitions the playback position to a specific absolute timestamp in seconds.
	Seek(seconds float64) error

	// GetTimePos retrieves the current absolute playback position in seconds.
	GetTimePos() (float64, error)

	// GetDuration retrieves the total temporal length of the active media file in seconds.
	GetDuration() (float64, error)

	// GetPausedStatus retrieves the current suspension state of the playback engine.
	GetPausedStatus() (bool, error)

	// GetPath retrieves the URL or path of the currently loaded media file.
	GetPath() (string, error)

	// HasActivePlayback verifies if the player has a media file currently initialized and active.
	HasActivePlayback() (bool, error)

	// IsRunning validates the liveness of the underlying playback process or handler.
	IsRunning() bool

	// Close terminates the playback engine and releases all associated system resources.
	Close() error

	// Wait returns a channel that is closed when the playback process terminates.
	Wait() <-chan struct{}
}

// Listener receives the lifecycle callbacks the Monitor synthesizes from player state.
// Callbacks are delivered one at a time from a single goroutine; for a given file,
// OnPlaybackStarted always precedes every other callback.
type Listener interface {
	OnPlaybackStarted(file string)
	OnPlaybackPaused(file string)
	OnPlaybackResumed(file string)
	OnPlaybackSeek(file string, seconds float64)
	OnPlaybackProgress(file string, seconds float64)
	OnPlaybackStopped(file string)
}
