// Package playback implements the playback session state machine and negotiation pipeline:
// media source selection, resume resolution, playback technique negotiation, session
// tracking, server progress reporting and post-stop continuation.
package playback

import "errors"

// NoAutoResume is the sentinel for "no resume override requested".
const NoAutoResume int64 = -1

// TicksPerSecond is the remote server's time unit: one tick is 100 nanoseconds.
const TicksPerSecond int64 = 10000000

// PlayRequest asks the pipeline to play one library item. Immutable; consumed once.
// The wire format matches the hex-encoded signal payload, where auto_resume travels
// as a quoted number.
type PlayRequest struct {
	ItemID           string `json:"item_id"`
	AutoResumeTicks  int64  `json:"auto_resume,string"`
	ForceTranscode   bool   `json:"force_transcode"`
	MediaSourceID    string `json:"media_source_id"`
	UseDefaultTracks bool   `json:"use_default"`
}

// NewPlayRequest returns a request for the given item with no resume override.
func NewPlayRequest(itemID string) PlayRequest {
	return PlayRequest{ItemID: itemID, AutoResumeTicks: NoAutoResume}
}

// Abort conditions of the pre-playback pipeline. All of them stop the pipeline
// without starting playback; none of them is a user-visible failure.
var (
	// ErrNoMediaSource means the item carries no media sources at all.
	ErrNoMediaSource = errors.New("item has no media sources")

	// ErrUserCancelled means the user backed out of a selection or resume prompt.
	ErrUserCancelled = errors.New("cancelled by user")

	// ErrInvalidSource means a strm-style source carried no resolvable URL.
	ErrInvalidSource = errors.New("strm source has no resolvable url")

	// ErrMissingItem means the server returned no item for the requested id.
	ErrMissingItem = errors.New("item not found on server")
)

// IsAbort reports whether err is one of the silent pipeline abort conditions.
func IsAbort(err error) bool {
	return errors.Is(err, ErrNoMediaSource) ||
		errors.Is(err, ErrUserCancelled) ||
		errors.Is(err, ErrInvalidSource) ||
		errors.Is(err, ErrMissingItem)
}
