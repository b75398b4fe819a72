// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// EmbyCon is the canonical application identifier used for filesystem paths and CLI branding.
	EmbyCon = "embycon"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// ClientName is the client identifier reported to the Emby server in authorization headers.
	ClientName = "EmbyCon"

	// PlaySignal is the notification method name carrying an externally delivered play request.
	PlaySignal = "embycon_play_action"

	// NextEpisodeSignal is the notification method name announcing the upcoming episode of the
	// item that just started playing.
	NextEpisodeSignal = "embycon_next_episode"

	// SignalSenderSuffix is the required suffix on a notification sender before its payload is
	// decoded. Notifications from other senders are ignored.
	SignalSenderSuffix = ".SIGNAL"
)
