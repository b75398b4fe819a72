// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Emby Server Connection - these keys identify the remote media server and the credentials used against it.
const (
	EmbyServer      = "emby.server"
	EmbyUserID      = "emby.user_id"
	EmbyAccessToken = "emby.access_token"
	EmbyDeviceID    = "emby.device_id"
)

// Media Playback - these keys govern source selection, resume behavior and the descriptor handed to the player.
const (
	PlaybackSelectAction     = "playback.select_action"
	PlaybackJumpBackSeconds  = "playback.jump_back_seconds"
	PlaybackAddEpisodeNumber = "playback.add_episode_number"
	PlaybackMaxBitrate       = "playback.max_bitrate"
	Player                   = "player.default"
)

// Post-Stop Continuation - these keys set the completion-percentage thresholds for the stop prompts.
// A value of 100 disables the corresponding prompt.
const (
	PromptDeleteEpisodePercentage = "prompts.delete_episode_percentage"
	PromptDeleteMoviePercentage   = "prompts.delete_movie_percentage"
	PromptPlayNextPercentage      = "prompts.play_next_percentage"
	PromptPlayNextConfirm         = "prompts.play_next_confirm"
)

// History Tracking - these keys configure the persistence of playback completion state.
const (
	HistorySaveOnStop = "history.save_on_stop"
)

// Remote Signal Path - these keys configure the out-of-process play-request listener.
const (
	SignalSocket = "signal.socket"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern terminal output behavior.
const (
	CliColored = "cli.colored"
)
