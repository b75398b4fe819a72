package playback

import "github.com/yeahme49/plugin.video.embycon/emby"

// Server is the slice of the remote API the playback pipeline depends on.
// *emby.Client satisfies it; tests substitute scripted doubles.
type Server interface {
	Item(id string) (*emby.Item, error)
	PlayURL(itemID string, source *emby.MediaSource, forceTranscode bool, playSessionID string) (url string, techniqueCode string, err error)
	SubtitleURL(itemID string, streamIndex int, codec string) string
	NextEpisode(item *emby.Item) (*emby.Item, error)
	DeleteItem(id string) error
	ReportPlaybackStart(report emby.StartReport) error
	ReportPlaybackProgress(report emby.ProgressReport) error
	ReportPlaybackStopped(report emby.StopReport) error
}
