package playback

import (
	"github.com/yeahme49/plugin.video.embycon/dialog"
	"github.com/yeahme49/plugin.video.embycon/emby"
	"github.com/yeahme49/plugin.video.embycon/log"
)

// SelectMediaSource picks exactly one source for playback.
//
// Rules, in order: no sources aborts; a single source is taken without a
// prompt; an explicitly requested source id is honored when it matches and
// aborts when it does not; otherwise the user chooses from the source names
// and backing out aborts.
func SelectMediaSource(sources []emby.MediaSource, requestedID string, d dialog.Dialog) (*emby.MediaSource, error) {
	if len(sources) == 0 {
		log.Debug("play failed, item has no media sources")
		return nil, ErrNoMediaSource
	}

	if len(sources) == 1 {
		return &sources[0], nil
	}

	if requestedID != "" {
		for i := range sources {
			if sources[i].ID == requestedID {
				return &sources[i], nil
			}
		}
		log.Debugf("play aborted, requested media source %s not found", requestedID)
		return nil, ErrNoMediaSource
	}

	names := make([]string, len(sources))
	for i, source := range sources {
		name := source.Name
		if name == "" {
			name = "na"
		}
		names[i] = name
	}

	choice := d.Select("Select media source", names)
	if choice < 0 {
		log.Debug("play aborted, user did not select a media source")
		return nil, ErrUserCancelled
	}
	return &sources[choice], nil
}
