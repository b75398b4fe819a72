package playback

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/mo"
	"github.com/yeahme49/plugin.video.embycon/dialog"
	"github.com/yeahme49/plugin.video.embycon/emby"
	"github.com/yeahme49/plugin.video.embycon/log"
)

// Audio bitrates requested from the server when transcoding, chosen from the
// channel count of the selected audio stream.
const (
	multiChannelBitrate = "384000"
	stereoBitrate       = "192000"
)

// Property is one ordered key/value pair attached to the player list item.
type Property struct {
	Key   string
	Value string
}

// Negotiation is the outcome of technique negotiation for one media source.
type Negotiation struct {
	PlayURL           string
	Technique         Technique
	Properties        []Property
	ExternalSubtitles []string
}

// Negotiator decides between direct play, direct stream and transcode, and
// resolves audio/subtitle selection into URL parameters or external subtitle
// references.
type Negotiator struct {
	server Server
	dialog dialog.Dialog
}

// NewNegotiator creates a negotiator against the given server and prompts.
func NewNegotiator(server Server, d dialog.Dialog) *Negotiator {
	return &Negotiator{server: server, dialog: d}
}

// Negotiate resolves the play URL and technique for the selected source.
//
// Strm-style sources short-circuit the decision: their embedded URL is used
// verbatim and an empty URL aborts. Transcode runs audio/subtitle negotiation;
// direct stream attaches any streamable external text subtitles.
func (n *Negotiator) Negotiate(itemID string, source *emby.MediaSource, forceTranscode, useDefault bool, playSessionID string) (*Negotiation, error) {
	if source.IsStrm() {
		playURL := strings.TrimSpace(source.Path)
		if playURL == "" {
			log.Debug("play aborted, strm source has no embedded url")
			return nil, ErrInvalidSource
		}
		return &Negotiation{
			PlayURL:   playURL,
			Technique: DirectPlay,
			Properties: []Property{
				{Key: "IsPlayable", Value: "true"},
			},
		}, nil
	}

	playURL, code, err := n.server.PlayURL(itemID, source, forceTranscode, playSessionID)
	if err != nil {
		return nil, fmt.Errorf("resolve play url: %w", err)
	}

	result := &Negotiation{
		PlayURL:   playURL,
		Technique: TechniqueFromCode(code),
	}

	switch result.Technique {
	case Transcode:
		result.PlayURL, result.ExternalSubtitles = n.negotiateTracks(playURL, itemID, source, useDefault)
	case DirectStream:
		result.ExternalSubtitles = n.streamableSubtitles(itemID, source)
	}

	return result, nil
}

// negotiateTracks appends audio/subtitle/bitrate query parameters for a
// transcoded play and collects external subtitle URLs for downloadable picks.
func (n *Negotiator) negotiateTracks(playURL, itemID string, source *emby.MediaSource, useDefault bool) (string, []string) {
	var (
		audioLabels     []string
		audioIndexes    []int
		channelsByIndex = map[int]int{}

		subtitleLabels  = []string{"No subtitles"}
		subtitleIndexes = []int{-1}
		downloadable    = map[int]bool{}

		externalSubs []string
	)

	for _, stream := range source.MediaStreams {
		switch {
		case strings.Contains(stream.Type, "Audio"):
			label := fmt.Sprintf("%d - %s %s", stream.Index, stream.Codec, stream.ChannelLayout)
			if stream.Language != "" {
				label = fmt.Sprintf("%d - %s - %s %s", stream.Index, stream.Language, stream.Codec, stream.ChannelLayout)
			}
			channelsByIndex[stream.Index] = stream.Channels
			audioLabels = append(audioLabels, label)
			audioIndexes = append(audioIndexes, stream.Index)

		case strings.Contains(stream.Type, "Subtitle"):
			label := fmt.Sprintf("%d - %s", stream.Index, stream.Codec)
			if stream.Language != "" {
				label = fmt.Sprintf("%d - %s", stream.Index, stream.Language)
			}
			if stream.IsDefault {
				label += " - Default"
			}
			if stream.IsForced {
				label += " - Forced"
			}
			if stream.IsDownloadable() {
				downloadable[stream.Index] = true
			}
			subtitleLabels = append(subtitleLabels, label)
			subtitleIndexes = append(subtitleIndexes, stream.Index)
		}
	}

	defaultAudio := 1
	if source.DefaultAudioStreamIndex != nil {
		defaultAudio = *source.DefaultAudioStreamIndex
	}
	defaultSubtitle := ""
	if source.DefaultSubtitleStreamIndex != nil {
		defaultSubtitle = strconv.Itoa(*source.DefaultSubtitleStreamIndex)
	}

	// The selected index is only known when a concrete stream was picked;
	// falling back to the source default leaves it absent, which matters for
	// the bitrate decision below.
	selectedAudio := mo.None[int]()

	switch {
	case useDefault:
		playURL += "&AudioStreamIndex=" + strconv.Itoa(defaultAudio)
	case len(audioLabels) > 1:
		choice := n.dialog.Select("Select audio stream", audioLabels)
		if choice > -1 {
			selectedAudio = mo.Some(audioIndexes[choice])
			playURL += "&AudioStreamIndex=" + strconv.Itoa(audioIndexes[choice])
		} else {
			playURL += "&AudioStreamIndex=" + strconv.Itoa(defaultAudio)
		}
	case len(audioLabels) == 1:
		selectedAudio = mo.Some(audioIndexes[0])
		playURL += "&AudioStreamIndex=" + strconv.Itoa(audioIndexes[0])
	}

	if len(subtitleLabels) > 1 {
		if useDefault {
			playURL += "&SubtitleStreamIndex=" + defaultSubtitle
		} else {
			choice := n.dialog.Select("Select subtitle", subtitleLabels)
			switch {
			case choice == 0:
				// no subtitles
			case choice > 0:
				index := subtitleIndexes[choice]
				if downloadable[index] {
					url := n.server.SubtitleURL(itemID, index, "srt")
					log.Debugf("streaming subtitles url: %d %s", index, url)
					externalSubs = append(externalSubs, url)
				} else {
					// server burns the subtitle into the transcoded stream
					playURL += "&SubtitleStreamIndex=" + strconv.Itoa(index)
				}
			default:
				playURL += "&SubtitleStreamIndex=" + defaultSubtitle
			}
		}
	}

	// Runs even when no audio prompt occurred. An unknown channel count is
	// treated as stereo.
	bitrate := stereoBitrate
	if index, ok := selectedAudio.Get(); ok && channelsByIndex[index] > 2 {
		bitrate = multiChannelBitrate
	}
	playURL += "&AudioBitrate=" + bitrate

	return playURL, externalSubs
}

// streamableSubtitles collects external subtitle URLs for a direct stream:
// one per subtitle stream that is external, text based and streamable.
func (n *Negotiator) streamableSubtitles(itemID string, source *emby.MediaSource) []string {
	var urls []string
	for _, stream := range source.MediaStreams {
		if stream.Type == "Subtitle" && stream.IsDownloadable() {
			urls = append(urls, n.server.SubtitleURL(itemID, stream.Index, stream.Codec))
		}
	}
	return urls
}
