package playback

import (
	"github.com/spf13/viper"
	"github.com/yeahme49/plugin.video.embycon/emby"
	"github.com/yeahme49/plugin.video.embycon/key"
	"github.com/yeahme49/plugin.video.embycon/util"
)

// InfoLabels carries the descriptive metadata handed to the host player
// alongside the play URL. A value of -1 means "not applicable".
type InfoLabels struct {
	Plot        string
	MediaType   string
	SeriesTitle string
	Episode     int
	Season      int
}

// Descriptor is the player-ready output of the negotiation pipeline.
type Descriptor struct {
	PlayURL           string
	Technique         Technique
	Title             string
	Properties        []Property
	ExternalSubtitles []string
	Info              InfoLabels

	// ResumeSeconds is the seek applied after playback starts; 0 means none.
	ResumeSeconds int
}

// BuildDescriptor assembles the descriptor for an item from a finished
// negotiation. Episode titles get a zero padded episode number prefix when
// configured, and the technique name is prepended to the plot so it stays
// visible in the player overlay.
func BuildDescriptor(item *emby.Item, negotiation *Negotiation) *Descriptor {
	title := item.Name
	if title == "" {
		title = "Missing title"
	}
	if item.Type == "Episode" && viper.GetBool(key.PlaybackAddEpisodeNumber) {
		prefix := ""
		if item.IndexNumber != nil {
			prefix = util.PadIndex(*item.IndexNumber)
		}
		title = prefix + " - " + title
	}

	plot := negotiation.Technique.String()
	if item.Overview != "" {
		plot += "\n" + item.Overview
	}

	info := InfoLabels{
		Plot:        plot,
		MediaType:   mediaType(item.Type),
		SeriesTitle: item.SeriesName,
		Episode:     -1,
		Season:      -1,
	}

	if item.Type == "Episode" {
		if item.IndexNumber != nil {
			info.Episode = *item.IndexNumber
		}
		if item.ParentIndexNumber != nil {
			info.Season = *item.ParentIndexNumber
		}
	} else if item.Type == "Season" && item.IndexNumber != nil {
		info.Season = *item.IndexNumber
	}

	return &Descriptor{
		PlayURL:           negotiation.PlayURL,
		Technique:         negotiation.Technique,
		Title:             title,
		Properties:        negotiation.Properties,
		ExternalSubtitles: negotiation.ExternalSubtitles,
		Info:              info,
	}
}

// mediaType maps the server item type onto the host player's media type label.
func mediaType(itemType string) string {
	switch itemType {
	case "Movie", "BoxSet":
		return "movie"
	case "Series":
		return "tvshow"
	case "Season":
		return "season"
	case "Episode":
		return "episode"
	default:
		return "video"
	}
}
