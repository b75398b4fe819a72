// Package emby implements the client for the remote Emby media server API.
package emby

// Item is the server-side metadata for a single library item.
// Fetched fresh per play request; never cached across calls so resume
// positions are always current.
type Item struct {
	ID                string        `json:"Id"`
	Name              string        `json:"Name"`
	Type              string        `json:"Type"`
	Overview          string        `json:"Overview"`
	SeriesID          string        `json:"SeriesId"`
	SeriesName        string        `json:"SeriesName"`
	IndexNumber       *int          `json:"IndexNumber"`
	ParentIndexNumber *int          `json:"ParentIndexNumber"`
	RunTimeTicks      int64         `json:"RunTimeTicks"`
	UserData          UserData      `json:"UserData"`
	MediaSources      []MediaSource `json:"MediaSources"`
}

// UserData carries the per-user playback state the server stores for an item.
type UserData struct {
	PlaybackPositionTicks int64 `json:"PlaybackPositionTicks"`
	PlayCount             int   `json:"PlayCount"`
	Played                bool  `json:"Played"`
}

// MediaSource is one physical variant of an item. Exactly one is selected per playback.
type MediaSource struct {
	ID                         string        `json:"Id"`
	Name                       string        `json:"Name"`
	Path                       string        `json:"Path"`
	Container                  string        `json:"Container"`
	SupportsDirectPlay         bool          `json:"SupportsDirectPlay"`
	SupportsDirectStream       bool          `json:"SupportsDirectStream"`
	DefaultAudioStreamIndex    *int          `json:"DefaultAudioStreamIndex"`
	DefaultSubtitleStreamIndex *int          `json:"DefaultSubtitleStreamIndex"`
	MediaStreams               []MediaStream `json:"MediaStreams"`
}

// IsStrm reports whether the source is a pre-resolved stream reference whose
// "file" is itself a pointer to a playable URL rather than raw media.
func (s *MediaSource) IsStrm() bool {
	return s.Container == "strm"
}

// MediaStream is a single audio, subtitle or video track within a source.
type MediaStream struct {
	Index                  int    `json:"Index"`
	Type                   string `json:"Type"`
	Codec                  string `json:"Codec"`
	Language               string `json:"Language"`
	Channels               int    `json:"Channels"`
	ChannelLayout          string `json:"ChannelLayout"`
	IsDefault              bool   `json:"IsDefault"`
	IsForced               bool   `json:"IsForced"`
	IsExternal             bool   `json:"IsExternal"`
	IsTextSubtitleStream   bool   `json:"IsTextSubtitleStream"`
	SupportsExternalStream bool   `json:"SupportsExternalStream"`
}

// IsDownloadable reports whether a subtitle stream can be fetched by the client
// as an external file rather than burned into the video by the server.
func (s *MediaStream) IsDownloadable() bool {
	return s.IsExternal && s.IsTextSubtitleStream && s.SupportsExternalStream
}

// ItemsResult is the envelope the server returns for item collection queries.
type ItemsResult struct {
	Items            []Item `json:"Items"`
	TotalRecordCount int    `json:"TotalRecordCount"`
}
