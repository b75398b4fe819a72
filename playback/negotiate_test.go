package playback

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/yeahme49/plugin.video.embycon/emby"
)

func twoTrackSource() *emby.MediaSource {
	return &emby.MediaSource{
		ID: "a",
		MediaStreams: []emby.MediaStream{
			{Index: 1, Type: "Audio", Codec: "aac", Language: "eng", Channels: 2, ChannelLayout: "stereo"},
			{Index: 2, Type: "Audio", Codec: "dts", Language: "jpn", Channels: 6, ChannelLayout: "5.1"},
			{Index: 3, Type: "Subtitle", Codec: "srt", Language: "eng", IsDefault: true},
			{Index: 4, Type: "Subtitle", Codec: "ass", Language: "jpn"},
		},
		DefaultAudioStreamIndex:    intPtr(1),
		DefaultSubtitleStreamIndex: intPtr(3),
	}
}

func TestNegotiate(t *testing.T) {
	Convey("Negotiate", t, func() {
		server := &fakeServer{playURL: "http://emby/stream", techniqueCode: "0"}

		Convey("A strm source plays its embedded url directly", func() {
			negotiator := NewNegotiator(server, &scriptedDialog{})
			source := &emby.MediaSource{Container: "strm", Path: " http://other/stream \n"}

			result, err := negotiator.Negotiate("1", source, false, false, "ps")
			So(err, ShouldBeNil)
			So(result.PlayURL, ShouldEqual, "http://other/stream")
			So(result.Technique, ShouldEqual, DirectPlay)
			So(result.Properties, ShouldResemble, []Property{{Key: "IsPlayable", Value: "true"}})
		})

		Convey("A strm source without a url aborts", func() {
			negotiator := NewNegotiator(server, &scriptedDialog{})
			source := &emby.MediaSource{Container: "strm", Path: "  "}

			_, err := negotiator.Negotiate("1", source, false, false, "ps")
			So(err, ShouldEqual, ErrInvalidSource)
		})

		Convey("Direct play passes the url through untouched", func() {
			negotiator := NewNegotiator(server, &scriptedDialog{})

			result, err := negotiator.Negotiate("1", &emby.MediaSource{}, false, false, "ps")
			So(err, ShouldBeNil)
			So(result.PlayURL, ShouldEqual, "http://emby/stream")
			So(result.Technique, ShouldEqual, DirectPlay)
			So(result.ExternalSubtitles, ShouldBeEmpty)
		})

		Convey("Direct stream collects streamable external subtitles", func() {
			server.techniqueCode = "1"
			negotiator := NewNegotiator(server, &scriptedDialog{})
			source := &emby.MediaSource{
				MediaStreams: []emby.MediaStream{
					{Index: 3, Type: "Subtitle", Codec: "srt", IsExternal: true, IsTextSubtitleStream: true, SupportsExternalStream: true},
					{Index: 4, Type: "Subtitle", Codec: "pgs"},
				},
			}

			result, err := negotiator.Negotiate("1", source, false, false, "ps")
			So(err, ShouldBeNil)
			So(result.Technique, ShouldEqual, DirectStream)
			So(result.ExternalSubtitles, ShouldResemble, []string{"http://emby/Videos/1/Subtitles/3/Stream.srt"})
		})
	})
}

func TestNegotiateTracks(t *testing.T) {
	Convey("Given a transcoded play with two audio and two subtitle tracks", t, func() {
		server := &fakeServer{playURL: "http://emby/master.m3u8?x=1", techniqueCode: "2"}

		Convey("Picking the surround track requests the higher bitrate", func() {
			prompts := &scriptedDialog{selections: []int{1, 0}}
			negotiator := NewNegotiator(server, prompts)

			result, err := negotiator.Negotiate("1", twoTrackSource(), true, false, "ps")
			So(err, ShouldBeNil)
			So(result.Technique, ShouldEqual, Transcode)
			So(result.PlayURL, ShouldContainSubstring, "&AudioStreamIndex=2")
			So(result.PlayURL, ShouldNotContainSubstring, "SubtitleStreamIndex")
			So(result.PlayURL, ShouldEndWith, "&AudioBitrate=384000")

			So(prompts.selectOptions[0], ShouldResemble, []string{
				"1 - eng - aac stereo",
				"2 - jpn - dts 5.1",
			})
			So(prompts.selectOptions[1][0], ShouldEqual, "No subtitles")
		})

		Convey("Picking the stereo track requests the lower bitrate", func() {
			prompts := &scriptedDialog{selections: []int{0, 0}}
			negotiator := NewNegotiator(server, prompts)

			result, err := negotiator.Negotiate("1", twoTrackSource(), true, false, "ps")
			So(err, ShouldBeNil)
			So(result.PlayURL, ShouldContainSubstring, "&AudioStreamIndex=1")
			So(result.PlayURL, ShouldEndWith, "&AudioBitrate=192000")
		})

		Convey("Cancelling the audio prompt falls back to the default and stereo bitrate", func() {
			prompts := &scriptedDialog{selections: []int{}}
			negotiator := NewNegotiator(server, prompts)

			result, err := negotiator.Negotiate("1", twoTrackSource(), true, false, "ps")
			So(err, ShouldBeNil)
			So(result.PlayURL, ShouldContainSubstring, "&AudioStreamIndex=1")
			So(result.PlayURL, ShouldEndWith, "&AudioBitrate=192000")
		})

		Convey("Using defaults skips both prompts", func() {
			prompts := &scriptedDialog{}
			negotiator := NewNegotiator(server, prompts)

			result, err := negotiator.Negotiate("1", twoTrackSource(), true, true, "ps")
			So(err, ShouldBeNil)
			So(result.PlayURL, ShouldContainSubstring, "&AudioStreamIndex=1")
			So(result.PlayURL, ShouldContainSubstring, "&SubtitleStreamIndex=3")
			So(result.PlayURL, ShouldEndWith, "&AudioBitrate=192000")
			So(prompts.selectTitles, ShouldBeEmpty)
		})

		Convey("A burnt-in subtitle pick is appended to the url", func() {
			prompts := &scriptedDialog{selections: []int{1, 2}}
			negotiator := NewNegotiator(server, prompts)

			result, err := negotiator.Negotiate("1", twoTrackSource(), true, false, "ps")
			So(err, ShouldBeNil)
			So(result.PlayURL, ShouldContainSubstring, "&SubtitleStreamIndex=4")
			So(result.ExternalSubtitles, ShouldBeEmpty)
		})

		Convey("A downloadable subtitle pick becomes an external url instead", func() {
			source := twoTrackSource()
			source.MediaStreams[3].IsExternal = true
			source.MediaStreams[3].IsTextSubtitleStream = true
			source.MediaStreams[3].SupportsExternalStream = true

			prompts := &scriptedDialog{selections: []int{1, 2}}
			negotiator := NewNegotiator(server, prompts)

			result, err := negotiator.Negotiate("1", source, true, false, "ps")
			So(err, ShouldBeNil)
			So(result.PlayURL, ShouldNotContainSubstring, "SubtitleStreamIndex")
			So(result.ExternalSubtitles, ShouldResemble, []string{"http://emby/Videos/1/Subtitles/4/Stream.srt"})
		})

		Convey("Subtitle labels mark default and forced tracks", func() {
			source := twoTrackSource()
			source.MediaStreams[3].IsForced = true

			prompts := &scriptedDialog{selections: []int{1, 0}}
			negotiator := NewNegotiator(server, prompts)

			_, err := negotiator.Negotiate("1", source, true, false, "ps")
			So(err, ShouldBeNil)
			So(prompts.selectOptions[1], ShouldResemble, []string{
				"No subtitles",
				"3 - eng - Default",
				"4 - jpn - Forced",
			})
		})
	})

	Convey("Given a single audio track", t, func() {
		server := &fakeServer{playURL: "http://emby/master.m3u8?x=1", techniqueCode: "2"}
		source := &emby.MediaSource{
			MediaStreams: []emby.MediaStream{
				{Index: 1, Type: "Audio", Codec: "dts", Channels: 6, ChannelLayout: "5.1"},
			},
		}

		Convey("It is selected silently and still drives the bitrate", func() {
			prompts := &scriptedDialog{}
			negotiator := NewNegotiator(server, prompts)

			result, err := negotiator.Negotiate("1", source, true, false, "ps")
			So(err, ShouldBeNil)
			So(prompts.selectTitles, ShouldBeEmpty)
			So(result.PlayURL, ShouldContainSubstring, "&AudioStreamIndex=1")
			So(result.PlayURL, ShouldEndWith, "&AudioBitrate=384000")
		})

		Convey("A track without a language gets the short label", func() {
			prompts := &scriptedDialog{selections: []int{0, 0}}
			negotiator := NewNegotiator(server, prompts)

			withSecond := &emby.MediaSource{
				MediaStreams: append(source.MediaStreams,
					emby.MediaStream{Index: 2, Type: "Audio", Codec: "aac", Channels: 2, ChannelLayout: "stereo"},
				),
			}
			_, err := negotiator.Negotiate("1", withSecond, true, false, "ps")
			So(err, ShouldBeNil)
			So(prompts.selectOptions[0][0], ShouldEqual, "1 - dts 5.1")
		})
	})

	Convey("Given no streams at all", t, func() {
		server := &fakeServer{playURL: "http://emby/master.m3u8?x=1", techniqueCode: "2"}

		Convey("Only the stereo bitrate is appended", func() {
			negotiator := NewNegotiator(server, &scriptedDialog{})

			result, err := negotiator.Negotiate("1", &emby.MediaSource{}, true, false, "ps")
			So(err, ShouldBeNil)
			So(strings.Count(result.PlayURL, "&"), ShouldEqual, 1)
			So(result.PlayURL, ShouldEndWith, "&AudioBitrate=192000")
		})
	})
}
