package playback

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/yeahme49/plugin.video.embycon/emby"
	"github.com/yeahme49/plugin.video.embycon/key"
)

func TestTechnique(t *testing.T) {
	Convey("Technique", t, func() {
		Convey("String maps onto the server's play method names", func() {
			So(DirectPlay.String(), ShouldEqual, "DirectPlay")
			So(DirectStream.String(), ShouldEqual, "DirectStream")
			So(Transcode.String(), ShouldEqual, "Transcode")
		})

		Convey("TechniqueFromCode maps the wire codes", func() {
			So(TechniqueFromCode("0"), ShouldEqual, DirectPlay)
			So(TechniqueFromCode("1"), ShouldEqual, DirectStream)
			So(TechniqueFromCode("2"), ShouldEqual, Transcode)
		})

		Convey("An unknown code falls back to direct play", func() {
			So(TechniqueFromCode("banana"), ShouldEqual, DirectPlay)
		})
	})
}

func TestBuildDescriptor(t *testing.T) {
	Convey("BuildDescriptor", t, func() {
		viper.Set(key.PlaybackAddEpisodeNumber, true)
		defer viper.Set(key.PlaybackAddEpisodeNumber, true)

		negotiation := &Negotiation{
			PlayURL:   "http://emby/stream",
			Technique: DirectStream,
		}

		Convey("An episode title gets a padded number prefix", func() {
			item := &emby.Item{
				Name: "Pilot", Type: "Episode", SeriesName: "Show",
				IndexNumber: intPtr(3), ParentIndexNumber: intPtr(1),
			}

			descriptor := BuildDescriptor(item, negotiation)
			So(descriptor.Title, ShouldEqual, "03 - Pilot")
			So(descriptor.Info.MediaType, ShouldEqual, "episode")
			So(descriptor.Info.SeriesTitle, ShouldEqual, "Show")
			So(descriptor.Info.Episode, ShouldEqual, 3)
			So(descriptor.Info.Season, ShouldEqual, 1)
		})

		Convey("The prefix is skipped when configured off", func() {
			viper.Set(key.PlaybackAddEpisodeNumber, false)
			item := &emby.Item{Name: "Pilot", Type: "Episode", IndexNumber: intPtr(3)}

			descriptor := BuildDescriptor(item, negotiation)
			So(descriptor.Title, ShouldEqual, "Pilot")
		})

		Convey("A nameless item gets a placeholder title", func() {
			descriptor := BuildDescriptor(&emby.Item{Type: "Movie"}, negotiation)
			So(descriptor.Title, ShouldEqual, "Missing title")
		})

		Convey("The technique name leads the plot", func() {
			item := &emby.Item{Name: "A Movie", Type: "Movie", Overview: "Two hours of fun."}

			descriptor := BuildDescriptor(item, negotiation)
			So(descriptor.Info.Plot, ShouldEqual, "DirectStream\nTwo hours of fun.")
		})

		Convey("Media types map onto the host player labels", func() {
			for itemType, want := range map[string]string{
				"Movie":   "movie",
				"BoxSet":  "movie",
				"Series":  "tvshow",
				"Season":  "season",
				"Episode": "episode",
				"Other":   "video",
			} {
				descriptor := BuildDescriptor(&emby.Item{Name: "x", Type: itemType}, negotiation)
				So(descriptor.Info.MediaType, ShouldEqual, want)
			}
		})

		Convey("Non-episode items leave episode and season unset", func() {
			descriptor := BuildDescriptor(&emby.Item{Name: "A Movie", Type: "Movie"}, negotiation)
			So(descriptor.Info.Episode, ShouldEqual, -1)
			So(descriptor.Info.Season, ShouldEqual, -1)
		})
	})
}
