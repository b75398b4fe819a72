package playback

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/yeahme49/plugin.video.embycon/emby"
)

func TestSelectMediaSource(t *testing.T) {
	Convey("SelectMediaSource", t, func() {
		sources := []emby.MediaSource{
			{ID: "a", Name: "1080p"},
			{ID: "b", Name: "720p"},
		}

		Convey("With no sources", func() {
			_, err := SelectMediaSource(nil, "", &scriptedDialog{})
			So(err, ShouldEqual, ErrNoMediaSource)
		})

		Convey("With a single source", func() {
			prompts := &scriptedDialog{}
			source, err := SelectMediaSource(sources[:1], "", prompts)
			So(err, ShouldBeNil)
			So(source.ID, ShouldEqual, "a")
			So(prompts.selectTitles, ShouldBeEmpty)
		})

		Convey("With a matching requested id", func() {
			source, err := SelectMediaSource(sources, "b", &scriptedDialog{})
			So(err, ShouldBeNil)
			So(source.ID, ShouldEqual, "b")
		})

		Convey("With an unmatched requested id", func() {
			_, err := SelectMediaSource(sources, "zzz", &scriptedDialog{})
			So(err, ShouldEqual, ErrNoMediaSource)
		})

		Convey("With a user choice", func() {
			prompts := &scriptedDialog{selections: []int{1}}
			source, err := SelectMediaSource(sources, "", prompts)
			So(err, ShouldBeNil)
			So(source.ID, ShouldEqual, "b")
			So(prompts.selectOptions[0], ShouldResemble, []string{"1080p", "720p"})
		})

		Convey("With an unnamed source", func() {
			unnamed := []emby.MediaSource{{ID: "a"}, {ID: "b", Name: "720p"}}
			prompts := &scriptedDialog{selections: []int{0}}
			source, err := SelectMediaSource(unnamed, "", prompts)
			So(err, ShouldBeNil)
			So(source.ID, ShouldEqual, "a")
			So(prompts.selectOptions[0][0], ShouldEqual, "na")
		})

		Convey("With a cancelled prompt", func() {
			_, err := SelectMediaSource(sources, "", &scriptedDialog{})
			So(err, ShouldEqual, ErrUserCancelled)
		})
	})
}
