package playback

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestReporter(t *testing.T) {
	Convey("Reporter", t, func() {
		server := &fakeServer{}
		reporter := NewReporter(server)

		session := &PlaySession{
			ItemID:              "1",
			Technique:           DirectStream,
			PlaySessionID:       "ps",
			LastPositionSeconds: 12.5,
			Paused:              true,
		}

		Convey("Start sends a start report", func() {
			reporter.Start(session)

			So(server.startReports, ShouldHaveLength, 1)
			report := server.startReports[0]
			So(report.ItemID, ShouldEqual, "1")
			So(report.MediaSourceID, ShouldEqual, "1")
			So(report.PlayMethod, ShouldEqual, "DirectStream")
			So(report.PlaySessionID, ShouldEqual, "ps")
			So(report.CanSeek, ShouldBeTrue)
			So(report.QueueableMediaTypes, ShouldEqual, "Video")
		})

		Convey("Progress carries the position in ticks and the pause state", func() {
			reporter.Progress(session)

			So(server.progressReports, ShouldHaveLength, 1)
			report := server.progressReports[0]
			So(report.PositionTicks, ShouldEqual, int64(125000000))
			So(report.IsPaused, ShouldBeTrue)
			So(report.IsMuted, ShouldBeFalse)
		})

		Convey("Stop carries the final position and reports success", func() {
			So(reporter.Stop(session), ShouldBeTrue)

			So(server.stopReports, ShouldHaveLength, 1)
			So(server.stopReports[0].PositionTicks, ShouldEqual, int64(125000000))
		})

		Convey("An empty item id suppresses every report", func() {
			empty := &PlaySession{ItemID: ""}

			reporter.Start(empty)
			reporter.Progress(empty)
			So(reporter.Stop(empty), ShouldBeFalse)

			So(server.startReports, ShouldBeEmpty)
			So(server.progressReports, ShouldBeEmpty)
			So(server.stopReports, ShouldBeEmpty)
		})

		Convey("The literal None placeholder suppresses every report", func() {
			placeholder := &PlaySession{ItemID: "None"}

			reporter.Start(placeholder)
			So(reporter.Stop(placeholder), ShouldBeFalse)

			So(server.startReports, ShouldBeEmpty)
			So(server.stopReports, ShouldBeEmpty)
		})
	})
}
