package history

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/yeahme49/plugin.video.embycon/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestHistory(t *testing.T) {
	Convey("Given a watched episode", t, func() {
		record := Record{
			ItemID:            "ep1",
			Name:              "Pilot",
			Type:              "Episode",
			SeriesName:        "Show",
			Index:             1,
			WatchedPercentage: 96,
		}

		Convey("When saving the record", func() {
			err := Save(record)

			Convey("Then it is retrievable", func() {
				So(err, ShouldBeNil)

				saved, err := Get()
				So(err, ShouldBeNil)
				So(saved["ep1"].Name, ShouldEqual, "Pilot")
				So(saved["ep1"].WatchedPercentage, ShouldEqual, 96)
			})

			Convey("Then a lower percentage never regresses it", func() {
				rewatch := record
				rewatch.WatchedPercentage = 10
				So(Save(rewatch), ShouldBeNil)

				saved, _ := Get()
				So(saved["ep1"].WatchedPercentage, ShouldEqual, 96)
			})

			Convey("Then a higher percentage replaces it", func() {
				finished := record
				finished.WatchedPercentage = 100
				So(Save(finished), ShouldBeNil)

				saved, _ := Get()
				So(saved["ep1"].WatchedPercentage, ShouldEqual, 100)
			})

			Convey("Then removing it leaves the registry empty", func() {
				So(Remove("ep1"), ShouldBeNil)

				saved, _ := Get()
				So(saved, ShouldNotContainKey, "ep1")
			})
		})

		Convey("String formats the series entry", func() {
			So(record.String(), ShouldEqual, "Show : 01 - Pilot")

			movie := Record{ItemID: "m", Name: "A Movie"}
			So(movie.String(), ShouldEqual, "A Movie")
		})
	})
}
