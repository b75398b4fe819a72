package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/yeahme49/plugin.video.embycon/filesystem"
	"github.com/yeahme49/plugin.video.embycon/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("prompts.play_next_percentage")
			So(result, ShouldEqual, "prompts_play_next_percentage")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Field", t, func() {
		field := Default[key.PlaybackJumpBackSeconds]

		Convey("Env prefixes and uppercases the key", func() {
			So(field.Env(), ShouldEqual, "EMBYCON_PLAYBACK_JUMP_BACK_SECONDS")
		})

		Convey("typeName reflects the default's type", func() {
			So(field.typeName(), ShouldEqual, "int")
			serverField := Default[key.EmbyServer]
			So(serverField.typeName(), ShouldEqual, "string")
			saveOnStopField := Default[key.HistorySaveOnStop]
			So(saveOnStopField.typeName(), ShouldEqual, "bool")
		})
	})
}
