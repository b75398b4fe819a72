package signal

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/yeahme49/plugin.video.embycon/playback"
)

func notificationFor(sender, method, payload string) Notification {
	data, _ := json.Marshal([]string{hex.EncodeToString([]byte(payload))})
	return Notification{Sender: sender, Method: method, Data: data}
}

func TestDecode(t *testing.T) {
	Convey("Decode", t, func() {
		payload := `{"item_id":"12345","auto_resume":"123456789","force_transcode":true}`

		Convey("Accepts a well formed play signal", func() {
			notification := notificationFor("embycon.SIGNAL", "embycon.embycon_play_action", payload)

			request, err := Decode(notification)
			So(err, ShouldBeNil)
			So(request.ItemID, ShouldEqual, "12345")
			So(request.AutoResumeTicks, ShouldEqual, int64(123456789))
			So(request.ForceTranscode, ShouldBeTrue)
			So(request.UseDefaultTracks, ShouldBeFalse)
		})

		Convey("Defaults a missing auto resume to the no-override sentinel", func() {
			notification := notificationFor("embycon.SIGNAL", "embycon.embycon_play_action", `{"item_id":"12345"}`)

			request, err := Decode(notification)
			So(err, ShouldBeNil)
			So(request.AutoResumeTicks, ShouldEqual, playback.NoAutoResume)
		})

		Convey("Ignores senders without the signal suffix", func() {
			notification := notificationFor("someone-else", "embycon.embycon_play_action", payload)

			_, err := Decode(notification)
			So(err, ShouldEqual, ErrNotOurs)
		})

		Convey("Ignores other methods", func() {
			notification := notificationFor("embycon.SIGNAL", "embycon.something_else", payload)

			_, err := Decode(notification)
			So(err, ShouldEqual, ErrNotOurs)
		})

		Convey("Rejects a payload that is not a one element array", func() {
			notification := Notification{
				Sender: "embycon.SIGNAL",
				Method: "embycon.embycon_play_action",
				Data:   json.RawMessage(`[]`),
			}

			_, err := Decode(notification)
			So(errors.Is(err, ErrBadPayload), ShouldBeTrue)
		})

		Convey("Rejects a payload that is not hex", func() {
			data, _ := json.Marshal([]string{"zzzz"})
			notification := Notification{
				Sender: "embycon.SIGNAL",
				Method: "embycon.embycon_play_action",
				Data:   data,
			}

			_, err := Decode(notification)
			So(errors.Is(err, ErrBadPayload), ShouldBeTrue)
		})

		Convey("Rejects a payload without an item id", func() {
			notification := notificationFor("embycon.SIGNAL", "embycon.embycon_play_action", `{"force_transcode":true}`)

			_, err := Decode(notification)
			So(errors.Is(err, ErrBadPayload), ShouldBeTrue)
		})
	})
}

func TestEncode(t *testing.T) {
	Convey("Encode produces what Decode accepts", t, func() {
		request := playback.PlayRequest{
			ItemID:          "12345",
			AutoResumeTicks: 123456789,
			MediaSourceID:   "src",
		}

		notification, err := Encode(request)
		So(err, ShouldBeNil)
		So(notification.Sender, ShouldEqual, "embycon.SIGNAL")
		So(notification.Method, ShouldEqual, "embycon.embycon_play_action")

		decoded, err := Decode(notification)
		So(err, ShouldBeNil)
		So(decoded, ShouldResemble, request)
	})
}
