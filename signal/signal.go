// Package signal implements the hex-encoded play-request notification wire
// format and a unix socket receiver that feeds decoded requests into the
// playback pipeline.
package signal

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/yeahme49/plugin.video.embycon/constant"
	"github.com/yeahme49/plugin.video.embycon/playback"
)

// Notification is the envelope every signal travels in. Data is a JSON array
// holding a single hex-encoded JSON document.
type Notification struct {
	Sender string          `json:"sender"`
	Method string          `json:"method"`
	Data   json.RawMessage `json:"data"`
}

// Decode errors. ErrNotOurs means the envelope belongs to another sender or
// method and should be ignored rather than reported.
var (
	ErrNotOurs    = errors.New("notification not addressed to us")
	ErrBadPayload = errors.New("malformed signal payload")
)

// Decode validates the envelope and extracts the play request. The sender
// must carry the signal suffix and the method, after its sender prefix, must
// be the play action. A request decodes with the auto-resume override
// defaulted off, so a payload without the field means "no override".
func Decode(n Notification) (playback.PlayRequest, error) {
	if !strings.HasSuffix(n.Sender, constant.SignalSenderSuffix) {
		return playback.PlayRequest{}, ErrNotOurs
	}

	method := n.Method
	if dot := strings.Index(method, "."); dot != -1 {
		method = method[dot+1:]
	}
	if method != constant.PlaySignal {
		return playback.PlayRequest{}, ErrNotOurs
	}

	var payload []string
	if err := json.Unmarshal(n.Data, &payload); err != nil || len(payload) == 0 {
		return playback.PlayRequest{}, fmt.Errorf("%w: data is not a one element array", ErrBadPayload)
	}

	raw, err := hex.DecodeString(payload[0])
	if err != nil {
		return playback.PlayRequest{}, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}

	request := playback.PlayRequest{AutoResumeTicks: playback.NoAutoResume}
	if err := json.Unmarshal(raw, &request); err != nil {
		return playback.PlayRequest{}, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	if request.ItemID == "" {
		return playback.PlayRequest{}, fmt.Errorf("%w: missing item id", ErrBadPayload)
	}

	return request, nil
}

// Encode wraps a play request into a notification envelope ready for the
// wire, mirroring what Decode accepts.
func Encode(req playback.PlayRequest) (Notification, error) {
	raw, err := json.Marshal(req)
	if err != nil {
		return Notification{}, err
	}

	data, err := json.Marshal([]string{hex.EncodeToString(raw)})
	if err != nil {
		return Notification{}, err
	}

	return Notification{
		Sender: constant.EmbyCon + constant.SignalSenderSuffix,
		Method: constant.EmbyCon + "." + constant.PlaySignal,
		Data:   data,
	}, nil
}
