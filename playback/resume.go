package playback

import (
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/yeahme49/plugin.video.embycon/config"
	"github.com/yeahme49/plugin.video.embycon/dialog"
	"github.com/yeahme49/plugin.video.embycon/emby"
	"github.com/yeahme49/plugin.video.embycon/key"
	"github.com/yeahme49/plugin.video.embycon/log"
	"github.com/yeahme49/plugin.video.embycon/util"
)

// selectActionAutoResume holds the values of the host "on media selected"
// setting that already mean auto-resume.
var selectActionAutoResume = []int{2, 3}

// ResumeResolver computes the seek offset to apply after playback starts.
type ResumeResolver struct {
	dialog dialog.Dialog

	// saveSetting persists the one-time auto-resume setting nudge.
	// Overridable so tests never write a config file.
	saveSetting func(k string, v any) error
}

// NewResumeResolver creates a resolver using the given prompt dialog.
func NewResumeResolver(d dialog.Dialog) *ResumeResolver {
	return &ResumeResolver{dialog: d, saveSetting: config.Save}
}

// ticksToSeconds converts server ticks (100ns units) to whole seconds.
// Written as two divisions to mirror the reporting formula, which goes
// through milliseconds; collapsing it to one division changes nothing for
// non-negative ticks but would break the symmetry.
func ticksToSeconds(ticks int64) int {
	reasonableTicks := ticks / 1000
	return int(reasonableTicks / 10000)
}

// Resolve returns the seek position in seconds, where 0 means no seek.
//
// An explicit auto-resume override bypasses all prompts. A stored server-side
// position triggers a resume/restart/cancel prompt; cancel aborts the play
// entirely. When the host's media-selected action is not already an
// auto-resume value, the user is offered once to turn auto-resume on, and a
// confirmation persists that setting as a side effect.
func (r *ResumeResolver) Resolve(req PlayRequest, item *emby.Item) (int, error) {
	if req.AutoResumeTicks != NoAutoResume {
		return ticksToSeconds(req.AutoResumeTicks), nil
	}

	positionTicks := item.UserData.PlaybackPositionTicks
	if positionTicks == 0 {
		return 0, nil
	}

	seekSeconds := ticksToSeconds(positionTicks)
	choice := r.dialog.Select(
		"Resume playback",
		[]string{"Resume from " + util.FormatSeconds(seekSeconds), "Play from beginning"},
	)

	r.nudgeAutoResume()

	switch choice {
	case 0:
		return seekSeconds, nil
	case 1:
		return 0, nil
	default:
		log.Debug("play aborted, user cancelled resume prompt")
		return 0, ErrUserCancelled
	}
}

// nudgeAutoResume offers, once per prompt, to switch the select action setting
// to auto-resume. Declining leaves the setting alone.
func (r *ResumeResolver) nudgeAutoResume() {
	current := viper.GetInt(key.PlaybackSelectAction)
	if lo.Contains(selectActionAutoResume, current) {
		return
	}

	if !r.dialog.Confirm("EmbyCon", "Turn on auto resume?") {
		return
	}

	if err := r.saveSetting(key.PlaybackSelectAction, selectActionAutoResume[0]); err != nil {
		log.Errorf("save select action setting: %v", err)
	}
}
