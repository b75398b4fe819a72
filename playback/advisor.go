package playback

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
	"github.com/yeahme49/plugin.video.embycon/dialog"
	"github.com/yeahme49/plugin.video.embycon/emby"
	"github.com/yeahme49/plugin.video.embycon/history"
	"github.com/yeahme49/plugin.video.embycon/key"
	"github.com/yeahme49/plugin.video.embycon/log"
)

// promptAutoDismiss bounds how long a post-stop prompt stays on screen.
const promptAutoDismiss = 10 * time.Second

// thresholdDisabled is the percentage value that turns a continuation check off.
const thresholdDisabled = 100

// Advisor computes post-stop continuation actions from the completion
// percentage: a delete prompt, a next-episode prompt, and the local history
// record. The three checks are independent and may all fire from one stop.
type Advisor struct {
	server Server
	dialog dialog.Dialog

	// playNext feeds a follow-up request back into the play pipeline.
	playNext func(PlayRequest)

	// refresh triggers a host UI refresh after a deletion. May be nil.
	refresh func()
}

// NewAdvisor creates an advisor. playNext receives the emitted next-episode
// request; refresh may be nil when the host has nothing to refresh.
func NewAdvisor(server Server, d dialog.Dialog, playNext func(PlayRequest), refresh func()) *Advisor {
	return &Advisor{server: server, dialog: d, playNext: playNext, refresh: refresh}
}

// AfterStop runs the continuation checks for a stopped session.
//
// The item is re-fetched so the runtime and type are authoritative; a runtime
// of zero makes the percentage incomputable and skips everything.
func (a *Advisor) AfterStop(itemID string, positionSeconds float64) {
	deleteEpisode := viper.GetInt(key.PromptDeleteEpisodePercentage)
	deleteMovie := viper.GetInt(key.PromptDeleteMoviePercentage)
	playNext := viper.GetInt(key.PromptPlayNextPercentage)
	saveHistory := viper.GetBool(key.HistorySaveOnStop)

	if deleteEpisode == thresholdDisabled && deleteMovie == thresholdDisabled &&
		playNext == thresholdDisabled && !saveHistory {
		return
	}

	item, err := a.server.Item(itemID)
	if err != nil {
		log.Errorf("continuation item lookup: %v", err)
		return
	}
	if item == nil || item.RunTimeTicks == 0 {
		log.Debug("no runtime, skipping continuation checks")
		return
	}

	percentage := int(positionSeconds * float64(TicksPerSecond) / float64(item.RunTimeTicks) * 100)
	log.Debugf("continuation: %s complete at %d%%", itemID, percentage)

	if saveHistory {
		a.saveHistory(item.ID, item.Name, item.Type, item.SeriesName, item.IndexNumber, percentage)
	}

	promptToDelete := false
	if deleteEpisode < thresholdDisabled && item.Type == "Episode" && percentage > deleteEpisode {
		promptToDelete = true
	}
	if deleteMovie < thresholdDisabled && item.Type == "Movie" && percentage > deleteMovie {
		promptToDelete = true
	}

	if promptToDelete {
		a.promptDelete(itemID)
	}

	if playNext < thresholdDisabled && item.Type == "Episode" && percentage > playNext {
		a.promptPlayNext(item)
	}
}

func (a *Advisor) saveHistory(id, name, itemType, seriesName string, index *int, percentage int) {
	record := history.Record{
		ItemID:            id,
		Name:              name,
		Type:              itemType,
		SeriesName:        seriesName,
		WatchedPercentage: float64(percentage),
	}
	if index != nil {
		record.Index = *index
	}
	if err := history.Save(record); err != nil {
		log.Errorf("save history: %v", err)
	}
}

func (a *Advisor) promptDelete(itemID string) {
	if !a.dialog.ConfirmTimeout("Confirm file delete", "Delete this file from the server?", promptAutoDismiss) {
		return
	}

	log.Debugf("deleting item: %s", itemID)
	if err := a.server.DeleteItem(itemID); err != nil {
		log.Errorf("delete item: %v", err)
		return
	}
	if a.refresh != nil {
		a.refresh()
	}
}

func (a *Advisor) promptPlayNext(item *emby.Item) {
	next, err := a.server.NextEpisode(item)
	if err != nil {
		log.Errorf("next episode lookup: %v", err)
		return
	}
	if next == nil {
		log.Debug("no next episode")
		return
	}

	confirmed := true
	if viper.GetBool(key.PromptPlayNextConfirm) {
		index := -1
		if next.IndexNumber != nil {
			index = *next.IndexNumber
		}
		label := fmt.Sprintf("%02d - %s", index, next.Name)
		confirmed = a.dialog.ConfirmTimeout("Play next episode", label, promptAutoDismiss)
	}

	if confirmed && a.playNext != nil {
		log.Debugf("playing next episode: %s", next.ID)
		a.playNext(NewPlayRequest(next.ID))
	}
}
