package playback

import (
	"fmt"
	"time"

	"github.com/yeahme49/plugin.video.embycon/emby"
)

// scriptedDialog answers prompts from pre-seeded queues. An exhausted queue
// cancels, so a test that forgets to script an answer fails loudly.
type scriptedDialog struct {
	selections    []int
	confirmations []bool

	selectTitles  []string
	selectOptions [][]string
	confirmTitles []string
}

func (d *scriptedDialog) Select(title string, options []string) int {
	d.selectTitles = append(d.selectTitles, title)
	d.selectOptions = append(d.selectOptions, options)
	if len(d.selections) == 0 {
		return -1
	}
	choice := d.selections[0]
	d.selections = d.selections[1:]
	return choice
}

func (d *scriptedDialog) Confirm(title, _ string) bool {
	d.confirmTitles = append(d.confirmTitles, title)
	if len(d.confirmations) == 0 {
		return false
	}
	answer := d.confirmations[0]
	d.confirmations = d.confirmations[1:]
	return answer
}

func (d *scriptedDialog) ConfirmTimeout(title, question string, _ time.Duration) bool {
	return d.Confirm(title, question)
}

// fakeServer is a scripted Server double recording every call it receives.
type fakeServer struct {
	items map[string]*emby.Item
	next  *emby.Item

	playURL       string
	techniqueCode string

	startReports    []emby.StartReport
	progressReports []emby.ProgressReport
	stopReports     []emby.StopReport
	deletedItems    []string
}

func (s *fakeServer) Item(id string) (*emby.Item, error) {
	return s.items[id], nil
}

func (s *fakeServer) PlayURL(string, *emby.MediaSource, bool, string) (string, string, error) {
	return s.playURL, s.techniqueCode, nil
}

func (s *fakeServer) SubtitleURL(itemID string, streamIndex int, codec string) string {
	return fmt.Sprintf("http://emby/Videos/%s/Subtitles/%d/Stream.%s", itemID, streamIndex, codec)
}

func (s *fakeServer) NextEpisode(*emby.Item) (*emby.Item, error) {
	return s.next, nil
}

func (s *fakeServer) DeleteItem(id string) error {
	s.deletedItems = append(s.deletedItems, id)
	return nil
}

func (s *fakeServer) ReportPlaybackStart(report emby.StartReport) error {
	s.startReports = append(s.startReports, report)
	return nil
}

func (s *fakeServer) ReportPlaybackProgress(report emby.ProgressReport) error {
	s.progressReports = append(s.progressReports, report)
	return nil
}

func (s *fakeServer) ReportPlaybackStopped(report emby.StopReport) error {
	s.stopReports = append(s.stopReports, report)
	return nil
}

func intPtr(n int) *int {
	return &n
}
