package emby

// StartReport announces the beginning of a playback session to the server.
type StartReport struct {
	QueueableMediaTypes string `json:"QueueableMediaTypes"`
	CanSeek             bool   `json:"CanSeek"`
	ItemID              string `json:"ItemId"`
	MediaSourceID       string `json:"MediaSourceId"`
	PlayMethod          string `json:"PlayMethod"`
	PlaySessionID       string `json:"PlaySessionId"`
}

// ProgressReport updates the server with the current position of an active session.
type ProgressReport struct {
	QueueableMediaTypes string `json:"QueueableMediaTypes"`
	CanSeek             bool   `json:"CanSeek"`
	ItemID              string `json:"ItemId"`
	MediaSourceID       string `json:"MediaSourceId"`
	PositionTicks       int64  `json:"PositionTicks"`
	IsPaused            bool   `json:"IsPaused"`
	IsMuted             bool   `json:"IsMuted"`
	PlayMethod          string `json:"PlayMethod"`
	PlaySessionID       string `json:"PlaySessionId"`
}

// StopReport tells the server a session has ended and at which position.
type StopReport struct {
	ItemID        string `json:"ItemId"`
	MediaSourceID string `json:"MediaSourceId"`
	PositionTicks int64  `json:"PositionTicks"`
}

// ReportPlaybackStart posts a session start report.
func (c *Client) ReportPlaybackStart(report StartReport) error {
	return c.post("ReportPlaybackStart", c.server+"/emby/Sessions/Playing", report)
}

// ReportPlaybackProgress posts a session progress report.
func (c *Client) ReportPlaybackProgress(report ProgressReport) error {
	return c.post("ReportPlaybackProgress", c.server+"/emby/Sessions/Playing/Progress", report)
}

// ReportPlaybackStopped posts a session stop report.
func (c *Client) ReportPlaybackStopped(report StopReport) error {
	return c.post("ReportPlaybackStopped", c.server+"/emby/Sessions/Playing/Stopped", report)
}
