package emby

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/viper"
	"github.com/yeahme49/plugin.video.embycon/key"
	"github.com/yeahme49/plugin.video.embycon/log"
	"github.com/yeahme49/plugin.video.embycon/network"
)

// Client talks to a single Emby server on behalf of a single user.
// It is constructed explicitly and passed by reference into every component
// that needs server access, so tests can substitute a double.
type Client struct {
	server      string
	userID      string
	accessToken string
	deviceID    string

	http *http.Client
}

// New creates a client for the given server and credentials.
func New(server, userID, accessToken, deviceID string) *Client {
	if deviceID == "" {
		deviceID = uuid.NewString()
	}
	return &Client{
		server:      strings.TrimRight(server, "/"),
		userID:      userID,
		accessToken: accessToken,
		deviceID:    deviceID,
		http:        network.Client,
	}
}

// FromConfig creates a client from the active viper configuration.
func FromConfig() *Client {
	return New(
		viper.GetString(key.EmbyServer),
		viper.GetString(key.EmbyUserID),
		viper.GetString(key.EmbyAccessToken),
		viper.GetString(key.EmbyDeviceID),
	)
}

// Server returns the base server URL without a trailing slash.
func (c *Client) Server() string {
	return c.server
}

// defaultQuery returns the query parameters attached to every request.
func (c *Client) defaultQuery() url.Values {
	query := url.Values{}
	query.Set("api_key", c.accessToken)
	return query
}

// Item fetches a single library item by id, including media sources and user data.
// A nil item with a nil error means the server had no such item.
func (c *Client) Item(id string) (*Item, error) {
	query := c.defaultQuery()
	query.Set("format", "json")
	requestURL := fmt.Sprintf("%s/emby/Users/%s/Items/%s?%s", c.server, c.userID, id, query.Encode())

	var item Item
	if err := c.get("Item", requestURL, &item); err != nil {
		return nil, err
	}
	if item.ID == "" {
		return nil, nil
	}
	return &item, nil
}

// PlayURL resolves the URL and playback technique for a media source.
// The technique code is "0" for direct play, "1" for direct stream and "2" for transcode.
func (c *Client) PlayURL(itemID string, source *MediaSource, forceTranscode bool, playSessionID string) (string, string, error) {
	if !forceTranscode && source.SupportsDirectPlay && source.Path != "" {
		return source.Path, "0", nil
	}

	query := c.defaultQuery()
	query.Set("MediaSourceId", source.ID)
	query.Set("PlaySessionId", playSessionID)
	query.Set("DeviceId", c.deviceID)

	if !forceTranscode && source.SupportsDirectStream {
		query.Set("static", "true")
		return fmt.Sprintf("%s/emby/Videos/%s/stream?%s", c.server, itemID, query.Encode()), "1", nil
	}

	query.Set("VideoCodec", "h264")
	query.Set("AudioCodec", "aac")
	if max := viper.GetInt(key.PlaybackMaxBitrate); max > 0 {
		query.Set("VideoBitrate", strconv.Itoa(max))
	}
	return fmt.Sprintf("%s/emby/Videos/%s/master.m3u8?%s", c.server, itemID, query.Encode()), "2", nil
}

// SubtitleURL builds the fetch URL for an external text subtitle stream.
func (c *Client) SubtitleURL(itemID string, streamIndex int, codec string) string {
	return fmt.Sprintf("%s/emby/Videos/%s/%s/Subtitles/%d/Stream.%s", c.server, itemID, itemID, streamIndex, codec)
}

// NextEpisode returns the episode that follows the given one within its series,
// or nil when the given episode is the last one available.
func (c *Client) NextEpisode(item *Item) (*Item, error) {
	if item.Type != "Episode" || item.SeriesID == "" {
		return nil, nil
	}

	query := c.defaultQuery()
	query.Set("UserId", c.userID)
	query.Set("StartItemId", item.ID)
	query.Set("Limit", "2")
	query.Set("Fields", "MediaSources,Overview")
	requestURL := fmt.Sprintf("%s/emby/Shows/%s/Episodes?%s", c.server, item.SeriesID, query.Encode())

	var result ItemsResult
	if err := c.get("NextEpisode", requestURL, &result); err != nil {
		return nil, err
	}
	if len(result.Items) < 2 {
		return nil, nil
	}
	next := result.Items[1]
	return &next, nil
}

// DeleteItem removes an item from the server library.
func (c *Client) DeleteItem(id string) error {
	query := c.defaultQuery()
	requestURL := fmt.Sprintf("%s/emby/Items/%s?%s", c.server, id, query.Encode())

	req, err := http.NewRequest(http.MethodDelete, requestURL, nil)
	if err != nil {
		return fmt.Errorf("[DeleteItem] build request: %w", err)
	}
	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("[DeleteItem] request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK && res.StatusCode != http.StatusNoContent {
		return fmt.Errorf("[DeleteItem] unexpected status code: %d", res.StatusCode)
	}
	return nil
}

// get performs a GET request and decodes the JSON response body into target.
func (c *Client) get(caller, requestURL string, target any) error {
	res, err := c.http.Get(requestURL)
	if err != nil {
		return fmt.Errorf("[%s] failed to make GET request: %w", caller, err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil
	}
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("[%s] unexpected status code: %d, status: %s", caller, res.StatusCode, res.Status)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("[%s] failed to read response body: %w", caller, err)
	}

	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("[%s] failed to unmarshal response body: %w", caller, err)
	}
	return nil
}

// post serializes body as JSON and sends it. Responses are drained and discarded;
// the session reporting endpoints return no useful payload.
func (c *Client) post(caller, requestURL string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("[%s] failed to marshal body: %w", caller, err)
	}

	query := c.defaultQuery()
	req, err := http.NewRequest(http.MethodPost, requestURL+"?"+query.Encode(), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("[%s] build request: %w", caller, err)
	}
	req.Header.Set("Content-Type", "application/json")

	log.Debugf("POST %s: %s", requestURL, string(payload))

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("[%s] request failed: %w", caller, err)
	}
	defer res.Body.Close()
	_, _ = io.Copy(io.Discard, res.Body)

	if res.StatusCode != http.StatusOK && res.StatusCode != http.StatusNoContent {
		return fmt.Errorf("[%s] unexpected status code: %d, status: %s", caller, res.StatusCode, res.Status)
	}
	return nil
}
