// Package youtube searches the video platform for lesson videos.
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"contenthub/pkg/models"
)

const defaultBaseURL = "https://www.googleapis.com"

// HTTPClient allows injecting a test transport.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Option func(*Client)

func WithHTTPClient(hc HTTPClient) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

type Client struct {
	apiKey     string
	baseURL    string
	httpClient HTTPClient
}

func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 12 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			ChannelTitle string `json:"channelTitle"`
			Thumbnails   struct {
				High struct {
					URL string `json:"url"`
				} `json:"high"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

// SearchVideos queries the education category for one locale and returns
// normalized video records tagged with that locale.
func (c *Client) SearchVideos(ctx context.Context, query, locale string, limit int) ([]models.Video, error) {
	u, err := url.Parse(c.baseURL + "/youtube/v3/search")
	if err != nil {
		return nil, fmt.Errorf("youtube: parse url: %w", err)
	}
	q := u.Query()
	q.Set("part", "snippet")
	q.Set("q", query)
	q.Set("type", "video")
	q.Set("videoCategoryId", "27")
	q.Set("regionCode", locale)
	q.Set("maxResults", strconv.Itoa(limit))
	q.Set("key", c.apiKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("youtube: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("youtube: request: %w", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("youtube: status %d: %s", resp.StatusCode, string(body))
	}

	var sr searchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("youtube: decode: %w", err)
	}

	videos := make([]models.Video, 0, len(sr.Items))
	for _, item := range sr.Items {
		id := item.ID.VideoID
		if id == "" {
			continue
		}
		videos = append(videos, models.Video{
			Kind:        models.KindVideo,
			ID:          id,
			Title:       item.Snippet.Title,
			Description: item.Snippet.Description,
			Channel:     item.Snippet.ChannelTitle,
			ImageURL:    item.Snippet.Thumbnails.High.URL,
			Categories:  []string{query},
			Locale:      locale,
			EmbedURL:    "https://www.youtube.com/embed/" + id,
		})
	}
	return videos, nil
}
